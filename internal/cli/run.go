package cli

import (
	"fmt"
	"io"
	"strings"

	cache "github.com/krisalay/bounded-cache"
	"github.com/krisalay/bounded-cache/engine"
	"github.com/krisalay/bounded-cache/internal/logging"
	"github.com/krisalay/bounded-cache/internal/stats"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var showStats bool

	cmd := &cobra.Command{
		Use:   "run [op...]",
		Short: "Apply a sequence of puts and gets to a fresh cache",
		Long: `Apply a sequence of operations to a fresh cache and print the result.

Each argument is one operation:
  key=value   put value under key
  key         get key
  =value      put with an absent key (ignored)
  key=        put with an absent value (ignored)

Every eviction prints a DISCARD line. The final cache content is printed at the end.`,
		Example: `  boundcache run --policy fifo --capacity 4 A=Hello B=World C=Holberton D=School E=Battery
  boundcache run --policy lifo --capacity 2 A=1 B=2 A=9 C=3 A`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, showStats)
		},
	}

	cmd.Flags().String("policy", "", "eviction policy: none, fifo or lifo")
	cmd.Flags().Int("capacity", 0, "maximum number of entries")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print cache counters at the end")
	bindFlag(a.manager, "cache.policy", cmd.Flags().Lookup("policy"))
	bindFlag(a.manager, "cache.capacity", cmd.Flags().Lookup("capacity"))

	return cmd
}

// op is one parsed command line operation.
// An empty key or value becomes nil, which the cache treats as absent.
type op struct {
	key   any
	value any
	put   bool
}

func parseOp(arg string) op {
	k, v, isPut := strings.Cut(arg, "=")
	o := op{key: k, value: v, put: isPut}
	if k == "" {
		o.key = nil
	}
	if v == "" {
		o.value = nil
	}
	return o
}

func (a *app) run(cmd *cobra.Command, args []string, showStats bool) error {
	out := cmd.OutOrStdout()
	ctx := logging.WithComponent(cmd.Context(), "run")
	logger := logging.FromContext(ctx)

	counters := &stats.Counters{}
	discard := engine.PrintDiscard[any](styledWriter{w: out, style: discardStyle})

	c, err := cache.NewBoundedCache(
		a.cfg.Cache.Capacity,
		a.cfg.Cache.PolicyType(),
		engine.NewCacheEngine[any, any](nil, discard, counters, logger),
	)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("policy", c.Policy().String()).
		Int("capacity", c.Capacity()).
		Int("ops", len(args)).
		Msg("starting")

	for _, arg := range args {
		o := parseOp(arg)
		if o.put {
			c.Put(o.key, o.value)
			continue
		}
		printGet(out, c, o.key)
	}

	if err := printCache(out, c); err != nil {
		return err
	}
	if showStats {
		return counters.Snapshot().Print(out)
	}
	return nil
}

func printGet(out io.Writer, c *cache.BoundedCache[any, any], key any) {
	v, ok := c.Get(key)
	if !ok {
		fmt.Fprintln(out, missStyle.Render(fmt.Sprintf("%v: None", key)))
		return
	}
	fmt.Fprintf(out, "%v: %v\n", key, v)
}

// printCache prints the Current cache block with a styled header.
func printCache(out io.Writer, c *cache.BoundedCache[any, any]) error {
	var b strings.Builder
	if err := c.Print(&b); err != nil {
		return err
	}
	header, body, _ := strings.Cut(b.String(), "\n")
	if _, err := fmt.Fprintln(out, headerStyle.Render(header)); err != nil {
		return err
	}
	_, err := io.WriteString(out, body)
	return err
}
