// Package cli provides the command-line interface for boundcache.
package cli

import (
	"github.com/krisalay/bounded-cache/internal/config"
	"github.com/krisalay/bounded-cache/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	manager *config.Manager
	cfg     *config.Config
	logger  zerolog.Logger

	configPath string
}

// NewRootCmd creates the root command for boundcache
func NewRootCmd() *cobra.Command {
	a := &app{manager: config.NewManager()}

	cmd := &cobra.Command{
		Use:           "boundcache",
		Short:         "Bounded in-memory key-value cache with FIFO, LIFO or no eviction",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "log format: console or json")
	bindFlag(a.manager, "logging.level", flags.Lookup("log-level"))
	bindFlag(a.manager, "logging.format", flags.Lookup("log-format"))

	cmd.AddCommand(newRunCmd(a))
	cmd.AddCommand(newPageCmd(a))

	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := a.manager.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	a.logger = logging.NewWithWriter(logCfg, cmd.ErrOrStderr())

	cmd.SetContext(logging.WithContext(cmd.Context(), a.logger))
	return nil
}
