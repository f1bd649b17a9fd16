package pagination

import (
	"context"
	"fmt"
	"slices"

	cache "github.com/krisalay/bounded-cache"
	"github.com/krisalay/bounded-cache/engine"
	"github.com/krisalay/bounded-cache/eviction"
	"github.com/krisalay/bounded-cache/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PageKey identifies one hypermedia page.
type PageKey struct {
	Page     int
	PageSize int
}

func (k PageKey) String() string {
	return fmt.Sprintf("page=%d,size=%d", k.Page, k.PageSize)
}

// CachedServer serves hypermedia pages through a bounded cache.
// A page is computed once and then served from memory until the policy discards it.
type CachedServer struct {
	server *Server
	pages  *cache.BoundedCache[PageKey, *Hyper]
}

// CachedServerConfig configures NewCachedServer. Zero values fall back to safe defaults.
type CachedServerConfig struct {
	Capacity  int
	Policy    eviction.PolicyType
	Metrics   types.Metrics
	Logger    *zerolog.Logger
	OnDiscard types.DiscardFunc[PageKey]
}

// NewCachedServer wraps server with a page cache.
func NewCachedServer(server *Server, cfg CachedServerConfig) (*CachedServer, error) {
	if cfg.Policy == "" {
		cfg.Policy = eviction.FIFO
	}

	loader := types.LoaderFunc[PageKey, *Hyper](func(_ context.Context, key PageKey) (*Hyper, error) {
		h, err := server.GetHyper(key.Page, key.PageSize)
		if err != nil {
			return nil, err
		}
		return &h, nil
	})

	pages, err := cache.NewBoundedCache(
		cfg.Capacity,
		cfg.Policy,
		engine.NewCacheEngine[PageKey, *Hyper](loader, cfg.OnDiscard, cfg.Metrics, cfg.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create page cache: %w", err)
	}

	return &CachedServer{server: server, pages: pages}, nil
}

// GetHyper returns the page from the cache, computing it on a miss.
// The returned page is shared with the cache and must not be modified.
func (c *CachedServer) GetHyper(ctx context.Context, page, pageSize int) (*Hyper, error) {
	if _, _, err := IndexRange(page, pageSize); err != nil {
		return nil, err
	}
	return c.pages.GetOrLoad(ctx, PageKey{Page: page, PageSize: pageSize})
}

// GetHyperIndex is not cached: deletions change its result.
func (c *CachedServer) GetHyperIndex(index, pageSize int) (HyperIndex, error) {
	return c.server.GetHyperIndex(index, pageSize)
}

// Warm loads the given pages concurrently. It stops at the first error.
func (c *CachedServer) Warm(ctx context.Context, pageSize int, pages ...int) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range pages {
		p := p
		g.Go(func() error {
			_, err := c.GetHyper(ctx, p, pageSize)
			return err
		})
	}
	return g.Wait()
}

// Cached reports whether a page is currently held in the cache.
// It does not count as a cache read.
func (c *CachedServer) Cached(page, pageSize int) bool {
	return slices.Contains(c.pages.Keys(), PageKey{Page: page, PageSize: pageSize})
}

// Len returns the number of cached pages.
func (c *CachedServer) Len() int {
	return c.pages.Len()
}
