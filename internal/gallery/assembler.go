package gallery

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/portfolio"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Service assembles full gallery render passes: item query, filter list,
// per-item fragments, and the declared client capabilities. One render is a
// pure read; concurrent renders share no mutable state.
type Service struct {
	items    portfolio.ItemRepository
	terms    portfolio.TermRepository
	links    *LinkResolver
	renderer *ItemRenderer
	filters  *FilterListBuilder
	defaults Config
	logger   interfaces.Logger
	cache    interfaces.CacheProvider
	cacheTTL time.Duration
}

// ServiceOption customises the gallery service.
type ServiceOption func(*Service)

// WithDefaults overrides the base configuration merged under every render.
func WithDefaults(defaults Config) ServiceOption {
	return func(s *Service) {
		s.defaults = defaults
	}
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderCache caches rendered fragments keyed by the merged render
// configuration. Hosts invalidate by TTL or by clearing the provider.
func WithRenderCache(cache interfaces.CacheProvider, ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.cache = cache
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithLinkResolver replaces the default link resolver.
func WithLinkResolver(links *LinkResolver) ServiceOption {
	return func(s *Service) {
		if links != nil {
			s.links = links
		}
	}
}

// NewService constructs a gallery service over the supplied repositories and
// image resolver.
func NewService(items portfolio.ItemRepository, terms portfolio.TermRepository, images interfaces.ImageResolver, opts ...ServiceOption) (*Service, error) {
	if items == nil {
		return nil, ErrItemRepositoryRequired
	}
	if terms == nil {
		return nil, ErrTermRepositoryRequired
	}

	s := &Service{
		items:    items,
		terms:    terms,
		links:    NewLinkResolver(images),
		defaults: DefaultConfig(),
		logger:   logging.NoOp(),
		cacheTTL: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.filters = NewFilterListBuilder(terms)
	s.renderer = NewItemRenderer(s.links, images, markdown.NewRenderer(markdown.Options{Unsafe: true}), s.logger)
	return s, nil
}

// Render performs one gallery pass. Zero matching items yields an empty
// result with no container markup; repository failures propagate unwrapped
// beyond a contextual message. The returned capabilities declare the assets
// the markup depends on instead of registering them as a side effect.
func (s *Service) Render(ctx context.Context, overrides map[string]any) (interfaces.RenderResult, error) {
	start := time.Now()
	cfg := MergeConfig(s.defaults, overrides)

	logger := logging.WithFields(s.logger, map[string]any{
		"operation": "gallery.render",
	})

	key := renderCacheKey(cfg)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			if result, ok := cached.(interfaces.RenderResult); ok {
				logger.Debug("gallery.render.cache_hit", "key", key)
				return result, nil
			}
		}
	}

	items, err := s.items.List(ctx, cfg.ItemQuery())
	if err != nil {
		logger.Error("gallery.render.query_failed", "error", err)
		return interfaces.RenderResult{}, err
	}
	if len(items) == 0 {
		logger.Debug("gallery.render.empty", "duration_ms", time.Since(start).Milliseconds())
		return interfaces.RenderResult{}, nil
	}

	// The filter list runs its own term query; its constraint path is
	// independent of the item query above even though both read the same
	// config keys.
	filterList, err := s.filters.Build(ctx, cfg)
	if err != nil {
		logger.Error("gallery.render.filter_list_failed", "error", err)
		return interfaces.RenderResult{}, err
	}

	var out strings.Builder
	out.WriteString(filterList)
	out.WriteString(`<ul class="portfolio-grid">`)
	for _, item := range items {
		out.WriteString(s.renderer.Render(ctx, item, cfg))
	}
	out.WriteString(`</ul>`)

	capabilities := []interfaces.ClientCapability{interfaces.CapabilityGalleryStyles}
	if filterList != "" {
		capabilities = append(capabilities, interfaces.CapabilityFilterScript)
	}

	logger.Debug("gallery.render.completed",
		"items", len(items),
		"filtered", filterList != "",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	result := interfaces.RenderResult{
		HTML:         template.HTML(out.String()),
		Capabilities: capabilities,
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, result, s.cacheTTL)
	}
	return result, nil
}

func renderCacheKey(cfg Config) string {
	return fmt.Sprintf("portfolio:gallery:%s|%s|%s|%s|%t|%s|%s|%s|%s|%d|%s|%s|%s|%s",
		cfg.Link, cfg.ThumbSize, cfg.FullSize, cfg.TitlePosition, cfg.TitleLinked,
		cfg.Display, cfg.Heading, cfg.OrderBy, cfg.Order, cfg.Limit,
		cfg.TermsOrderBy, cfg.TermsOrder, strings.Join(cfg.Terms, ","), cfg.Operator,
	)
}

// Ensure Service implements interfaces.GalleryService.
var _ interfaces.GalleryService = (*Service)(nil)
