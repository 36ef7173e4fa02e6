// Package portfolio assembles filterable portfolio galleries: a content type
// with a feature taxonomy, a gallery renderer, a [portfolio] shortcode, and
// theme-overridable assets. Hosts embed the module and wire their own
// storage, media resolution, and routing through options.
package portfolio

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-urlkit"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-portfolio/internal/assets"
	"github.com/goliatone/go-portfolio/internal/contenttype"
	"github.com/goliatone/go-portfolio/internal/gallery"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/logging/gologger"
	portfoliodomain "github.com/goliatone/go-portfolio/internal/portfolio"
	"github.com/goliatone/go-portfolio/internal/shortcode"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// Re-exported contracts and DTOs for consumers of the module.
type (
	GalleryService   = interfaces.GalleryService
	ShortcodeService = interfaces.ShortcodeService
	RenderResult     = interfaces.RenderResult
	ClientCapability = interfaces.ClientCapability
	ImageResolver    = interfaces.ImageResolver
	Registrar        = interfaces.PortfolioRegistrar

	Item           = portfoliodomain.Item
	Term           = portfoliodomain.Term
	ItemQuery      = portfoliodomain.ItemQuery
	TermQuery      = portfoliodomain.TermQuery
	LinkMode       = portfoliodomain.LinkMode
	ItemRepository = portfoliodomain.ItemRepository
	TermRepository = portfoliodomain.TermRepository

	ItemSettings = contenttype.ItemSettings
	GlanceCounts = contenttype.GlanceCounts
	Asset        = assets.Asset
)

const (
	CapabilityFilterScript  = interfaces.CapabilityFilterScript
	CapabilityGalleryStyles = interfaces.CapabilityGalleryStyles

	LinkModeImage    = portfoliodomain.LinkModeImage
	LinkModePage     = portfoliodomain.LinkModePage
	LinkModeExternal = portfoliodomain.LinkModeExternal
)

var ErrImageResolverRequired = errors.New("portfolio: image resolver is required")

type moduleOptions struct {
	items       portfoliodomain.ItemRepository
	terms       portfoliodomain.TermRepository
	images      interfaces.ImageResolver
	provider    interfaces.LoggerProvider
	db          *bun.DB
	cacheSvc    cache.CacheService
	cacheKeys   cache.KeySerializer
	routes      *urlkit.RouteManager
	themeFS     []fs.FS
	registrar   interfaces.PortfolioRegistrar
	renderCache interfaces.CacheProvider
	renderTTL   time.Duration
}

// Option overrides a module dependency.
type Option func(*moduleOptions)

// WithItemRepository supplies a custom item repository.
func WithItemRepository(items portfoliodomain.ItemRepository) Option {
	return func(o *moduleOptions) { o.items = items }
}

// WithTermRepository supplies a custom feature term repository.
func WithTermRepository(terms portfoliodomain.TermRepository) Option {
	return func(o *moduleOptions) { o.terms = terms }
}

// WithImageResolver wires the host's media library.
func WithImageResolver(images interfaces.ImageResolver) Option {
	return func(o *moduleOptions) { o.images = images }
}

// WithLoggerProvider replaces the default go-logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) { o.provider = provider }
}

// WithDB backs the repositories with a bun database instead of memory.
// Explicit repository options take precedence over the derived ones.
func WithDB(db *bun.DB) Option {
	return func(o *moduleOptions) { o.db = db }
}

// WithQueryCache layers read-through caching onto database repositories.
// Ignored unless WithDB is also set.
func WithQueryCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(o *moduleOptions) {
		o.cacheSvc = service
		o.cacheKeys = serializer
	}
}

// WithRenderCache caches rendered gallery fragments in the provided cache.
// A non-positive TTL falls back to the service default.
func WithRenderCache(provider interfaces.CacheProvider, ttl time.Duration) Option {
	return func(o *moduleOptions) {
		o.renderCache = provider
		o.renderTTL = ttl
	}
}

// WithRouteManager enables the page link mode by supplying the urlkit route
// manager used to build item permalinks.
func WithRouteManager(routes *urlkit.RouteManager) Option {
	return func(o *moduleOptions) { o.routes = routes }
}

// WithThemeAssets adds a filesystem probed for portfolio.css / portfolio.js
// before the bundled copies. May be given more than once; earlier
// filesystems win.
func WithThemeAssets(fsys fs.FS) Option {
	return func(o *moduleOptions) {
		if fsys != nil {
			o.themeFS = append(o.themeFS, fsys)
		}
	}
}

// WithRegistrar wires the host CMS registrar used during activation.
func WithRegistrar(registrar interfaces.PortfolioRegistrar) Option {
	return func(o *moduleOptions) { o.registrar = registrar }
}

// Module is the top level portfolio runtime facade.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	items     portfoliodomain.ItemRepository
	terms     portfoliodomain.TermRepository
	gallery   *gallery.Service
	shortcode *shortcode.Service
	assets    *assets.Resolver
	activator *contenttype.Activator
}

// New constructs a portfolio module from the configuration and options.
// An image resolver is mandatory; repositories default to in-memory stores
// unless WithDB or explicit repository options are given.
func New(cfg Config, opts ...Option) (*Module, error) {
	o := &moduleOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.images == nil {
		return nil, ErrImageResolverRequired
	}

	provider := o.provider
	if provider == nil {
		var err error
		provider, err = gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
	}

	items, terms := o.repositories()

	linkOpts := []gallery.LinkResolverOption{
		gallery.WithLinkResolverLogger(logging.GalleryLogger(provider)),
	}
	if o.routes != nil {
		linkOpts = append(linkOpts, gallery.WithPermalinkRoutes(o.routes, cfg.Routes.Group, cfg.Routes.Route))
	}
	links := gallery.NewLinkResolver(o.images, linkOpts...)

	galleryOpts := []gallery.ServiceOption{
		gallery.WithDefaults(cfg.Gallery),
		gallery.WithLinkResolver(links),
		gallery.WithLogger(logging.GalleryLogger(provider)),
	}
	if o.renderCache != nil {
		galleryOpts = append(galleryOpts, gallery.WithRenderCache(o.renderCache, o.renderTTL))
	}
	galleryService, err := gallery.NewService(items, terms, o.images, galleryOpts...)
	if err != nil {
		return nil, err
	}

	m := &Module{
		cfg:      cfg,
		provider: provider,
		items:    items,
		terms:    terms,
		gallery:  galleryService,
	}

	if cfg.Features.Shortcode {
		m.shortcode = shortcode.NewService(m,
			shortcode.WithLogger(logging.ShortcodeLogger(provider)),
		)
	}

	assetOpts := []assets.Option{
		assets.WithResolverLogger(logging.ModuleLogger(provider, "portfolio")),
	}
	for _, fsys := range o.themeFS {
		assetOpts = append(assetOpts, assets.WithThemeOverride(fsys))
	}
	m.assets = assets.NewResolver(assetOpts...)

	if o.registrar != nil {
		activator, err := contenttype.NewActivator(o.registrar,
			contenttype.WithActivatorLogger(logging.ContentLogger(provider)),
		)
		if err != nil {
			return nil, err
		}
		m.activator = activator
	}

	return m, nil
}

func (o *moduleOptions) repositories() (portfoliodomain.ItemRepository, portfoliodomain.TermRepository) {
	items := o.items
	terms := o.terms
	if o.db != nil {
		portfoliodomain.RegisterModels(o.db)
		if items == nil {
			items = portfoliodomain.NewBunItemRepositoryWithCache(o.db, o.cacheSvc, o.cacheKeys)
		}
		if terms == nil {
			terms = portfoliodomain.NewBunTermRepositoryWithCache(o.db, o.cacheSvc, o.cacheKeys)
		}
	}
	if items == nil {
		items = portfoliodomain.NewMemoryItemRepository()
	}
	if terms == nil {
		terms = portfoliodomain.NewMemoryTermRepository()
	}
	return items, terms
}

// Render implements interfaces.GalleryService with the module's feature
// flags applied.
func (m *Module) Render(ctx context.Context, overrides map[string]any) (interfaces.RenderResult, error) {
	result, err := m.gallery.Render(ctx, overrides)
	if err != nil {
		return interfaces.RenderResult{}, err
	}
	if !m.cfg.Features.FilterScript {
		result.Capabilities = dropCapability(result.Capabilities, interfaces.CapabilityFilterScript)
	}
	return result, nil
}

// ProcessContent expands [portfolio] shortcodes in the content. When the
// shortcode feature is disabled the content passes through untouched.
func (m *Module) ProcessContent(ctx context.Context, content string) (string, []interfaces.ClientCapability, error) {
	if m.shortcode == nil {
		return content, nil, nil
	}
	return m.shortcode.Process(ctx, content)
}

// Gallery returns the gallery service with feature flags applied.
func (m *Module) Gallery() interfaces.GalleryService {
	return m
}

// Items returns the item repository.
func (m *Module) Items() portfoliodomain.ItemRepository {
	return m.items
}

// Terms returns the feature term repository.
func (m *Module) Terms() portfoliodomain.TermRepository {
	return m.terms
}

// Assets resolves assets for the given capabilities, preferring theme copies
// over the bundled defaults.
func (m *Module) Assets(capabilities []interfaces.ClientCapability) ([]assets.Asset, error) {
	return m.assets.ForCapabilities(capabilities)
}

// ResolveAsset locates a single asset file by name.
func (m *Module) ResolveAsset(name string) (assets.Asset, error) {
	return m.assets.Resolve(name)
}

// AtAGlance reports item and feature counts for dashboards.
func (m *Module) AtAGlance(ctx context.Context) (contenttype.GlanceCounts, error) {
	return contenttype.AtAGlance(ctx, m.items, m.terms)
}

// ContentTypeDefinition returns the portfolio type declaration.
func (m *Module) ContentTypeDefinition() interfaces.ContentTypeDefinition {
	return contenttype.ContentTypeDefinition()
}

// TaxonomyDefinition returns the feature taxonomy declaration.
func (m *Module) TaxonomyDefinition() interfaces.TaxonomyDefinition {
	return contenttype.TaxonomyDefinition()
}

// Activate registers the content type and taxonomy with the configured
// registrar and flushes rewrite rules.
func (m *Module) Activate(ctx context.Context) error {
	if m.activator == nil {
		return contenttype.ErrRegistrarRequired
	}
	return m.activator.Activate(ctx)
}

// Deactivate flushes rewrite rules without unregistering schema.
func (m *Module) Deactivate(ctx context.Context) error {
	if m.activator == nil {
		return contenttype.ErrRegistrarRequired
	}
	return m.activator.Deactivate(ctx)
}

func dropCapability(capabilities []interfaces.ClientCapability, drop interfaces.ClientCapability) []interfaces.ClientCapability {
	var kept []interfaces.ClientCapability
	for _, capability := range capabilities {
		if capability != drop {
			kept = append(kept, capability)
		}
	}
	return kept
}

// Ensure Module satisfies the gallery contract it hands to the shortcode
// service.
var _ interfaces.GalleryService = (*Module)(nil)
