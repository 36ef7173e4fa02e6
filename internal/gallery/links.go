package gallery

import (
	"context"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/portfolio"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// LinkResolver computes the destination URL for an item's clickable image or
// title. Resolution never fails: missing assets and unroutable pages yield an
// empty URL so a gallery degrades instead of erroring.
type LinkResolver struct {
	images interfaces.ImageResolver
	routes *urlkit.RouteManager
	group  string
	route  string
	logger interfaces.Logger
}

// LinkResolverOption configures the resolver.
type LinkResolverOption func(*LinkResolver)

// WithPermalinkRoutes wires a go-urlkit route manager used to build item page
// URLs. The named route must accept a "slug" parameter.
func WithPermalinkRoutes(manager *urlkit.RouteManager, group, route string) LinkResolverOption {
	return func(r *LinkResolver) {
		r.routes = manager
		r.group = strings.TrimSpace(group)
		r.route = strings.TrimSpace(route)
	}
}

// WithLinkResolverLogger attaches a logger for resolution diagnostics.
func WithLinkResolverLogger(logger interfaces.Logger) LinkResolverOption {
	return func(r *LinkResolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewLinkResolver constructs a resolver over the supplied image resolver.
func NewLinkResolver(images interfaces.ImageResolver, opts ...LinkResolverOption) *LinkResolver {
	r := &LinkResolver{
		images: images,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the destination URL for the item. Precedence: the explicit
// gallery-level mode wins, then the item's stored override, then the image
// default. Unrecognised modes fall through to image on purpose.
func (r *LinkResolver) Resolve(ctx context.Context, explicit portfolio.LinkMode, item *portfolio.Item, fullSize string) string {
	if item == nil {
		return ""
	}

	mode := explicit
	if mode == portfolio.LinkModeUnset {
		mode = item.LinkMode
	}

	switch mode {
	case portfolio.LinkModePage:
		return r.permalink(item)
	case portfolio.LinkModeExternal:
		// Stored external URLs are validated at write time.
		return strings.TrimSpace(item.ExternalURL)
	default:
		return r.imageURL(ctx, item, fullSize)
	}
}

func (r *LinkResolver) permalink(item *portfolio.Item) string {
	if r.routes == nil || r.group == "" || r.route == "" {
		return ""
	}

	url, err := buildRoute(r.routes, r.group, r.route, item.Slug)
	if err != nil {
		r.logger.Warn("gallery.links.permalink_failed", "slug", item.Slug, "error", err)
		return ""
	}
	return url
}

func (r *LinkResolver) imageURL(ctx context.Context, item *portfolio.Item, fullSize string) string {
	if r.images == nil || !item.HasFeaturedImage() {
		return ""
	}
	url, err := r.images.ImageURL(ctx, *item.FeaturedImageID, fullSize)
	if err != nil {
		r.logger.Warn("gallery.links.image_failed", "item", item.Slug, "size", fullSize, "error", err)
		return ""
	}
	return url
}

// buildRoute isolates the urlkit lookup, converting its panics on unknown
// groups or routes into errors.
func buildRoute(manager *urlkit.RouteManager, group, route, slug string) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &RouteError{Group: group, Route: route, Cause: rec}
		}
	}()
	return manager.Group(group).Builder(route).WithParam("slug", slug).Build()
}
