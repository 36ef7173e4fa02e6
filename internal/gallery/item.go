package gallery

import (
	"context"
	"html/template"
	"strings"

	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/portfolio"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// ItemRenderer produces the list-entry fragment for a single portfolio item.
type ItemRenderer struct {
	links  *LinkResolver
	images interfaces.ImageResolver
	body   *markdown.Renderer
	logger interfaces.Logger
}

// NewItemRenderer constructs a renderer over the shared link resolver.
func NewItemRenderer(links *LinkResolver, images interfaces.ImageResolver, body *markdown.Renderer, logger interfaces.Logger) *ItemRenderer {
	return &ItemRenderer{
		links:  links,
		images: images,
		body:   body,
		logger: logger,
	}
}

// Render emits one <li> fragment. The entry carries the item id and its
// feature slugs as data attributes so the client-side filter script can match
// entries against the filter list. Exactly one title position is used, the
// image is always link-wrapped, and the body fragment follows the display
// mode.
func (r *ItemRenderer) Render(ctx context.Context, item *portfolio.Item, cfg Config) string {
	var s strings.Builder

	s.WriteString(`<li data-id="id-`)
	s.WriteString(item.ID.String())
	s.WriteString(`" data-type="`)
	s.WriteString(strings.Join(item.TermSlugs(), " "))
	s.WriteString(`">`)

	if cfg.TitlePosition == TitleAbove {
		s.WriteString(r.title(ctx, item, cfg))
	}

	s.WriteString(r.image(ctx, item, cfg))

	if cfg.TitlePosition == TitleBelow {
		s.WriteString(r.title(ctx, item, cfg))
	}

	s.WriteString(r.bodyFragment(item, cfg))
	s.WriteString(`</li>`)

	return s.String()
}

func (r *ItemRenderer) title(ctx context.Context, item *portfolio.Item, cfg Config) string {
	var s strings.Builder
	s.WriteString(`<div class="portfolio-title">`)

	if cfg.TitleLinked {
		s.WriteString(`<a href="`)
		s.WriteString(template.HTMLEscapeString(r.links.Resolve(ctx, cfg.Link, item, cfg.FullSize)))
		s.WriteString(`">`)
	}

	s.WriteString(template.HTMLEscapeString(item.Title))

	if cfg.TitleLinked {
		s.WriteString(`</a>`)
	}

	s.WriteString(`</div>`)
	return s.String()
}

// image emits the thumbnail wrapped in its destination hyperlink. The wrapper
// is emitted even when the thumbnail markup or the destination resolves
// empty: a missing asset renders a degraded entry rather than failing the
// gallery.
func (r *ItemRenderer) image(ctx context.Context, item *portfolio.Item, cfg Config) string {
	mode := cfg.Link
	if mode == portfolio.LinkModeUnset {
		mode = item.LinkMode
	}
	if mode == portfolio.LinkModeUnset {
		mode = portfolio.LinkModeImage
	}

	var s strings.Builder
	s.WriteString(`<a class="portfolio-link portfolio-`)
	s.WriteString(string(mode))
	s.WriteString(`" href="`)
	s.WriteString(template.HTMLEscapeString(r.links.Resolve(ctx, cfg.Link, item, cfg.FullSize)))
	s.WriteString(`">`)
	s.WriteString(r.thumbnail(ctx, item, cfg))
	s.WriteString(`</a>`)
	return s.String()
}

func (r *ItemRenderer) thumbnail(ctx context.Context, item *portfolio.Item, cfg Config) string {
	if r.images == nil || !item.HasFeaturedImage() {
		return ""
	}
	tag, err := r.images.ImageTag(ctx, *item.FeaturedImageID, cfg.ThumbSize, item.Title)
	if err != nil {
		r.logger.Warn("gallery.item.thumbnail_failed", "item", item.Slug, "size", cfg.ThumbSize, "error", err)
		return ""
	}
	return tag
}

func (r *ItemRenderer) bodyFragment(item *portfolio.Item, cfg Config) string {
	var inner string
	switch cfg.Display {
	case DisplayContent:
		rendered, err := r.body.Render(item.Body)
		if err != nil {
			r.logger.Warn("gallery.item.body_render_failed", "item", item.Slug, "error", err)
			inner = template.HTMLEscapeString(item.Body)
		} else {
			inner = rendered
		}
	case DisplayExcerpt:
		inner = template.HTMLEscapeString(item.Excerpt)
	default:
		return ""
	}
	return `<div class="portfolio-text">` + inner + `</div>`
}
