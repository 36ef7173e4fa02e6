package interfaces

import (
	"context"
	"html/template"
)

// ClientCapability names a client-side behaviour the rendered markup depends
// on. Hosts decide how the capability is satisfied (bundled asset, theme
// override, or nothing at all).
type ClientCapability string

const (
	// CapabilityFilterScript is requested whenever a gallery emits a feature
	// filter list that expects the animated show/hide behaviour.
	CapabilityFilterScript ClientCapability = "portfolio.filter-script"
	// CapabilityGalleryStyles is requested for every non-empty gallery.
	CapabilityGalleryStyles ClientCapability = "portfolio.gallery-styles"
)

// RenderResult carries the rendered gallery fragment together with the set of
// client capabilities the markup relies on. Requirements are declared rather
// than registered as side effects so callers stay in control of asset loading.
type RenderResult struct {
	HTML         template.HTML
	Capabilities []ClientCapability
}

// Empty reports whether the render produced no markup. A gallery with zero
// matching items is empty output, not an error.
func (r RenderResult) Empty() bool {
	return len(r.HTML) == 0
}

// Requires reports whether the result declared the given capability.
func (r RenderResult) Requires(capability ClientCapability) bool {
	for _, c := range r.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// GalleryService renders portfolio galleries from string-keyed configuration
// overrides, typically sourced from shortcode attributes.
type GalleryService interface {
	Render(ctx context.Context, overrides map[string]any) (RenderResult, error)
}

// ShortcodeService expands [portfolio] shortcodes found in arbitrary content.
type ShortcodeService interface {
	// Process replaces every portfolio shortcode occurrence with rendered
	// gallery markup and returns the union of capabilities the galleries
	// declared. Content without shortcodes passes through untouched.
	Process(ctx context.Context, content string) (string, []ClientCapability, error)
}

// PortfolioRegistrar is implemented by hosts that register content schemas.
// The module hands it the portfolio type and feature taxonomy definitions
// during activation.
type PortfolioRegistrar interface {
	RegisterContentType(ctx context.Context, definition ContentTypeDefinition) error
	RegisterTaxonomy(ctx context.Context, definition TaxonomyDefinition) error
}

// ContentTypeDefinition describes the portfolio content type to a host CMS.
type ContentTypeDefinition struct {
	Slug     string
	Labels   map[string]string
	Public   bool
	MenuIcon string
	Supports []string
	Rewrite  RewriteRule
}

// TaxonomyDefinition describes the feature taxonomy to a host CMS.
type TaxonomyDefinition struct {
	Slug            string
	ContentType     string
	Labels          map[string]string
	Hierarchical    bool
	ShowAdminColumn bool
	Rewrite         RewriteRule
}

// RewriteRule captures the pretty-URL mapping registered with the host.
type RewriteRule struct {
	Slug      string
	WithFront bool
}
