// Package contenttype declares the portfolio content type and feature
// taxonomy to the host CMS and runs the activation flow.
package contenttype

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const (
	// ContentTypeSlug is the portfolio item type identifier.
	ContentTypeSlug = "portfolio"
	// TaxonomySlug is the feature taxonomy identifier.
	TaxonomySlug = "feature"
)

var ErrRegistrarRequired = errors.New("contenttype: registrar is required")

// ContentTypeDefinition returns the portfolio type declaration handed to the
// host registrar during activation.
func ContentTypeDefinition() interfaces.ContentTypeDefinition {
	return interfaces.ContentTypeDefinition{
		Slug: ContentTypeSlug,
		Labels: map[string]string{
			"name":               "Portfolio",
			"singular_name":      "Portfolio",
			"add_new":            "Add New",
			"add_new_item":       "Add New Portfolio Item",
			"edit":               "Edit",
			"edit_item":          "Edit Portfolio Item",
			"new_item":           "New Item",
			"view":               "View Portfolio",
			"view_item":          "View Portfolio Item",
			"search_items":       "Search Portfolio",
			"not_found":          "No portfolio items found",
			"not_found_in_trash": "No portfolio items found in Trash",
		},
		Public:   true,
		MenuIcon: "dashicons-portfolio",
		Supports: []string{"title", "editor", "thumbnail"},
		Rewrite: interfaces.RewriteRule{
			Slug:      "portfolio",
			WithFront: false,
		},
	}
}

// TaxonomyDefinition returns the feature taxonomy declaration.
func TaxonomyDefinition() interfaces.TaxonomyDefinition {
	return interfaces.TaxonomyDefinition{
		Slug:        TaxonomySlug,
		ContentType: ContentTypeSlug,
		Labels: map[string]string{
			"name":                       "Features",
			"singular_name":              "Feature",
			"search_items":               "Search Features",
			"popular_items":              "Popular Features",
			"all_items":                  "All Features",
			"edit_item":                  "Edit Feature",
			"update_item":                "Update Feature",
			"add_new_item":               "Add New Feature",
			"new_item_name":              "New Feature Name",
			"separate_items_with_commas": "Separate features with commas",
			"add_or_remove_items":        "Add or remove features",
			"choose_from_most_used":      "Choose from the most used features",
			"menu_name":                  "Features",
		},
		Hierarchical:    false,
		ShowAdminColumn: true,
		Rewrite: interfaces.RewriteRule{
			Slug:      "feature",
			WithFront: true,
		},
	}
}

// RewriteFlusher is implemented by registrars that cache rewrite rules and
// need an explicit flush after schema changes.
type RewriteFlusher interface {
	FlushRewriteRules(ctx context.Context) error
}

// Activator drives registration against a host registrar.
type Activator struct {
	registrar interfaces.PortfolioRegistrar
	logger    interfaces.Logger
}

// ActivatorOption customises the activator.
type ActivatorOption func(*Activator)

// WithActivatorLogger attaches a logger for activation diagnostics.
func WithActivatorLogger(logger interfaces.Logger) ActivatorOption {
	return func(a *Activator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// NewActivator wires an activator to the host registrar.
func NewActivator(registrar interfaces.PortfolioRegistrar, opts ...ActivatorOption) (*Activator, error) {
	if registrar == nil {
		return nil, ErrRegistrarRequired
	}
	a := &Activator{
		registrar: registrar,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Activate registers the content type and taxonomy with the host, then asks
// it to flush rewrite rules when it supports that. Deactivation only needs
// the flush; schemas stay registered so existing content keeps resolving.
func (a *Activator) Activate(ctx context.Context) error {
	if err := a.registrar.RegisterContentType(ctx, ContentTypeDefinition()); err != nil {
		a.logger.Error("contenttype.register_failed", "slug", ContentTypeSlug, "error", err)
		return fmt.Errorf("contenttype: register %s: %w", ContentTypeSlug, err)
	}
	if err := a.registrar.RegisterTaxonomy(ctx, TaxonomyDefinition()); err != nil {
		a.logger.Error("contenttype.register_taxonomy_failed", "slug", TaxonomySlug, "error", err)
		return fmt.Errorf("contenttype: register taxonomy %s: %w", TaxonomySlug, err)
	}
	a.logger.Info("contenttype.registered", "content_type", ContentTypeSlug, "taxonomy", TaxonomySlug)
	return a.flushRewrites(ctx)
}

// Deactivate clears cached rewrite rules without touching registered schema.
func (a *Activator) Deactivate(ctx context.Context) error {
	return a.flushRewrites(ctx)
}

func (a *Activator) flushRewrites(ctx context.Context) error {
	flusher, ok := a.registrar.(RewriteFlusher)
	if !ok {
		return nil
	}
	if err := flusher.FlushRewriteRules(ctx); err != nil {
		return fmt.Errorf("contenttype: flush rewrite rules: %w", err)
	}
	return nil
}
