// Package assets resolves the stylesheet and filter script backing the
// capabilities a rendered gallery declares. Theme-supplied filesystems are
// probed before the bundled defaults so hosts can override either file by
// shipping their own copy.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

//go:embed files/portfolio.css files/portfolio.js
var bundledFiles embed.FS

const (
	// StylesheetName is the gallery stylesheet filename probed in themes.
	StylesheetName = "portfolio.css"
	// ScriptName is the feature filter script filename probed in themes.
	ScriptName = "portfolio.js"
)

// Source identifies where a resolved asset came from.
type Source string

const (
	SourceTheme   Source = "theme"
	SourceBundled Source = "bundled"
)

// Asset is a resolved file reference. Content reads lazily so hosts that only
// need the name and source for URL generation skip the file read.
type Asset struct {
	Name   string
	Source Source

	fsys fs.FS
}

// Content returns the asset bytes.
func (a Asset) Content() ([]byte, error) {
	data, err := fs.ReadFile(a.fsys, a.Name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", a.Name, err)
	}
	return data, nil
}

// NotFoundError reports an asset missing from every configured filesystem.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("assets: %s not found", e.Name)
}

// Resolver probes theme override filesystems in registration order, then the
// bundled defaults.
type Resolver struct {
	overrides []fs.FS
	bundled   fs.FS
	logger    interfaces.Logger
}

// Option customises resolver construction.
type Option func(*Resolver)

// WithThemeOverride adds a filesystem probed ahead of the bundled assets.
// Overrides are checked in the order they were added; the first hit wins.
func WithThemeOverride(fsys fs.FS) Option {
	return func(r *Resolver) {
		if fsys != nil {
			r.overrides = append(r.overrides, fsys)
		}
	}
}

// WithResolverLogger attaches a logger for resolution diagnostics.
func WithResolverLogger(logger interfaces.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver builds a resolver over the bundled defaults.
func NewResolver(opts ...Option) *Resolver {
	bundled, err := fs.Sub(bundledFiles, "files")
	if err != nil {
		// The embedded tree is fixed at compile time; Sub on it cannot fail.
		panic(fmt.Sprintf("assets: bundled filesystem: %v", err))
	}
	r := &Resolver{
		bundled: bundled,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve locates a single asset by filename.
func (r *Resolver) Resolve(name string) (Asset, error) {
	for _, fsys := range r.overrides {
		if _, err := fs.Stat(fsys, name); err == nil {
			r.logger.Debug("assets.resolved", "asset", name, "source", SourceTheme)
			return Asset{Name: name, Source: SourceTheme, fsys: fsys}, nil
		}
	}
	if _, err := fs.Stat(r.bundled, name); err == nil {
		r.logger.Debug("assets.resolved", "asset", name, "source", SourceBundled)
		return Asset{Name: name, Source: SourceBundled, fsys: r.bundled}, nil
	}
	return Asset{}, &NotFoundError{Name: name}
}

// ForCapabilities resolves the assets backing each declared capability.
// Unknown capabilities are skipped; the host may satisfy them elsewhere.
func (r *Resolver) ForCapabilities(capabilities []interfaces.ClientCapability) ([]Asset, error) {
	var resolved []Asset
	for _, capability := range capabilities {
		name, ok := assetFor(capability)
		if !ok {
			r.logger.Debug("assets.capability_skipped", "capability", string(capability))
			continue
		}
		asset, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, asset)
	}
	return resolved, nil
}

func assetFor(capability interfaces.ClientCapability) (string, bool) {
	switch capability {
	case interfaces.CapabilityGalleryStyles:
		return StylesheetName, true
	case interfaces.CapabilityFilterScript:
		return ScriptName, true
	default:
		return "", false
	}
}
