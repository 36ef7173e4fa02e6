package assets

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

func TestResolveFallsBackToBundled(t *testing.T) {
	resolver := NewResolver()

	asset, err := resolver.Resolve(StylesheetName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Source != SourceBundled {
		t.Fatalf("expected bundled source, got %q", asset.Source)
	}

	content, err := asset.Content()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(content), ".portfolio-grid") {
		t.Fatalf("bundled stylesheet should style the grid, got %q", content)
	}
}

func TestResolvePrefersThemeOverride(t *testing.T) {
	theme := fstest.MapFS{
		StylesheetName: &fstest.MapFile{Data: []byte(".portfolio-grid { gap: 2rem; }")},
	}
	resolver := NewResolver(WithThemeOverride(theme))

	asset, err := resolver.Resolve(StylesheetName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Source != SourceTheme {
		t.Fatalf("expected theme source, got %q", asset.Source)
	}

	content, err := asset.Content()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != ".portfolio-grid { gap: 2rem; }" {
		t.Fatalf("theme copy should win, got %q", content)
	}

	script, err := resolver.Resolve(ScriptName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Source != SourceBundled {
		t.Fatalf("missing theme file should fall back to bundled, got %q", script.Source)
	}
}

func TestResolveOverridesProbeInOrder(t *testing.T) {
	child := fstest.MapFS{
		StylesheetName: &fstest.MapFile{Data: []byte("/* child theme */")},
	}
	parent := fstest.MapFS{
		StylesheetName: &fstest.MapFile{Data: []byte("/* parent theme */")},
	}
	resolver := NewResolver(WithThemeOverride(child), WithThemeOverride(parent))

	asset, err := resolver.Resolve(StylesheetName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, err := asset.Content()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "/* child theme */" {
		t.Fatalf("first override should win, got %q", content)
	}
}

func TestResolveUnknownAsset(t *testing.T) {
	resolver := NewResolver()

	_, err := resolver.Resolve("portfolio.map")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Name != "portfolio.map" {
		t.Fatalf("unexpected asset name in error: %q", notFound.Name)
	}
}

func TestForCapabilities(t *testing.T) {
	resolver := NewResolver()

	resolved, err := resolver.ForCapabilities([]interfaces.ClientCapability{
		interfaces.CapabilityGalleryStyles,
		interfaces.CapabilityFilterScript,
		interfaces.ClientCapability("portfolio.lightbox"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(resolved))
	}
	if resolved[0].Name != StylesheetName || resolved[1].Name != ScriptName {
		t.Fatalf("unexpected resolution order: %v", resolved)
	}
}

func TestForCapabilitiesEmpty(t *testing.T) {
	resolver := NewResolver()

	resolved, err := resolver.ForCapabilities(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved != nil {
		t.Fatalf("expected no assets, got %v", resolved)
	}
}
