package gallery

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-portfolio/internal/portfolio"
)

func TestLinkResolver_ItemOverrideWinsWhenConfigUnset(t *testing.T) {
	imageID := newImageID()
	item := &portfolio.Item{
		Slug:            "branding-suite",
		FeaturedImageID: &imageID,
		LinkMode:        portfolio.LinkModeExternal,
		ExternalURL:     "https://client.example/case-study",
	}

	resolver := NewLinkResolver(newStubImages(imageID))
	url := resolver.Resolve(context.Background(), portfolio.LinkModeUnset, item, "portfolio-large")
	if url != "https://client.example/case-study" {
		t.Fatalf("expected stored external URL, got %q", url)
	}
}

func TestLinkResolver_ExplicitModeWinsOverItemOverride(t *testing.T) {
	imageID := newImageID()
	item := &portfolio.Item{
		Slug:            "branding-suite",
		FeaturedImageID: &imageID,
		LinkMode:        portfolio.LinkModeExternal,
		ExternalURL:     "https://client.example/case-study",
	}

	resolver := NewLinkResolver(newStubImages(imageID),
		WithPermalinkRoutes(testRouteManager(), "frontend", "portfolio"))

	url := resolver.Resolve(context.Background(), portfolio.LinkModePage, item, "portfolio-large")
	if !strings.Contains(url, "/portfolio/branding-suite") {
		t.Fatalf("expected permalink, got %q", url)
	}
}

func TestLinkResolver_DefaultsToImage(t *testing.T) {
	imageID := newImageID()
	item := &portfolio.Item{Slug: "print-work", FeaturedImageID: &imageID}

	resolver := NewLinkResolver(newStubImages(imageID))
	url := resolver.Resolve(context.Background(), portfolio.LinkModeUnset, item, "portfolio-large")
	if !strings.Contains(url, "portfolio-large") {
		t.Fatalf("expected full-size image URL, got %q", url)
	}
}

func TestLinkResolver_UnrecognisedModeFallsBackToImage(t *testing.T) {
	imageID := newImageID()
	item := &portfolio.Item{
		Slug:            "print-work",
		FeaturedImageID: &imageID,
		LinkMode:        portfolio.LinkMode("lightbox"),
	}

	resolver := NewLinkResolver(newStubImages(imageID))
	url := resolver.Resolve(context.Background(), portfolio.LinkModeUnset, item, "portfolio-large")
	if !strings.Contains(url, "https://img.test/") {
		t.Fatalf("unknown mode should resolve the image URL, got %q", url)
	}
}

func TestLinkResolver_MissingAssetYieldsEmptyURL(t *testing.T) {
	imageID := newImageID()
	item := &portfolio.Item{Slug: "lost-asset", FeaturedImageID: &imageID}

	// Resolver that knows no images at all.
	resolver := NewLinkResolver(newStubImages())
	if url := resolver.Resolve(context.Background(), portfolio.LinkModeUnset, item, "portfolio-large"); url != "" {
		t.Fatalf("expected empty URL for missing asset, got %q", url)
	}
}

func TestLinkResolver_PageModeWithoutRoutesDegrades(t *testing.T) {
	item := &portfolio.Item{Slug: "no-routes"}

	resolver := NewLinkResolver(newStubImages())
	if url := resolver.Resolve(context.Background(), portfolio.LinkModePage, item, "portfolio-large"); url != "" {
		t.Fatalf("expected empty URL without a route manager, got %q", url)
	}
}
