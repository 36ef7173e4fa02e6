package gallery

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-portfolio/internal/portfolio"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

func TestService_EmptyRepositoryRendersNothing(t *testing.T) {
	svc, err := NewService(portfolio.NewMemoryItemRepository(), portfolio.NewMemoryTermRepository(), newStubImages())
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	result, err := svc.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !result.Empty() {
		t.Fatalf("expected empty result, got %s", result.HTML)
	}
	if len(result.Capabilities) != 0 {
		t.Fatalf("empty result must not declare capabilities, got %v", result.Capabilities)
	}
}

func TestService_ItemsWithoutFeaturedImageAreExcluded(t *testing.T) {
	items := portfolio.NewMemoryItemRepository()
	if _, err := items.Create(context.Background(), &portfolio.Item{
		Title: "No Image",
		Slug:  "no-image",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	svc, err := NewService(items, portfolio.NewMemoryTermRepository(), newStubImages())
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	result, err := svc.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !result.Empty() {
		t.Fatalf("unfeatured items must not render, got %s", result.HTML)
	}
}

func TestService_EndToEndGalleryWithFilterList(t *testing.T) {
	items := portfolio.NewMemoryItemRepository()
	terms := portfolio.NewMemoryTermRepository()

	termA := newTerm(t, terms, "branding", "Branding")
	termB := newTerm(t, terms, "web", "Web")

	imageA, imageB, imageC := newImageID(), newImageID(), newImageID()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	featuredItem(t, items, "Alpha", "alpha", imageA, base.Add(2*time.Hour), termA)
	featuredItem(t, items, "Beta", "beta", imageB, base.Add(time.Hour), termB)
	featuredItem(t, items, "Gamma", "gamma", imageC, base, termA, termB)

	svc, err := NewService(items, terms, newStubImages(imageA, imageB, imageC))
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	result, err := svc.Render(context.Background(), map[string]any{"display": "excerpt"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html := string(result.HTML)
	if got := strings.Count(html, "<li data-id="); got != 3 {
		t.Fatalf("expected 3 entries, got %d in %s", got, html)
	}
	if got := strings.Count(html, `class="portfolio-text"`); got != 3 {
		t.Fatalf("expected an excerpt block per entry, got %d", got)
	}

	// Default ordering is date descending.
	alphaAt := strings.Index(html, "Alpha excerpt")
	betaAt := strings.Index(html, "Beta excerpt")
	gammaAt := strings.Index(html, "Gamma excerpt")
	if !(alphaAt >= 0 && alphaAt < betaAt && betaAt < gammaAt) {
		t.Fatalf("expected date-descending order, got %s", html)
	}

	// Two distinct terms exist: All + branding + web.
	if got := strings.Count(html, `href="javascript:void(0)"`); got != 3 {
		t.Fatalf("expected 3 filter entries, got %d in %s", got, html)
	}

	if !result.Requires(interfaces.CapabilityFilterScript) {
		t.Fatal("filtered gallery must request the filter script")
	}
	if !result.Requires(interfaces.CapabilityGalleryStyles) {
		t.Fatal("gallery must request its stylesheet")
	}
}

// The filter-list exclusion and the item-level term constraint are separate
// criteria paths: excluding "branding" from the filter list suppresses the
// list (one term left) while the item query keeps its own NOT IN semantics.
func TestService_ExclusionPathsAreIndependent(t *testing.T) {
	items := portfolio.NewMemoryItemRepository()
	terms := portfolio.NewMemoryTermRepository()

	termA := newTerm(t, terms, "branding", "Branding")
	termB := newTerm(t, terms, "web", "Web")

	imageA, imageB, imageC := newImageID(), newImageID(), newImageID()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	featuredItem(t, items, "Alpha", "alpha", imageA, base.Add(2*time.Hour), termA)
	featuredItem(t, items, "Beta", "beta", imageB, base.Add(time.Hour), termB)
	featuredItem(t, items, "Gamma", "gamma", imageC, base, termA, termB)

	// Call site 1: the filter list alone.
	builder := NewFilterListBuilder(terms)
	cfg := MergeConfig(DefaultConfig(), map[string]any{"terms": "branding", "operator": "NOT IN"})
	filterList, err := builder.Build(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if filterList != "" {
		t.Fatalf("expected suppressed filter list, got %s", filterList)
	}

	// Call site 2: the item query applies NOT IN independently.
	svc, err := NewService(items, terms, newStubImages(imageA, imageB, imageC))
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}
	result, err := svc.Render(context.Background(), map[string]any{"terms": "branding", "operator": "NOT IN"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html := string(result.HTML)
	if got := strings.Count(html, "<li data-id="); got != 1 {
		t.Fatalf("expected only the web-only item, got %d entries in %s", got, html)
	}
	if !strings.Contains(html, `data-type="web"`) {
		t.Fatalf("expected the web item to survive, got %s", html)
	}
	if strings.Contains(html, "portfolio-features") {
		t.Fatalf("filter list should stay suppressed in the full render: %s", html)
	}
	if result.Requires(interfaces.CapabilityFilterScript) {
		t.Fatal("suppressed filter list must not request the filter script")
	}
}

func TestService_LimitAndOrdering(t *testing.T) {
	items := portfolio.NewMemoryItemRepository()
	terms := portfolio.NewMemoryTermRepository()

	imageA, imageB := newImageID(), newImageID()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	featuredItem(t, items, "Older", "older", imageA, base)
	featuredItem(t, items, "Newer", "newer", imageB, base.Add(time.Hour))

	svc, err := NewService(items, terms, newStubImages(imageA, imageB))
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	result, err := svc.Render(context.Background(), map[string]any{"posts_per_page": 1})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	html := string(result.HTML)
	if strings.Count(html, "<li data-id=") != 1 || !strings.Contains(html, "Newer") {
		t.Fatalf("expected single newest item, got %s", html)
	}

	result, err = svc.Render(context.Background(), map[string]any{"posts_per_page": 1, "order": "asc"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(result.HTML), "Older") {
		t.Fatalf("expected oldest item first ascending, got %s", result.HTML)
	}
}

type failingItems struct {
	portfolio.ItemRepository
	err error
}

func (f failingItems) List(context.Context, portfolio.ItemQuery) ([]*portfolio.Item, error) {
	return nil, f.err
}

func TestService_RepositoryErrorsPropagate(t *testing.T) {
	repoErr := errors.New("storage offline")
	svc, err := NewService(failingItems{portfolio.NewMemoryItemRepository(), repoErr}, portfolio.NewMemoryTermRepository(), newStubImages())
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	if _, err := svc.Render(context.Background(), nil); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}

type mapCache struct {
	entries map[string]any
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]any{}}
}

func (c *mapCache) Get(_ context.Context, key string) (any, error) {
	value, ok := c.entries[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return value, nil
}

func (c *mapCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.entries[key] = value
	c.sets++
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	return nil
}

func (c *mapCache) Clear(context.Context) error {
	c.entries = map[string]any{}
	return nil
}

type countingItems struct {
	portfolio.ItemRepository
	lists int
}

func (c *countingItems) List(ctx context.Context, query portfolio.ItemQuery) ([]*portfolio.Item, error) {
	c.lists++
	return c.ItemRepository.List(ctx, query)
}

func TestService_RenderCache(t *testing.T) {
	items := portfolio.NewMemoryItemRepository()
	terms := portfolio.NewMemoryTermRepository()
	imageID := newImageID()
	featuredItem(t, items, "Alpha", "alpha", imageID, time.Now())

	counted := &countingItems{ItemRepository: items}
	cache := newMapCache()
	svc, err := NewService(counted, terms, newStubImages(imageID), WithRenderCache(cache, time.Minute))
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}

	first, err := svc.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	second, err := svc.Render(context.Background(), nil)
	if err != nil {
		t.Fatalf("cached Render() error: %v", err)
	}
	if counted.lists != 1 {
		t.Fatalf("expected one repository read, got %d", counted.lists)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
	if first.HTML != second.HTML {
		t.Fatalf("cached render should match: %q vs %q", first.HTML, second.HTML)
	}

	// A different configuration misses the cache.
	if _, err := svc.Render(context.Background(), map[string]any{"display": "excerpt"}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if counted.lists != 2 {
		t.Fatalf("distinct configs should not share entries, got %d reads", counted.lists)
	}
}
