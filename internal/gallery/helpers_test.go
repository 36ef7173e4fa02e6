package gallery

import (
	"context"
	"fmt"
	"testing"
	"time"

	urlkit "github.com/goliatone/go-urlkit"
	"github.com/google/uuid"

	"github.com/goliatone/go-portfolio/internal/portfolio"
)

// stubImages resolves every known image to a deterministic URL, and unknown
// images to empty values, mirroring the soft missing-asset contract.
type stubImages struct {
	known map[uuid.UUID]bool
}

func newStubImages(ids ...uuid.UUID) *stubImages {
	known := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		known[id] = true
	}
	return &stubImages{known: known}
}

func (s *stubImages) ImageURL(_ context.Context, imageID uuid.UUID, size string) (string, error) {
	if !s.known[imageID] {
		return "", nil
	}
	return fmt.Sprintf("https://img.test/%s-%s.jpg", imageID, size), nil
}

func (s *stubImages) ImageTag(_ context.Context, imageID uuid.UUID, size string, alt string) (string, error) {
	if !s.known[imageID] {
		return "", nil
	}
	return fmt.Sprintf(`<img src="https://img.test/%s-%s.jpg" alt=%q>`, imageID, size, alt), nil
}

func testRouteManager() *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    "frontend",
				BaseURL: "https://example.test",
				Paths: map[string]string{
					"portfolio": "/portfolio/:slug",
				},
			},
		},
	})
}

func newImageID() uuid.UUID {
	return uuid.New()
}

func featuredItem(t *testing.T, repo *portfolio.MemoryItemRepository, title, slug string, imageID uuid.UUID, published time.Time, terms ...*portfolio.Term) *portfolio.Item {
	t.Helper()

	item := &portfolio.Item{
		Title:           title,
		Slug:            slug,
		Excerpt:         title + " excerpt",
		Body:            "Work on **" + title + "**",
		FeaturedImageID: &imageID,
		PublishedAt:     published,
		Terms:           terms,
	}
	created, err := repo.Create(context.Background(), item)
	if err != nil {
		t.Fatalf("create item %s: %v", slug, err)
	}
	return created
}

func newTerm(t *testing.T, repo *portfolio.MemoryTermRepository, slug, name string) *portfolio.Term {
	t.Helper()

	term, err := repo.Create(context.Background(), &portfolio.Term{Slug: slug, Name: name})
	if err != nil {
		t.Fatalf("create term %s: %v", slug, err)
	}
	return term
}
