package portfolio

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository abstracts persistence for portfolio items. List implements
// the gallery query contract: only items with a featured image, term filter
// per operator, ordered and bounded per the query. Implementations return
// items with their Terms relation populated.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) (*Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	GetBySlug(ctx context.Context, slug string) (*Item, error)
	List(ctx context.Context, query ItemQuery) ([]*Item, error)
	Count(ctx context.Context) (int, error)
}

// TermRepository abstracts persistence for feature terms.
type TermRepository interface {
	Create(ctx context.Context, term *Term) (*Term, error)
	GetBySlug(ctx context.Context, slug string) (*Term, error)
	List(ctx context.Context, query TermQuery) ([]*Term, error)
	Count(ctx context.Context) (int, error)
}

// AssignTerms is implemented by repositories that manage the item/term join
// directly (the bun-backed repository); the memory repository assigns through
// the Terms slice instead.
type AssignTerms interface {
	AssignTerms(ctx context.Context, itemID uuid.UUID, termIDs []uuid.UUID) error
}
