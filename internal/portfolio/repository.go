package portfolio

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewItemBunRepository creates the low-level repository for portfolio items.
func NewItemBunRepository(db *bun.DB) repository.Repository[*Item] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Item]{
		NewRecord:          func() *Item { return &Item{} },
		GetID:              func(item *Item) uuid.UUID { return item.ID },
		SetID:              func(item *Item, id uuid.UUID) { item.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(item *Item) string { return item.Slug },
	})
}

// NewTermBunRepository creates the low-level repository for feature terms.
func NewTermBunRepository(db *bun.DB) repository.Repository[*Term] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Term]{
		NewRecord:          func() *Term { return &Term{} },
		GetID:              func(term *Term) uuid.UUID { return term.ID },
		SetID:              func(term *Term, id uuid.UUID) { term.ID = id },
		GetIdentifier:      func() string { return "slug" },
		GetIdentifierValue: func(term *Term) string { return term.Slug },
	})
}
