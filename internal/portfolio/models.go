package portfolio

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Item is the canonical record for a portfolio entry. Body holds Markdown;
// rendering to HTML happens at display time.
type Item struct {
	bun.BaseModel `bun:"table:portfolio_items,alias:pi"`

	ID              uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Title           string     `bun:"title,notnull" json:"title"`
	Slug            string     `bun:"slug,notnull,unique" json:"slug"`
	Body            string     `bun:"body" json:"body,omitempty"`
	Excerpt         string     `bun:"excerpt" json:"excerpt,omitempty"`
	FeaturedImageID *uuid.UUID `bun:"featured_image_id,type:uuid" json:"featured_image_id,omitempty"`
	LinkMode        LinkMode   `bun:"link_mode" json:"link_mode,omitempty"`
	ExternalURL     string     `bun:"external_url" json:"external_url,omitempty"`
	PublishedAt     time.Time  `bun:"published_at,nullzero,default:current_timestamp" json:"published_at"`
	DeletedAt       *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Terms []*Term `bun:"m2m:portfolio_item_terms,join:Item=Term" json:"terms,omitempty"`
}

// HasFeaturedImage reports whether the item carries a featured image
// reference. Items without one never reach the gallery.
func (i *Item) HasFeaturedImage() bool {
	return i != nil && i.FeaturedImageID != nil && *i.FeaturedImageID != uuid.Nil
}

// TermSlugs returns the slugs of the item's assigned terms in stored order.
func (i *Item) TermSlugs() []string {
	if i == nil || len(i.Terms) == 0 {
		return nil
	}
	slugs := make([]string, 0, len(i.Terms))
	for _, term := range i.Terms {
		if term != nil {
			slugs = append(slugs, term.Slug)
		}
	}
	return slugs
}

// Term is a "feature" taxonomy entry. Terms are many-to-many with items and
// power the client-side filter list.
type Term struct {
	bun.BaseModel `bun:"table:portfolio_terms,alias:pt"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Slug      string     `bun:"slug,notnull,unique" json:"slug"`
	Name      string     `bun:"name,notnull" json:"name"`
	DeletedAt *time.Time `bun:"deleted_at,nullzero" json:"deleted_at,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Items []*Item `bun:"m2m:portfolio_item_terms,join:Term=Item" json:"items,omitempty"`
}

// ItemTerm is the join row binding items to feature terms.
type ItemTerm struct {
	bun.BaseModel `bun:"table:portfolio_item_terms,alias:pit"`

	ItemID uuid.UUID `bun:"item_id,pk,type:uuid" json:"item_id"`
	TermID uuid.UUID `bun:"term_id,pk,type:uuid" json:"term_id"`

	Item *Item `bun:"rel:belongs-to,join:item_id=id" json:"item,omitempty"`
	Term *Term `bun:"rel:belongs-to,join:term_id=id" json:"term,omitempty"`
}
