package portfolio

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryItemRepository is an in-memory ItemRepository for scaffolding and
// tests. Items are stored in insertion order and cloned on every read.
type MemoryItemRepository struct {
	mu        sync.RWMutex
	items     map[uuid.UUID]*Item
	slugIndex map[string]uuid.UUID
	order     []uuid.UUID
}

// NewMemoryItemRepository creates an empty in-memory item repository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items:     make(map[uuid.UUID]*Item),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied item, assigning an ID when missing.
func (m *MemoryItemRepository) Create(_ context.Context, item *Item) (*Item, error) {
	if strings.TrimSpace(item.Title) == "" {
		return nil, ErrItemTitleRequired
	}
	if strings.TrimSpace(item.Slug) == "" {
		return nil, ErrItemSlugRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneItem(item)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	if _, exists := m.items[copied.ID]; !exists {
		m.order = append(m.order, copied.ID)
	}
	m.items[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneItem(copied), nil
}

// GetByID retrieves an item by identifier.
func (m *MemoryItemRepository) GetByID(_ context.Context, id uuid.UUID) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.items[id]
	if !ok {
		return nil, &NotFoundError{Resource: "item", Key: id.String()}
	}
	return cloneItem(rec), nil
}

// GetBySlug retrieves an item by slug, returning NotFoundError when absent.
func (m *MemoryItemRepository) GetBySlug(_ context.Context, slug string) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "item", Key: slug}
	}
	return cloneItem(m.items[id]), nil
}

// List applies the gallery query contract over the in-memory set.
func (m *MemoryItemRepository) List(_ context.Context, query ItemQuery) ([]*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Item, 0, len(m.order))
	for _, id := range m.order {
		rec := m.items[id]
		if rec == nil || rec.DeletedAt != nil || !rec.HasFeaturedImage() {
			continue
		}
		if !matchesTermConstraint(rec, query) {
			continue
		}
		out = append(out, cloneItem(rec))
	}

	sortItems(out, query)

	if query.Bounded() && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}

// Count returns the number of stored items, featured or not.
func (m *MemoryItemRepository) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, rec := range m.items {
		if rec.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func matchesTermConstraint(item *Item, query ItemQuery) bool {
	if len(query.TermSlugs) == 0 {
		return true
	}
	wanted := make(map[string]struct{}, len(query.TermSlugs))
	for _, slug := range query.TermSlugs {
		wanted[slug] = struct{}{}
	}
	intersects := false
	for _, slug := range item.TermSlugs() {
		if _, ok := wanted[slug]; ok {
			intersects = true
			break
		}
	}
	if query.TermsOperator == TermsOperatorNotIn {
		return !intersects
	}
	return intersects
}

func sortItems(items []*Item, query ItemQuery) {
	descending := query.Descending()
	byTitle := strings.EqualFold(strings.TrimSpace(query.OrderBy), "title")

	sort.SliceStable(items, func(i, j int) bool {
		var less bool
		if byTitle {
			less = items[i].Title < items[j].Title
		} else {
			less = items[i].PublishedAt.Before(items[j].PublishedAt)
		}
		if descending {
			return !less
		}
		return less
	})
}

func cloneItem(src *Item) *Item {
	if src == nil {
		return nil
	}
	copied := *src
	if src.FeaturedImageID != nil {
		id := *src.FeaturedImageID
		copied.FeaturedImageID = &id
	}
	if src.DeletedAt != nil {
		ts := *src.DeletedAt
		copied.DeletedAt = &ts
	}
	if len(src.Terms) > 0 {
		copied.Terms = make([]*Term, len(src.Terms))
		for i, term := range src.Terms {
			copied.Terms[i] = cloneTerm(term)
		}
	}
	return &copied
}

// MemoryTermRepository is an in-memory TermRepository for scaffolding and tests.
type MemoryTermRepository struct {
	mu        sync.RWMutex
	terms     map[uuid.UUID]*Term
	slugIndex map[string]uuid.UUID
}

// NewMemoryTermRepository creates an empty in-memory term repository.
func NewMemoryTermRepository() *MemoryTermRepository {
	return &MemoryTermRepository{
		terms:     make(map[uuid.UUID]*Term),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied term, assigning an ID when missing.
func (m *MemoryTermRepository) Create(_ context.Context, term *Term) (*Term, error) {
	if strings.TrimSpace(term.Slug) == "" {
		return nil, ErrTermSlugRequired
	}
	if strings.TrimSpace(term.Name) == "" {
		return nil, ErrTermNameRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneTerm(term)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.terms[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneTerm(copied), nil
}

// GetBySlug retrieves a term by slug, returning NotFoundError when absent.
func (m *MemoryTermRepository) GetBySlug(_ context.Context, slug string) (*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "term", Key: slug}
	}
	return cloneTerm(m.terms[id]), nil
}

// List returns terms per the include/exclude constraint, sorted per the query.
func (m *MemoryTermRepository) List(_ context.Context, query TermQuery) ([]*Term, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	include := strings.TrimSpace(query.Include)
	exclude := strings.TrimSpace(query.Exclude)

	out := make([]*Term, 0, len(m.terms))
	for _, rec := range m.terms {
		if rec.DeletedAt != nil {
			continue
		}
		if include != "" {
			if rec.Slug == include {
				out = append(out, cloneTerm(rec))
			}
			continue
		}
		if exclude != "" && rec.Slug == exclude {
			continue
		}
		out = append(out, cloneTerm(rec))
	}

	sortTerms(out, query)
	return out, nil
}

// Count returns the number of stored terms.
func (m *MemoryTermRepository) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, rec := range m.terms {
		if rec.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func sortTerms(terms []*Term, query TermQuery) {
	descending := query.Descending()
	bySlug := strings.EqualFold(strings.TrimSpace(query.OrderBy), "slug")

	sort.SliceStable(terms, func(i, j int) bool {
		var less bool
		if bySlug {
			less = terms[i].Slug < terms[j].Slug
		} else {
			less = terms[i].Name < terms[j].Name
		}
		if descending {
			return !less
		}
		return less
	})
}

func cloneTerm(src *Term) *Term {
	if src == nil {
		return nil
	}
	copied := *src
	if src.DeletedAt != nil {
		ts := *src.DeletedAt
		copied.DeletedAt = &ts
	}
	copied.Items = nil
	return &copied
}

var (
	_ ItemRepository = (*MemoryItemRepository)(nil)
	_ TermRepository = (*MemoryTermRepository)(nil)
)
