package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RegisterModels registers the join model required for the item/term
// many-to-many relation. Call once per bun.DB before any query.
func RegisterModels(db *bun.DB) {
	db.RegisterModel((*ItemTerm)(nil))
}

// BunItemRepository implements ItemRepository with optional caching.
type BunItemRepository struct {
	db   *bun.DB
	repo repository.Repository[*Item]
}

// NewBunItemRepository creates an item repository without caching.
func NewBunItemRepository(db *bun.DB) *BunItemRepository {
	return NewBunItemRepositoryWithCache(db, nil, nil)
}

// NewBunItemRepositoryWithCache creates an item repository with caching.
func NewBunItemRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunItemRepository {
	base := NewItemBunRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunItemRepository{db: db, repo: base}
}

func (r *BunItemRepository) Create(ctx context.Context, item *Item) (*Item, error) {
	record, err := r.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	record, err := r.repo.GetByID(ctx, id.String(), repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Terms")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "item", id.String())
	}
	return record, nil
}

func (r *BunItemRepository) GetBySlug(ctx context.Context, slug string) (*Item, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Terms")
	}))
	if err != nil {
		return nil, mapRepositoryError(err, "item", slug)
	}
	return record, nil
}

// List applies the gallery query contract: featured image required, optional
// term constraint, ordering and limit per the query.
func (r *BunItemRepository) List(ctx context.Context, query ItemQuery) ([]*Item, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Relation("Terms").
			Where("pi.featured_image_id IS NOT NULL").
			Where("pi.deleted_at IS NULL")

		if len(query.TermSlugs) > 0 {
			exists := r.db.NewSelect().
				TableExpr("portfolio_item_terms AS pit").
				Join("JOIN portfolio_terms AS ptx ON ptx.id = pit.term_id").
				Where("pit.item_id = pi.id").
				Where("ptx.slug IN (?)", bun.In(query.TermSlugs))
			if query.TermsOperator == TermsOperatorNotIn {
				q = q.Where("NOT EXISTS (?)", exists)
			} else {
				q = q.Where("EXISTS (?)", exists)
			}
		}

		q = q.OrderExpr("? ?", bun.Ident(itemOrderColumn(query.OrderBy)), bun.Safe(orderDirection(query.Descending())))
		if query.Bounded() {
			q = q.Limit(query.Limit)
		}
		return q
	}))
	if err != nil {
		return nil, fmt.Errorf("portfolio: list items: %w", err)
	}
	return records, nil
}

func (r *BunItemRepository) Count(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*Item)(nil)).
		Where("pi.deleted_at IS NULL").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("portfolio: count items: %w", err)
	}
	return count, nil
}

// AssignTerms replaces the item's term assignments with the given set.
func (r *BunItemRepository) AssignTerms(ctx context.Context, itemID uuid.UUID, termIDs []uuid.UUID) error {
	if _, err := r.db.NewDelete().
		Model((*ItemTerm)(nil)).
		Where("item_id = ?", itemID).
		Exec(ctx); err != nil {
		return fmt.Errorf("portfolio: clear term assignments: %w", err)
	}
	if len(termIDs) == 0 {
		return nil
	}
	rows := make([]*ItemTerm, 0, len(termIDs))
	for _, termID := range termIDs {
		rows = append(rows, &ItemTerm{ItemID: itemID, TermID: termID})
	}
	if _, err := r.db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("portfolio: assign terms: %w", err)
	}
	return nil
}

// BunTermRepository implements TermRepository with optional caching.
type BunTermRepository struct {
	db   *bun.DB
	repo repository.Repository[*Term]
}

// NewBunTermRepository creates a term repository without caching.
func NewBunTermRepository(db *bun.DB) *BunTermRepository {
	return NewBunTermRepositoryWithCache(db, nil, nil)
}

// NewBunTermRepositoryWithCache creates a term repository with caching.
func NewBunTermRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunTermRepository {
	base := NewTermBunRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunTermRepository{db: db, repo: base}
}

func (r *BunTermRepository) Create(ctx context.Context, term *Term) (*Term, error) {
	record, err := r.repo.Create(ctx, term)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *BunTermRepository) GetBySlug(ctx context.Context, slug string) (*Term, error) {
	record, err := r.repo.GetByIdentifier(ctx, slug)
	if err != nil {
		return nil, mapRepositoryError(err, "term", slug)
	}
	return record, nil
}

func (r *BunTermRepository) List(ctx context.Context, query TermQuery) ([]*Term, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("pt.deleted_at IS NULL")
		if include := strings.TrimSpace(query.Include); include != "" {
			q = q.Where("pt.slug = ?", include)
		} else if exclude := strings.TrimSpace(query.Exclude); exclude != "" {
			q = q.Where("pt.slug != ?", exclude)
		}
		q = q.OrderExpr("? ?", bun.Ident(termOrderColumn(query.OrderBy)), bun.Safe(orderDirection(query.Descending())))
		return q
	}))
	if err != nil {
		return nil, fmt.Errorf("portfolio: list terms: %w", err)
	}
	return records, nil
}

func (r *BunTermRepository) Count(ctx context.Context) (int, error) {
	count, err := r.db.NewSelect().
		Model((*Term)(nil)).
		Where("pt.deleted_at IS NULL").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("portfolio: count terms: %w", err)
	}
	return count, nil
}

func itemOrderColumn(orderBy string) string {
	switch strings.ToLower(strings.TrimSpace(orderBy)) {
	case "title":
		return "title"
	default:
		return "published_at"
	}
}

func termOrderColumn(orderBy string) string {
	switch strings.ToLower(strings.TrimSpace(orderBy)) {
	case "slug":
		return "slug"
	default:
		return "name"
	}
}

func orderDirection(descending bool) string {
	if descending {
		return "DESC"
	}
	return "ASC"
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}

var (
	_ ItemRepository = (*BunItemRepository)(nil)
	_ TermRepository = (*BunTermRepository)(nil)
	_ AssignTerms    = (*BunItemRepository)(nil)
)
