package contenttype

import (
	"context"
	"fmt"

	"github.com/goliatone/go-portfolio/internal/portfolio"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// ListColumn describes one column on the admin item list.
type ListColumn struct {
	Key   string
	Label string
}

// ListColumns returns the portfolio item list columns in display order. The
// image column leads, description and link type slot in after the title the
// host already renders.
func ListColumns() []ListColumn {
	return []ListColumn{
		{Key: "portfolio_thumbnail", Label: "Image"},
		{Key: "portfolio_description", Label: "Description"},
		{Key: "portfolio_link", Label: "Link Type"},
	}
}

// ColumnValue resolves the display value of a custom column for an item.
// Unknown column keys return an empty string so host-defined columns pass
// through untouched.
func ColumnValue(ctx context.Context, images interfaces.ImageResolver, item *portfolio.Item, key string) (string, error) {
	switch key {
	case "portfolio_thumbnail":
		if images == nil || !item.HasFeaturedImage() {
			return "", nil
		}
		return images.ImageTag(ctx, *item.FeaturedImageID, "thumbnail", item.Title)
	case "portfolio_description":
		return item.Excerpt, nil
	case "portfolio_link":
		return string(item.LinkMode), nil
	default:
		return "", nil
	}
}

// GlanceCounts is the dashboard "at a glance" summary.
type GlanceCounts struct {
	Items    int
	Features int
}

// AtAGlance reports how many portfolio items and features exist.
func AtAGlance(ctx context.Context, items portfolio.ItemRepository, terms portfolio.TermRepository) (GlanceCounts, error) {
	counts := GlanceCounts{}

	itemCount, err := items.Count(ctx)
	if err != nil {
		return counts, fmt.Errorf("contenttype: count items: %w", err)
	}
	counts.Items = itemCount

	termCount, err := terms.Count(ctx)
	if err != nil {
		return counts, fmt.Errorf("contenttype: count features: %w", err)
	}
	counts.Features = termCount

	return counts, nil
}
