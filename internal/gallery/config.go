package gallery

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-portfolio/internal/portfolio"
)

// Title positions accepted by the renderer. Any other value collapses to
// above during normalization, which keeps galleries built against the old
// "yes" flag rendering.
const (
	TitleAbove = "above"
	TitleBelow = "below"
)

// Display modes for the per-item body fragment.
const (
	DisplayNone    = ""
	DisplayContent = "content"
	DisplayExcerpt = "excerpt"
)

// Config is the fully resolved configuration for one gallery render pass.
// Instances are produced by merging string-keyed overrides onto the defaults;
// services never mutate a Config after the merge.
type Config struct {
	// Link is the gallery-level link mode. Unset defers to each item's
	// stored setting.
	Link portfolio.LinkMode
	// ThumbSize and FullSize are named image sizes registered with the host.
	ThumbSize string
	FullSize  string
	// TitlePosition is "above" or "below" the image.
	TitlePosition string
	// TitleLinked wraps the title in the same hyperlink as the image.
	TitleLinked bool
	// Display selects the body fragment: none, content, or excerpt.
	Display string
	// Heading labels the feature filter list. Empty suppresses the label.
	Heading string
	// OrderBy and Order sort the item query.
	OrderBy string
	Order   string
	// Limit caps returned items; -1 means all.
	Limit int
	// TermsOrderBy and TermsOrder sort the filter list.
	TermsOrderBy string
	TermsOrder   string
	// Terms constrains the item query to the named feature slugs.
	Terms []string
	// Operator selects IN or NOT IN for the term constraints.
	Operator portfolio.TermsOperator
}

// DefaultConfig returns the immutable render defaults. Callers merge
// per-render overrides on top; nothing mutates the returned value in place.
func DefaultConfig() Config {
	return Config{
		Link:          portfolio.LinkModeUnset,
		ThumbSize:     "portfolio-thumb",
		FullSize:      "portfolio-large",
		TitlePosition: TitleAbove,
		TitleLinked:   false,
		Display:       DisplayNone,
		Heading:       "Display",
		OrderBy:       "date",
		Order:         portfolio.OrderDesc,
		Limit:         -1,
		TermsOrderBy:  "name",
		TermsOrder:    portfolio.OrderAsc,
		Terms:         nil,
		Operator:      portfolio.TermsOperatorIn,
	}
}

// MergeConfig folds string-keyed overrides onto the supplied defaults and
// normalizes every loose value in one pass. Unknown keys are ignored, and
// unrecognised enum values fall back to their documented defaults rather than
// erroring: shortcode attributes are user input, not an API.
func MergeConfig(defaults Config, overrides map[string]any) Config {
	cfg := defaults
	cfg.Terms = append([]string(nil), defaults.Terms...)

	for key, raw := range overrides {
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "link":
			cfg.Link = portfolio.ParseLinkMode(asString(raw))
		case "thumb":
			if v := asString(raw); v != "" {
				cfg.ThumbSize = v
			}
		case "full":
			if v := asString(raw); v != "" {
				cfg.FullSize = v
			}
		case "title":
			cfg.TitlePosition = asString(raw)
		case "title_link":
			cfg.TitleLinked = asBool(raw)
		case "display":
			cfg.Display = asString(raw)
		case "heading":
			cfg.Heading = asString(raw)
		case "orderby":
			if v := asString(raw); v != "" {
				cfg.OrderBy = v
			}
		case "order":
			if v := asString(raw); v != "" {
				cfg.Order = v
			}
		case "posts_per_page":
			if n, ok := asInt(raw); ok {
				cfg.Limit = n
			}
		case "terms_orderby":
			if v := asString(raw); v != "" {
				cfg.TermsOrderBy = v
			}
		case "terms_order":
			if v := asString(raw); v != "" {
				cfg.TermsOrder = v
			}
		case "terms":
			cfg.Terms = asSlugList(raw)
		case "operator":
			cfg.Operator = portfolio.ParseTermsOperator(asString(raw))
		}
	}

	return normalize(cfg)
}

// normalize is the single coercion step for legacy spellings. Title position
// accepts only "below" verbatim; every other value (including the historical
// "yes") renders above the image. Display collapses to none for unknown modes.
func normalize(cfg Config) Config {
	if strings.ToLower(strings.TrimSpace(cfg.TitlePosition)) == TitleBelow {
		cfg.TitlePosition = TitleBelow
	} else {
		cfg.TitlePosition = TitleAbove
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Display)) {
	case DisplayContent:
		cfg.Display = DisplayContent
	case DisplayExcerpt:
		cfg.Display = DisplayExcerpt
	default:
		cfg.Display = DisplayNone
	}

	if cfg.Operator != portfolio.TermsOperatorNotIn {
		cfg.Operator = portfolio.TermsOperatorIn
	}
	return cfg
}

// ItemQuery derives the repository query for the main item loop.
func (c Config) ItemQuery() portfolio.ItemQuery {
	return portfolio.ItemQuery{
		OrderBy:       c.OrderBy,
		Order:         c.Order,
		Limit:         c.Limit,
		TermSlugs:     c.Terms,
		TermsOperator: c.Operator,
	}
}

// TermQuery derives the repository query for the filter list. This is a
// separate criteria path from ItemQuery on purpose: the item constraint and
// the filter-list constraint share config keys but stay independent.
func (c Config) TermQuery() portfolio.TermQuery {
	query := portfolio.TermQuery{
		OrderBy: c.TermsOrderBy,
		Order:   c.TermsOrder,
	}
	if len(c.Terms) > 0 {
		// The filter list resolves the constraint against a single term.
		if c.Operator == portfolio.TermsOperatorNotIn {
			query.Exclude = c.Terms[0]
		} else {
			query.Include = c.Terms[0]
		}
	}
	return query
}

func asString(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// asBool accepts the loose truthy spellings that accumulated over the
// original plugin's life: booleans, "true", "yes", and "1".
func asBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	default:
		switch strings.ToLower(asString(raw)) {
		case "true", "yes", "1":
			return true
		}
	}
	return false
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		if n, err := strconv.Atoi(asString(raw)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// asSlugList splits comma-separated attribute values and passes through
// slices. Slugs are assumed whitespace-free; surrounding space is trimmed.
func asSlugList(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return compactSlugs(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			out = append(out, asString(entry))
		}
		return compactSlugs(out)
	default:
		return compactSlugs(strings.Split(asString(raw), ","))
	}
}

func compactSlugs(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
