package portfolio

import "strings"

// LinkMode selects the destination for an item's clickable image or title.
type LinkMode string

const (
	// LinkModeUnset means no override; the resolver falls through to the
	// item-level setting and finally to the image default.
	LinkModeUnset LinkMode = ""
	// LinkModeImage links to the featured image rendered at full size.
	LinkModeImage LinkMode = "image"
	// LinkModePage links to the item's own page.
	LinkModePage LinkMode = "page"
	// LinkModeExternal links to the item's stored external URL. Only
	// supported at the item level.
	LinkModeExternal LinkMode = "external"
)

// ParseLinkMode maps arbitrary input onto a LinkMode. Unrecognised values
// collapse to unset so the resolver's image fallback applies.
func ParseLinkMode(raw string) LinkMode {
	switch LinkMode(strings.ToLower(strings.TrimSpace(raw))) {
	case LinkModeImage:
		return LinkModeImage
	case LinkModePage:
		return LinkModePage
	case LinkModeExternal:
		return LinkModeExternal
	default:
		return LinkModeUnset
	}
}

// TermsOperator controls whether a term constraint includes or excludes the
// named slugs.
type TermsOperator string

const (
	TermsOperatorIn    TermsOperator = "IN"
	TermsOperatorNotIn TermsOperator = "NOT IN"
)

// ParseTermsOperator normalises loose operator spellings ("not in", "NOT_IN")
// onto the canonical values, defaulting to IN.
func ParseTermsOperator(raw string) TermsOperator {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	if normalized == string(TermsOperatorNotIn) {
		return TermsOperatorNotIn
	}
	return TermsOperatorIn
}

// Sort directions accepted by item and term queries.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ItemQuery describes one read over the portfolio item set. Items without a
// featured image are always excluded; that constraint is part of the query
// contract, not an option.
type ItemQuery struct {
	// OrderBy accepts "date" or "title"; anything else falls back to date.
	OrderBy string
	// Order accepts "asc" or "desc" (case-insensitive); default desc.
	Order string
	// Limit caps the number of returned items; -1 or 0 means unbounded.
	Limit int
	// TermSlugs constrains the result to items whose term set intersects
	// (IN) or avoids (NOT IN) the given feature slugs. Empty means no term
	// constraint.
	TermSlugs []string
	// TermsOperator selects the constraint direction; zero value means IN.
	TermsOperator TermsOperator
}

// Descending reports whether the query sorts in descending order.
func (q ItemQuery) Descending() bool {
	return strings.ToLower(strings.TrimSpace(q.Order)) != OrderAsc
}

// Bounded reports whether the query carries a positive limit.
func (q ItemQuery) Bounded() bool {
	return q.Limit > 0
}

// TermQuery describes one read over the feature term catalogue. Include and
// Exclude are mutually exclusive; when both are set Include wins.
type TermQuery struct {
	// Include restricts the listing to the single named slug.
	Include string
	// Exclude lists every term except the named slug.
	Exclude string
	// OrderBy accepts "name" or "slug"; anything else falls back to name.
	OrderBy string
	// Order accepts "asc" or "desc" (case-insensitive); default asc.
	Order string
}

// Descending reports whether the query sorts in descending order.
func (q TermQuery) Descending() bool {
	return strings.ToLower(strings.TrimSpace(q.Order)) == OrderDesc
}
