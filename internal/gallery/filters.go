package gallery

import (
	"context"
	"html/template"
	"strings"

	"github.com/goliatone/go-portfolio/internal/portfolio"
)

// FilterListBuilder emits the clickable feature list that powers client-side
// filtering. The list is descriptive markup only; the animated show/hide
// behaviour belongs to the filter script capability.
type FilterListBuilder struct {
	terms portfolio.TermRepository
}

// NewFilterListBuilder constructs a builder over the term repository.
func NewFilterListBuilder(terms portfolio.TermRepository) *FilterListBuilder {
	return &FilterListBuilder{terms: terms}
}

// Build returns the filter list markup, or the empty string when the
// resolved term set has one or zero entries. A filter with a single choice
// cannot filter anything, so it is suppressed regardless of heading.
func (b *FilterListBuilder) Build(ctx context.Context, cfg Config) (string, error) {
	terms, err := b.terms.List(ctx, cfg.TermQuery())
	if err != nil {
		return "", err
	}
	if len(terms) <= 1 {
		return "", nil
	}

	var s strings.Builder
	s.WriteString(`<ul class="portfolio-features">`)

	if heading := strings.TrimSpace(cfg.Heading); heading != "" {
		s.WriteString(`<li class="portfolio-features-title">`)
		s.WriteString(template.HTMLEscapeString(heading))
		s.WriteString(`</li>`)
	}

	s.WriteString(`<li class="portfolio-feature active"><a href="javascript:void(0)" class="all">All</a></li>`)

	for _, term := range terms {
		s.WriteString(`<li class="portfolio-feature"><a href="javascript:void(0)" class="`)
		s.WriteString(template.HTMLEscapeString(term.Slug))
		s.WriteString(`">`)
		s.WriteString(template.HTMLEscapeString(term.Name))
		s.WriteString(`</a></li>`)
	}

	s.WriteString(`</ul>`)
	return s.String(), nil
}
