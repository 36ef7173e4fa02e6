// Package shortcode expands [portfolio] embed directives found in document
// bodies into rendered gallery markup.
package shortcode

import (
	"regexp"
	"strings"
)

var (
	tagPattern  = regexp.MustCompile(`\[portfolio(\s[^\]]*)?\]`)
	attrPattern = regexp.MustCompile(`([a-zA-Z_][a-zA-Z0-9_\-]*)\s*=\s*("[^"]*"|'[^']*'|[^\s\]]+)`)
)

// Invocation is one parsed [portfolio] occurrence.
type Invocation struct {
	// Raw is the full matched tag, used for replacement.
	Raw string
	// Params holds the attribute map exactly as written; the config merge
	// owns all coercion, so values stay strings here.
	Params map[string]any
}

// Parser extracts portfolio shortcode invocations from arbitrary content.
// Attributes may be bare, single- or double-quoted. Unknown attributes are
// passed through untouched for the config merge to ignore.
type Parser struct{}

// NewParser constructs a parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns every invocation in document order.
func (p *Parser) Parse(content string) []Invocation {
	if !strings.Contains(content, "[portfolio") {
		return nil
	}

	matches := tagPattern.FindAllStringSubmatch(content, -1)
	out := make([]Invocation, 0, len(matches))
	for _, match := range matches {
		out = append(out, Invocation{
			Raw:    match[0],
			Params: parseAttributes(match[1]),
		})
	}
	return out
}

func parseAttributes(raw string) map[string]any {
	params := map[string]any{}
	for _, kv := range attrPattern.FindAllStringSubmatch(raw, -1) {
		key := strings.ToLower(kv[1])
		value := kv[2]
		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') {
			value = value[1 : len(value)-1]
		}
		params[key] = value
	}
	return params
}
