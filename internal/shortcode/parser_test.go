package shortcode

import "testing"

func TestParseReturnsNilWithoutShortcode(t *testing.T) {
	parser := NewParser()

	if got := parser.Parse("plain paragraph with [gallery] elsewhere"); got != nil {
		t.Fatalf("expected nil invocations, got %v", got)
	}
}

func TestParseBareTag(t *testing.T) {
	parser := NewParser()

	invocations := parser.Parse("intro [portfolio] outro")
	if len(invocations) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(invocations))
	}
	if invocations[0].Raw != "[portfolio]" {
		t.Fatalf("unexpected raw tag: %q", invocations[0].Raw)
	}
	if len(invocations[0].Params) != 0 {
		t.Fatalf("expected no params, got %v", invocations[0].Params)
	}
}

func TestParseQuotedAndBareAttributes(t *testing.T) {
	parser := NewParser()

	invocations := parser.Parse(`[portfolio terms="web, branding" Operator='NOT IN' orderby=title]`)
	if len(invocations) != 1 {
		t.Fatalf("expected 1 invocation, got %d", len(invocations))
	}

	params := invocations[0].Params
	if params["terms"] != "web, branding" {
		t.Fatalf("unexpected terms value: %v", params["terms"])
	}
	if params["operator"] != "NOT IN" {
		t.Fatalf("expected lowercased key with quoted value, got %v", params)
	}
	if params["orderby"] != "title" {
		t.Fatalf("unexpected orderby value: %v", params["orderby"])
	}
}

func TestParseMultipleInvocationsInOrder(t *testing.T) {
	parser := NewParser()

	content := `[portfolio terms="web"] middle [portfolio terms="print"]`
	invocations := parser.Parse(content)
	if len(invocations) != 2 {
		t.Fatalf("expected 2 invocations, got %d", len(invocations))
	}
	if invocations[0].Params["terms"] != "web" || invocations[1].Params["terms"] != "print" {
		t.Fatalf("invocations out of order: %v", invocations)
	}
}
