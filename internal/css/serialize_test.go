package css

import (
	"strings"
	"testing"
)

func TestSerializeEndToEnd(t *testing.T) {
	decls := []Declaration{
		{Property: "background-color", Value: "#1a1a1a"},
		{Property: "color", Value: "#ffffff", Important: true},
	}

	want := "#clock {\n  background-color: #1a1a1a;\n  color: #ffffff !important;\n}"
	got := Serialize("#clock", decls)
	if got != want {
		t.Fatalf("serialize mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	// Parsing the exact output reproduces the input.
	parsed := ParseDeclarations(got)
	if len(parsed) != len(decls) {
		t.Fatalf("expected %d declarations back, got %d", len(decls), len(parsed))
	}
	for i := range decls {
		if parsed[i] != decls[i] {
			t.Errorf("declaration %d: got %+v, want %+v", i, parsed[i], decls[i])
		}
	}
}

func TestSerializeEmptyModelPlaceholder(t *testing.T) {
	got := Serialize("#battery", nil)

	if !strings.Contains(got, "#battery") {
		t.Errorf("expected selector in output, got %q", got)
	}
	if strings.Contains(got, "{}") {
		t.Errorf("expected placeholder instead of empty braces, got %q", got)
	}
	if !strings.Contains(got, "/*") || !strings.Contains(got, "*/") {
		t.Errorf("expected a comment body, got %q", got)
	}
	// The placeholder must vanish again on parse.
	if decls := ParseDeclarations(got); len(decls) != 0 {
		t.Errorf("expected placeholder to parse to zero declarations, got %+v", decls)
	}
}

func TestSerializeImportantSuffix(t *testing.T) {
	got := Serialize("#clock", []Declaration{
		{Property: "color", Value: "red", Important: true},
	})
	if !strings.Contains(got, "color: red !important;") {
		t.Errorf("expected important suffix, got %q", got)
	}
}

func TestSerializeParseSerializeIsIdempotent(t *testing.T) {
	first := Serialize("#network", []Declaration{
		{Property: "padding", Value: "0 10px"},
		{Property: "border-radius", Value: "4px", Important: true},
		{Property: "font-family", Value: "JetBrainsMono Nerd Font"},
	})

	second := Serialize("#network", ParseDeclarations(first))
	if first != second {
		t.Fatalf("round trip not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestGridAuthoredModelRoundTrips(t *testing.T) {
	s := Style{Selector: "#workspaces button"}
	s = s.Set("background-color", "transparent", false)
	s = s.Set("color", "#a6adc8", false)
	s = s.Set("padding", "0 5px", true)
	s = s.Set("color", "#cdd6f4", false) // update keeps position

	parsed := ParseDeclarations(Serialize(s.Selector, s.Declarations))
	if len(parsed) != len(s.Declarations) {
		t.Fatalf("expected %d declarations, got %d", len(s.Declarations), len(parsed))
	}
	for i := range parsed {
		if parsed[i] != s.Declarations[i] {
			t.Errorf("declaration %d: got %+v, want %+v", i, parsed[i], s.Declarations[i])
		}
	}
}
