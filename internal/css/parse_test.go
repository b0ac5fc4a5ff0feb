package css

import "testing"

func TestParseToleratesJunk(t *testing.T) {
	for _, input := range []string{
		"",
		"#foo {}",
		"not css at all",
		"#bar { ",
		"}{",
	} {
		if decls := ParseDeclarations(input); len(decls) != 0 {
			t.Errorf("parse(%q): expected no declarations, got %+v", input, decls)
		}
	}
}

func TestParseImportantFlag(t *testing.T) {
	decls := ParseDeclarations("#x { color: red !important; }")
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	want := Declaration{Property: "color", Value: "red", Important: true}
	if decls[0] != want {
		t.Errorf("got %+v, want %+v", decls[0], want)
	}
}

func TestParseImportantWithTrailingWhitespace(t *testing.T) {
	decls := ParseDeclarations("#x { color: red   !important   ; }")
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	if decls[0].Value != "red" || !decls[0].Important {
		t.Errorf("got %+v, want value=red important=true", decls[0])
	}
}

func TestParseSkipsSegmentsWithoutColon(t *testing.T) {
	decls := ParseDeclarations("#x { color: red; garbage token; margin: 0; }")
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %+v", decls)
	}
	if decls[0].Property != "color" || decls[1].Property != "margin" {
		t.Errorf("unexpected declarations: %+v", decls)
	}
}

func TestParseSkipsWholeSegmentComments(t *testing.T) {
	decls := ParseDeclarations("#x { /* dim the text */; color: gray; }")
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %+v", decls)
	}
	if decls[0].Property != "color" {
		t.Errorf("unexpected declaration: %+v", decls[0])
	}
}

func TestParsePreservesDuplicateProperties(t *testing.T) {
	decls := ParseDeclarations("#x { color: red; color: green; }")
	if len(decls) != 2 {
		t.Fatalf("expected duplicates preserved, got %+v", decls)
	}
	if decls[0].Value != "red" || decls[1].Value != "green" {
		t.Errorf("expected source order preserved, got %+v", decls)
	}
}

func TestParseSplitsOnFirstColonOnly(t *testing.T) {
	decls := ParseDeclarations(`#x { background: url(data:image/png) }`)
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %+v", decls)
	}
	if decls[0].Property != "background" || decls[0].Value != "url(data:image/png)" {
		t.Errorf("first-colon split broken: %+v", decls[0])
	}
}

func TestParseValueWithoutTrailingSemicolon(t *testing.T) {
	decls := ParseDeclarations("#x {\n  color: red\n}")
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %+v", decls)
	}
	if decls[0].Value != "red" {
		t.Errorf("expected trimmed value, got %q", decls[0].Value)
	}
}

func TestParseUnknownPropertiesAccepted(t *testing.T) {
	decls := ParseDeclarations("#x { -gtk-icon-effect: dim; definitely-not-css: 1; }")
	if len(decls) != 2 {
		t.Fatalf("expected vendor and unknown properties kept, got %+v", decls)
	}
}
