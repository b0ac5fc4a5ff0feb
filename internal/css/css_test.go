package css

import "testing"

func TestSetUpdatesFirstMatchInPlace(t *testing.T) {
	s := Style{Selector: "#clock", Declarations: []Declaration{
		{Property: "color", Value: "red"},
		{Property: "margin", Value: "0"},
	}}

	got := s.Set("color", "blue", false)

	if len(got.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(got.Declarations))
	}
	if got.Declarations[0].Property != "color" || got.Declarations[0].Value != "blue" {
		t.Errorf("expected color:blue first, got %+v", got.Declarations[0])
	}
	if got.Declarations[1].Property != "margin" {
		t.Errorf("expected margin to keep its position, got %+v", got.Declarations[1])
	}
}

func TestSetAppendsUnknownProperty(t *testing.T) {
	s := Style{Selector: "#clock", Declarations: []Declaration{
		{Property: "color", Value: "red"},
	}}

	got := s.Set("padding", "0 8px", false)

	if len(got.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(got.Declarations))
	}
	last := got.Declarations[1]
	if last.Property != "padding" || last.Value != "0 8px" {
		t.Errorf("expected padding appended at end, got %+v", last)
	}
}

func TestSetEmptyValueDeletes(t *testing.T) {
	s := Style{Selector: "#battery", Declarations: []Declaration{
		{Property: "color", Value: "red"},
		{Property: "margin", Value: "0"},
	}}

	got := s.Set("color", "", false)

	if len(got.Declarations) != 1 {
		t.Fatalf("expected 1 declaration after delete, got %d", len(got.Declarations))
	}
	if got.Declarations[0].Property != "margin" {
		t.Errorf("expected margin to survive, got %+v", got.Declarations[0])
	}
}

func TestSetEmptyValueOnAbsentPropertyIsNoop(t *testing.T) {
	s := Style{Selector: "#battery", Declarations: []Declaration{
		{Property: "color", Value: "red"},
	}}

	got := s.Set("padding", "", false)

	if len(got.Declarations) != 1 {
		t.Fatalf("expected declarations unchanged, got %d", len(got.Declarations))
	}
}

func TestSetDoesNotMutateReceiver(t *testing.T) {
	s := Style{Selector: "#clock", Declarations: []Declaration{
		{Property: "color", Value: "red"},
	}}

	s.Set("color", "blue", false)

	if s.Declarations[0].Value != "red" {
		t.Errorf("receiver was mutated: %+v", s.Declarations[0])
	}
}

func TestSetOnlyTouchesFirstDuplicate(t *testing.T) {
	// Duplicates can only come in through the text path; the grid path
	// treats the property as a key and leaves the rest alone.
	s := Style{Selector: "#cpu", Declarations: []Declaration{
		{Property: "color", Value: "red"},
		{Property: "color", Value: "green"},
	}}

	got := s.Set("color", "blue", false)

	if got.Declarations[0].Value != "blue" {
		t.Errorf("expected first duplicate updated, got %+v", got.Declarations[0])
	}
	if got.Declarations[1].Value != "green" {
		t.Errorf("expected second duplicate untouched, got %+v", got.Declarations[1])
	}
}

func TestGetReturnsFirstMatchOrEmpty(t *testing.T) {
	s := Style{Selector: "#cpu", Declarations: []Declaration{
		{Property: "color", Value: "red"},
		{Property: "color", Value: "green"},
	}}

	if got := s.Get("color"); got != "red" {
		t.Errorf("expected first match red, got %q", got)
	}
	if got := s.Get("padding"); got != "" {
		t.Errorf("expected empty value for absent property, got %q", got)
	}
}

func TestLookupReportsImportantFlag(t *testing.T) {
	s := Style{Selector: "#clock", Declarations: []Declaration{
		{Property: "color", Value: "#fff", Important: true},
	}}

	d, ok := s.Lookup("color")
	if !ok {
		t.Fatal("expected color to be found")
	}
	if !d.Important {
		t.Error("expected important flag to be preserved")
	}
}
