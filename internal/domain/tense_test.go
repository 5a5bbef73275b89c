package domain

import (
	"errors"
	"testing"
)

func TestTenseOptionsFlattening(t *testing.T) {
	opts := TenseOptions()
	if len(opts) != 20 {
		t.Fatalf("TenseOptions: expected 20 labels, got %d", len(opts))
	}
	if opts[0] != TensePresentSimple {
		t.Fatalf("TenseOptions: expected %q first, got %q", TensePresentSimple, opts[0])
	}
	if opts[len(opts)-1] != TenseMultipleVerbs {
		t.Fatalf("TenseOptions: expected %q last, got %q", TenseMultipleVerbs, opts[len(opts)-1])
	}

	seen := map[TenseLabel]bool{}
	for _, o := range opts {
		if seen[o] {
			t.Fatalf("TenseOptions: duplicate label %q", o)
		}
		seen[o] = true
	}
}

func TestParseTenseLabel(t *testing.T) {
	for _, o := range TenseOptions() {
		got, err := ParseTenseLabel(string(o))
		if err != nil {
			t.Fatalf("ParseTenseLabel(%q): %v", o, err)
		}
		if got != o {
			t.Fatalf("ParseTenseLabel(%q): got %q", o, got)
		}
	}

	rejected := []string{
		"",
		"Simple Forms",
		"------ Simple Forms ------",
		"Past Perfekt",
	}
	for _, raw := range rejected {
		if _, err := ParseTenseLabel(raw); !errors.Is(err, ErrInvalidTense) {
			t.Fatalf("ParseTenseLabel(%q): expected ErrInvalidTense, got %v", raw, err)
		}
	}
}

func TestCategoryNamesAreNotLabels(t *testing.T) {
	for _, cat := range TenseCategories() {
		if _, err := ParseTenseLabel(cat.Name); err == nil {
			t.Fatalf("category name %q must not parse as a tense label", cat.Name)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("annotator"); err != nil || r != RoleAnnotator {
		t.Fatalf("ParseRole(annotator): %v %v", r, err)
	}
	if r, err := ParseRole("admin"); err != nil || r != RoleAdmin {
		t.Fatalf("ParseRole(admin): %v %v", r, err)
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatalf("ParseRole(superuser): expected error")
	}
	if _, err := ParseRole(""); err == nil {
		t.Fatalf("ParseRole(empty): expected error")
	}
}

func TestParseCEFRLevel(t *testing.T) {
	for _, l := range CEFRLevels() {
		if got, err := ParseCEFRLevel(string(l)); err != nil || got != l {
			t.Fatalf("ParseCEFRLevel(%q): %v %v", l, got, err)
		}
	}
	if _, err := ParseCEFRLevel("C2"); err == nil {
		t.Fatalf("ParseCEFRLevel(C2): expected error, level is outside the corpus")
	}
}
