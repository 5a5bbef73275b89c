package corpus

import (
	"strings"
	"testing"
)

func TestSegmentBasicSplit(t *testing.T) {
	got := Segment("I go. He ran!")
	want := []string{"I go.", "He ran!"}
	if len(got) != len(want) {
		t.Fatalf("Segment: expected %d sentences, got %d (%q)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Segment: sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSegmentNoTerminalPunctuation(t *testing.T) {
	got := Segment("they were walking home")
	if len(got) != 1 {
		t.Fatalf("Segment: expected exactly one sentence, got %d", len(got))
	}
	if got[0] != "they were walking home" {
		t.Fatalf("Segment: got %q", got[0])
	}
}

func TestSegmentAllTerminators(t *testing.T) {
	got := Segment("One. Two! Three? Four")
	want := []string{"One.", "Two!", "Three?", "Four"}
	if len(got) != len(want) {
		t.Fatalf("Segment: expected %d sentences, got %d (%q)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Segment: sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// Joining the trimmed sentences with single spaces reconstructs any text
// that was single-space separated to begin with.
func TestSegmentReconstruction(t *testing.T) {
	input := "My name is Ana. I have lived here for two years! Do you like it? yes"
	got := Segment(input)
	if rebuilt := strings.Join(got, " "); rebuilt != input {
		t.Fatalf("Segment: reconstruction mismatch:\n  input:   %q\n  rebuilt: %q", input, rebuilt)
	}
}

// The splitter is intentionally naive about abbreviations and decimals.
func TestSegmentNaiveOnAbbreviations(t *testing.T) {
	got := Segment("Mr. Smith paid 3.5 euros.")
	want := []string{"Mr.", "Smith paid 3.", "5 euros."}
	if len(got) != len(want) {
		t.Fatalf("Segment: expected %d sentences, got %d (%q)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Segment: sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSegmentEmptyInput(t *testing.T) {
	if got := Segment(""); len(got) != 0 {
		t.Fatalf("Segment(\"\"): expected no sentences, got %q", got)
	}
}
