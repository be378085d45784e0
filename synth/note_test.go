package synth

import (
	"math"
	"testing"
)

func TestNoteToFrequencyReferencePoints(t *testing.T) {
	if got := NoteToFrequency(69); got != 440 {
		t.Fatalf("A4: got %v want 440", got)
	}
	if got := NoteToFrequency(81); math.Abs(got-880) > 1e-9 {
		t.Fatalf("A5: got %v want 880", got)
	}
	if got := NoteToFrequency(57); math.Abs(got-220) > 1e-9 {
		t.Fatalf("A3: got %v want 220", got)
	}
	if got := NoteToFrequency(60); math.Abs(got-261.6256) > 1e-3 {
		t.Fatalf("middle C: got %v want 261.6256", got)
	}
}

func TestNoteToFrequencyMonotonic(t *testing.T) {
	prev := NoteToFrequency(0)
	for n := 1; n < 128; n++ {
		f := NoteToFrequency(n)
		if f <= prev {
			t.Fatalf("note %d: %v not above note %d: %v", n, f, n-1, prev)
		}
		prev = f
	}
}

func TestNoteToFrequencyOctaveRatio(t *testing.T) {
	for n := 12; n < 120; n += 7 {
		ratio := NoteToFrequency(n+12) / NoteToFrequency(n)
		if math.Abs(ratio-2) > 1e-9 {
			t.Fatalf("octave above note %d: ratio %v", n, ratio)
		}
	}
}
