package block

import (
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 64); err == nil {
		t.Fatal("expected error for channels=0")
	}
	if _, err := New(2, 0); err == nil {
		t.Fatal("expected error for frames=0")
	}
}

func TestNewShape(t *testing.T) {
	b, err := New(2, 128)
	if err != nil {
		t.Fatal(err)
	}
	if b.Channels() != 2 || b.Frames() != 128 {
		t.Fatalf("shape: %d x %d", b.Channels(), b.Frames())
	}
	if len(b.Channel(0)) != 128 || len(b.Channel(1)) != 128 {
		t.Fatal("channel length mismatch")
	}
}

func TestZeroRange(t *testing.T) {
	b, err := New(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	for c := 0; c < 2; c++ {
		for i := range b.Channel(c) {
			b.Channel(c)[i] = 1
		}
	}
	b.ZeroRange(2, 6)
	for c := 0; c < 2; c++ {
		for i, v := range b.Channel(c) {
			want := 1.0
			if i >= 2 && i < 6 {
				want = 0
			}
			if v != want {
				t.Fatalf("ch %d frame %d: got %v want %v", c, i, v, want)
			}
		}
	}
	// Out-of-range indices are clamped, not a panic.
	b.ZeroRange(-3, 100)
	if b.PeakRange(0, 8) != 0 {
		t.Fatal("full clamped ZeroRange left data behind")
	}
}

func TestAddFrom(t *testing.T) {
	a, err := New(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		a.Channel(0)[i] = float64(i)
		b.Channel(0)[i] = 10
	}
	if err := a.AddFrom(b); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if got, want := a.Channel(0)[i], float64(i)+10; got != want {
			t.Fatalf("frame %d: got %v want %v", i, got, want)
		}
	}

	c, err := New(1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.AddFrom(c); err == nil {
		t.Fatal("expected shape mismatch error")
	}
	if err := a.AddFrom(nil); err == nil {
		t.Fatal("expected error for nil src")
	}
}

func TestScaleRangeAndPeak(t *testing.T) {
	b, err := New(2, 8)
	if err != nil {
		t.Fatal(err)
	}
	b.Channel(0)[3] = -0.5
	b.Channel(1)[5] = 0.25
	b.ScaleRange(0, 8, 2)
	if got := b.Channel(0)[3]; got != -1 {
		t.Fatalf("scaled sample: got %v want -1", got)
	}
	if got := b.PeakRange(0, 8); got != 1 {
		t.Fatalf("peak: got %v want 1", got)
	}
	if got := b.PeakRange(4, 8); got != 0.5 {
		t.Fatalf("peak of tail: got %v want 0.5", got)
	}
	if got := b.PeakRange(6, 2); got != 0 {
		t.Fatalf("inverted range peak: got %v want 0", got)
	}
}

func TestInterleaveFloat32(t *testing.T) {
	b, err := New(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		b.Channel(0)[i] = float64(i)
		b.Channel(1)[i] = -float64(i)
	}
	dst := make([]float32, 6)
	if n := b.InterleaveFloat32(dst); n != 6 {
		t.Fatalf("wrote %d values, want 6", n)
	}
	want := []float32{0, 0, 1, -1, 2, -2}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 0 {
			t.Fatalf("dst[%d] = %v want %v", i, dst[i], want[i])
		}
	}

	short := make([]float32, 3)
	if n := b.InterleaveFloat32(short); n != 2 {
		t.Fatalf("short dst wrote %d values, want 2 (whole frames only)", n)
	}
}
