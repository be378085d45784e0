package osc

import (
	"testing"

	"github.com/cwbudde/algo-wavetable/interp"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

func benchOsc(b *testing.B, mode interp.Mode) {
	tbl, err := wavetable.Build(2048, wavetable.DefaultHarmonics())
	if err != nil {
		b.Fatal(err)
	}
	o, err := New(tbl, WithMode(mode))
	if err != nil {
		b.Fatal(err)
	}
	o.SetFrequency(440, 44100)

	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += o.Next()
	}
	_ = sink
}

func BenchmarkNextLinear(b *testing.B)  { benchOsc(b, interp.Linear) }
func BenchmarkNextHermite(b *testing.B) { benchOsc(b, interp.Hermite) }
