package synth

import (
	"testing"

	"github.com/cwbudde/algo-wavetable/block"
	"github.com/cwbudde/algo-wavetable/interp"
)

func benchRender(b *testing.B, voices int, mode interp.Mode) {
	e, err := New(WithPolyphony(voices), WithInterpMode(mode))
	if err != nil {
		b.Fatal(err)
	}
	out, err := block.New(2, 512)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < voices; i++ {
		e.NoteOn(60+i*4, 1.0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.RenderBlock(out, 0, 512)
	}
}

func BenchmarkRenderBlock1Voice(b *testing.B)  { benchRender(b, 1, interp.Linear) }
func BenchmarkRenderBlock4Voices(b *testing.B) { benchRender(b, 4, interp.Linear) }
func BenchmarkRenderBlock8Voices(b *testing.B) { benchRender(b, 8, interp.Linear) }
func BenchmarkRenderBlockHermite(b *testing.B) { benchRender(b, 4, interp.Hermite) }
