package synth

import (
	"fmt"

	"github.com/cwbudde/algo-wavetable/block"
	"github.com/cwbudde/algo-wavetable/osc"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

// Engine owns a fixed voice arena and one shared wavetable, and maps note
// events onto voices. All memory is allocated at construction; the render
// path reuses it.
type Engine struct {
	cfg      Config
	table    *wavetable.Table
	voices   []Voice
	serial   uint64
	lastPeak float64
}

// New builds the wavetable and voice arena from the given options.
func New(opts ...Option) (*Engine, error) {
	cfg := ApplyOptions(opts...)
	harmonics := cfg.Harmonics
	if len(harmonics) == 0 {
		harmonics = wavetable.DefaultHarmonics()
	}

	table, err := wavetable.Build(cfg.TableSize, harmonics)
	if err != nil {
		return nil, fmt.Errorf("build wavetable: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		table:  table,
		voices: make([]Voice, cfg.Polyphony),
	}
	for i := range e.voices {
		o, err := osc.New(table, osc.WithMode(cfg.Interp))
		if err != nil {
			return nil, fmt.Errorf("voice %d: %w", i, err)
		}
		e.voices[i].osc = o
	}
	return e, nil
}

// Prepare sets the sample rate used by future note starts. Voices that are
// already sounding keep their frequency until retriggered.
func (e *Engine) Prepare(sampleRate float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %v", sampleRate)
	}
	e.cfg.SampleRate = sampleRate
	return nil
}

// SampleRate returns the current playback sample rate.
func (e *Engine) SampleRate() float64 {
	return e.cfg.SampleRate
}

// Table returns the shared wavetable. Read-only.
func (e *Engine) Table() *wavetable.Table {
	return e.table
}

// NoteOn triggers a note on a free voice, stealing the oldest-triggered
// voice when the pool is saturated. Velocity is clamped to [0, 1].
func (e *Engine) NoteOn(note int, velocity float64) {
	if velocity < 0 {
		velocity = 0
	} else if velocity > 1 {
		velocity = 1
	}
	e.serial++
	e.findVoice().start(note, velocity, e.cfg.SampleRate, e.serial)
}

// NoteOff releases every voice playing the note, with tail-off. Releasing
// a note no voice is playing is a no-op.
func (e *Engine) NoteOff(note int) {
	for i := range e.voices {
		v := &e.voices[i]
		if v.active && v.note == note {
			v.stop(true)
		}
	}
}

// AllNotesOff releases the whole pool, with or without tail-off.
func (e *Engine) AllNotesOff(allowTailOff bool) {
	for i := range e.voices {
		e.voices[i].stop(allowTailOff)
	}
}

// findVoice returns a free voice, or the active voice with the oldest
// trigger serial. The scan order is fixed, so identical event sequences
// always pick identical voices.
func (e *Engine) findVoice() *Voice {
	oldest := &e.voices[0]
	for i := range e.voices {
		v := &e.voices[i]
		if !v.active {
			return v
		}
		if v.serial < oldest.serial {
			oldest = v
		}
	}
	return oldest
}

// RenderBlock clears frames [startSample, startSample+numSamples) of out,
// sums every active voice into them, applies the master gain and records
// the region's peak. The range is clamped to the block bounds.
func (e *Engine) RenderBlock(out *block.Buffer, startSample, numSamples int) {
	if out == nil || numSamples <= 0 {
		return
	}
	if startSample < 0 {
		startSample = 0
	}
	if startSample+numSamples > out.Frames() {
		numSamples = out.Frames() - startSample
		if numSamples <= 0 {
			return
		}
	}

	end := startSample + numSamples
	out.ZeroRange(startSample, end)
	for i := range e.voices {
		e.voices[i].render(out, startSample, numSamples)
	}
	if e.cfg.Gain != 1 {
		out.ScaleRange(startSample, end, e.cfg.Gain)
	}
	e.lastPeak = out.PeakRange(startSample, end)
}

// Peak returns the absolute peak of the most recently rendered region.
func (e *Engine) Peak() float64 {
	return e.lastPeak
}

// ActiveVoices returns the number of voices currently sounding.
func (e *Engine) ActiveVoices() int {
	n := 0
	for i := range e.voices {
		if e.voices[i].active {
			n++
		}
	}
	return n
}

// Voice returns voice slot i for inspection.
func (e *Engine) Voice(i int) *Voice {
	return &e.voices[i]
}

// Polyphony returns the fixed voice count.
func (e *Engine) Polyphony() int {
	return len(e.voices)
}
