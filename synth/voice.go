package synth

import (
	"github.com/cwbudde/algo-wavetable/block"
	"github.com/cwbudde/algo-wavetable/osc"
)

const (
	// noteGain scales velocity to the per-voice sustain level.
	noteGain = 0.025
	// tailOffDecay is the per-sample release multiplier.
	tailOffDecay = 0.99
	// silenceThreshold frees a releasing voice once tailOff falls below it.
	silenceThreshold = 0.005
)

// Voice is one monophonic slot of the engine's voice arena. It owns one
// oscillator, shares the engine's wavetable through it, and mixes its
// output additively into the block it is handed.
//
// tailOff == 0 means sustaining at level; tailOff > 0 means releasing.
type Voice struct {
	osc     *osc.Oscillator
	level   float64
	tailOff float64
	note    int
	serial  uint64
	active  bool
}

// Note returns the note this voice is playing, or -1 when idle.
func (v *Voice) Note() int {
	if !v.active {
		return -1
	}
	return v.note
}

// Active reports whether the voice is currently sounding.
func (v *Voice) Active() bool {
	return v.active
}

func (v *Voice) start(note int, velocity, sampleRate float64, serial uint64) {
	v.note = note
	v.level = velocity * noteGain
	v.tailOff = 0
	v.serial = serial
	v.osc.Reset()
	v.osc.SetFrequency(NoteToFrequency(note), sampleRate)
	v.active = true
}

func (v *Voice) stop(allowTailOff bool) {
	if !v.active {
		return
	}
	if allowTailOff {
		// Already releasing: keep the running decay.
		if v.tailOff == 0 {
			v.tailOff = 1
		}
		return
	}
	v.clear()
}

func (v *Voice) clear() {
	v.active = false
	v.note = 0
	v.level = 0
	v.tailOff = 0
}

// render mixes numSamples of output into frames [startSample, ...) of out,
// on every channel. A releasing voice that crosses the silence threshold
// clears itself and contributes nothing further within this call.
func (v *Voice) render(out *block.Buffer, startSample, numSamples int) {
	if !v.active {
		return
	}
	nch := out.Channels()

	if v.tailOff > 0 {
		for i := 0; i < numSamples; i++ {
			s := v.osc.Next() * v.level * v.tailOff
			for c := 0; c < nch; c++ {
				out.Channel(c)[startSample+i] += s
			}
			v.tailOff *= tailOffDecay
			if v.tailOff <= silenceThreshold {
				v.clear()
				return
			}
		}
		return
	}

	for i := 0; i < numSamples; i++ {
		s := v.osc.Next() * v.level
		for c := 0; c < nch; c++ {
			out.Channel(c)[startSample+i] += s
		}
	}
}
