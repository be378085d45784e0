package osc

import (
	"fmt"

	"github.com/cwbudde/algo-wavetable/interp"
	"github.com/cwbudde/algo-wavetable/wavetable"
)

// Oscillator reads one shared wavetable at a configurable playback rate.
type Oscillator struct {
	table *wavetable.Table
	size  float64
	mode  interp.Mode
	index float64
	delta float64
}

// Option configures an Oscillator.
type Option func(*Oscillator)

// WithMode selects the table interpolation mode. Default is interp.Linear.
func WithMode(mode interp.Mode) Option {
	return func(o *Oscillator) {
		o.mode = mode
	}
}

// New returns an oscillator bound to the given table. The table is
// referenced, never copied.
func New(table *wavetable.Table, opts ...Option) (*Oscillator, error) {
	if table == nil {
		return nil, fmt.Errorf("oscillator table must not be nil")
	}
	o := &Oscillator{
		table: table,
		size:  float64(table.Len()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o, nil
}

// SetFrequency sets the phase increment for the given playback frequency.
// Caller contract: freq and sampleRate are positive and finite. Increments
// approaching the table size alias rather than error.
func (o *Oscillator) SetFrequency(freq, sampleRate float64) {
	o.delta = freq * o.size / sampleRate
}

// Reset rewinds the phase to the start of the table. The frequency is kept.
func (o *Oscillator) Reset() {
	o.index = 0
}

// Delta returns the current per-sample phase increment.
func (o *Oscillator) Delta() float64 {
	return o.delta
}

// Next returns the interpolated sample at the current phase and advances it.
// The fractional part of the phase drives the interpolation.
func (o *Oscillator) Next() float64 {
	i0 := int(o.index)
	frac := o.index - float64(i0)

	var s float64
	if o.mode == interp.Hermite {
		size := o.table.Len()
		im1 := i0 - 1
		if im1 < 0 {
			im1 += size
		}
		i2 := i0 + 2
		if i2 > size {
			i2 -= size
		}
		s = interp.Hermite4(frac, o.table.At(im1), o.table.At(i0), o.table.At(i0+1), o.table.At(i2))
	} else {
		s = interp.Linear2(frac, o.table.At(i0), o.table.At(i0+1))
	}

	o.index += o.delta
	if o.index >= o.size {
		o.index -= o.size
	}
	return s
}
