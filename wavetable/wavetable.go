package wavetable

import (
	"fmt"
	"math"
)

// Harmonic describes one partial of an additive waveform.
type Harmonic struct {
	// Partial is the harmonic number: 1 = fundamental, 2 = first overtone.
	Partial int
	// Weight is the linear amplitude of the partial.
	Weight float64
}

// DefaultHarmonics returns the stock eight-partial bank: partials 1..8 with
// weight 1/(i+1), i.e. {1, 1/2, 1/3, ...}.
func DefaultHarmonics() []Harmonic {
	out := make([]Harmonic, 8)
	for i := range out {
		out[i] = Harmonic{Partial: i + 1, Weight: 1 / float64(i+1)}
	}
	return out
}

// Table is a precomputed single-cycle waveform with a guard sample.
// The backing slice holds size+1 samples; the last duplicates the first.
type Table struct {
	samples []float64
}

// Build computes a table of the given size from the harmonic set.
// One waveform cycle spans size-1 samples; samples[size] repeats samples[0]
// so readers can interpolate across the wrap without a bounds branch.
func Build(size int, harmonics []Harmonic) (*Table, error) {
	if size <= 1 {
		return nil, fmt.Errorf("wavetable size must be > 1: %d", size)
	}
	if len(harmonics) == 0 {
		return nil, fmt.Errorf("wavetable needs at least one harmonic")
	}
	for _, h := range harmonics {
		if h.Partial < 1 {
			return nil, fmt.Errorf("harmonic partial must be >= 1: %d", h.Partial)
		}
		if math.IsNaN(h.Weight) || math.IsInf(h.Weight, 0) {
			return nil, fmt.Errorf("harmonic %d weight must be finite", h.Partial)
		}
	}

	samples := make([]float64, size+1)
	for _, h := range harmonics {
		angleDelta := 2 * math.Pi * float64(h.Partial) / float64(size-1)
		angle := 0.0
		for i := 0; i < size; i++ {
			samples[i] += math.Sin(angle) * h.Weight
			angle += angleDelta
		}
	}
	samples[size] = samples[0]

	return &Table{samples: samples}, nil
}

// Len returns the table size excluding the guard sample.
func (t *Table) Len() int {
	return len(t.samples) - 1
}

// At returns the sample at index i. Valid indices are [0, Len()]; index
// Len() is the guard sample. No bounds check beyond the slice's own.
func (t *Table) At(i int) float64 {
	return t.samples[i]
}

// Samples returns the backing slice including the guard sample.
// Callers must treat it as read-only.
func (t *Table) Samples() []float64 {
	return t.samples
}
