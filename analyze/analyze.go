package analyze

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum returns the magnitude spectrum of signal and the bin width in
// Hz. The signal is Hann-windowed and zero-padded to the next power of two;
// the result covers bins [0, fftSize/2].
func Spectrum(signal []float64, sampleRate float64) ([]float64, float64, error) {
	if len(signal) == 0 {
		return nil, 0, fmt.Errorf("spectrum input must not be empty")
	}
	if sampleRate <= 0 {
		return nil, 0, fmt.Errorf("spectrum sample rate must be > 0: %v", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))
	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v*hann(i, len(signal)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("fft plan: %w", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	return mags, sampleRate / float64(fftSize), nil
}

// DominantFrequency returns the frequency of the strongest non-DC bin.
func DominantFrequency(signal []float64, sampleRate float64) (float64, error) {
	mags, binWidth, err := Spectrum(signal, sampleRate)
	if err != nil {
		return 0, err
	}
	if len(mags) < 2 {
		return 0, fmt.Errorf("spectrum too short for peak search: %d bins", len(mags))
	}
	best := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	return float64(best) * binWidth, nil
}

// EnergyAround sums squared magnitudes in the band freq ± halfWidthHz.
func EnergyAround(signal []float64, sampleRate, freq, halfWidthHz float64) (float64, error) {
	mags, binWidth, err := Spectrum(signal, sampleRate)
	if err != nil {
		return 0, err
	}
	lo := int(math.Floor((freq - halfWidthHz) / binWidth))
	hi := int(math.Ceil((freq + halfWidthHz) / binWidth))
	if lo < 0 {
		lo = 0
	}
	if hi > len(mags)-1 {
		hi = len(mags) - 1
	}
	energy := 0.0
	for i := lo; i <= hi; i++ {
		energy += mags[i] * mags[i]
	}
	return energy, nil
}

// Decibels converts a linear magnitude to dBFS. Zero maps to -inf.
func Decibels(x float64) float64 {
	return 20 * math.Log10(x)
}

func hann(i, n int) float64 {
	if n <= 1 {
		return 1
	}
	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
