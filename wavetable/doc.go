// Package wavetable builds single-cycle waveform tables by additive
// synthesis. A Table is computed once, is immutable afterwards, and is
// shared read-only by every oscillator that plays it. The table carries one
// guard sample (samples[size] == samples[0]) so interpolating readers never
// branch at the wrap boundary.
package wavetable
