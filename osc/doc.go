// Package osc implements a wavetable-reading phase accumulator. One
// Oscillator belongs to exactly one voice; it holds the playback phase and
// increment and reads a shared, immutable wavetable.Table. Next runs once
// per output sample per active voice and never allocates.
package osc
