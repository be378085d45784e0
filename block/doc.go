// Package block provides the multi-channel audio buffer the synth renders
// into: a fixed set of channels, each a []float64 of the same frame count.
// A device callback owns one Buffer and hands the engine a sub-range of it
// per render call. Mixing helpers are backed by algo-vecmath and operate on
// preallocated memory only.
package block
