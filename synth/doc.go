// Package synth implements the polyphonic wavetable engine: a fixed arena
// of voices, one shared wavetable, and the dispatch of note events onto
// voices.
//
// The render path (Engine.RenderBlock and everything below it) is written
// for a real-time device callback: it performs no allocation, takes no
// locks, and touches only preallocated state. NoteOn/NoteOff may be called
// from a separate control path; they mutate fixed-size voice fields and
// take effect at the next render call. Sample-rate changes go through
// Prepare between blocks, never concurrently with one.
package synth
