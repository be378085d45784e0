// Command wavedemo renders a chord with the wavetable engine, reports the
// spectral content of the result, and can play it through the default
// audio device.
//
// Usage:
//
//	wavedemo [flags]
//
// Examples:
//
//	wavedemo
//	wavedemo -notes 60,64,67 -dur 2s
//	wavedemo -rate 48000 -gain 0.8 -play
//	wavedemo -interp hermite -voices 8
package main

import (
	"bytes"
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-wavetable/analyze"
	"github.com/cwbudde/algo-wavetable/block"
	"github.com/cwbudde/algo-wavetable/interp"
	"github.com/cwbudde/algo-wavetable/synth"
)

const (
	channels   = 2
	renderStep = 512
)

func main() {
	var (
		rate    = flag.Float64("rate", 44100, "sample rate in Hz")
		voices  = flag.Int("voices", 4, "polyphony")
		notes   = flag.String("notes", "60,64,67", "comma-separated MIDI notes")
		dur     = flag.Duration("dur", 2*time.Second, "total clip length")
		hold    = flag.Duration("hold", 0, "note hold time (default 2/3 of -dur)")
		gain    = flag.Float64("gain", 1, "master gain")
		mode    = flag.String("interp", "linear", "table interpolation: linear or hermite")
		doPlay  = flag.Bool("play", false, "play the clip on the default audio device")
		verbose = flag.Bool("v", false, "print engine configuration")
	)
	flag.Parse()

	if err := run(*rate, *voices, *notes, *dur, *hold, *gain, *mode, *doPlay, *verbose); err != nil {
		fmt.Fprintln(os.Stderr, "wavedemo:", err)
		os.Exit(1)
	}
}

func run(rate float64, voices int, noteList string, dur, hold time.Duration, gain float64, mode string, doPlay, verbose bool) error {
	notes, err := parseNotes(noteList)
	if err != nil {
		return err
	}

	interpMode := interp.Linear
	switch mode {
	case "linear":
	case "hermite":
		interpMode = interp.Hermite
	default:
		return fmt.Errorf("unknown interpolation mode %q", mode)
	}

	engine, err := synth.New(
		synth.WithSampleRate(rate),
		synth.WithPolyphony(voices),
		synth.WithGain(gain),
		synth.WithInterpMode(interpMode),
	)
	if err != nil {
		return err
	}

	if hold <= 0 {
		hold = dur * 2 / 3
	}
	frames := int(rate * dur.Seconds())
	holdFrames := int(rate * hold.Seconds())
	if frames <= 0 {
		return fmt.Errorf("clip length too short: %v", dur)
	}

	if verbose {
		fmt.Printf("rate %g Hz, %d voices, table %d samples, %d frames\n",
			rate, engine.Polyphony(), engine.Table().Len(), frames)
	}

	out, err := block.New(channels, frames)
	if err != nil {
		return err
	}
	peak := renderClip(engine, out, notes, frames, holdFrames)

	if err := report(os.Stdout, out.Channel(0), rate, notes, peak); err != nil {
		return err
	}

	if doPlay {
		return play(out, rate, dur)
	}
	return nil
}

// renderClip drives the engine block by block, triggering the chord at the
// start and releasing it after holdFrames. Returns the clip peak.
func renderClip(engine *synth.Engine, out *block.Buffer, notes []int, frames, holdFrames int) float64 {
	for _, n := range notes {
		engine.Handle(synth.Event{Kind: synth.KindNoteOn, Note: n, Velocity: 1})
	}

	peak := 0.0
	released := false
	for pos := 0; pos < frames; pos += renderStep {
		if !released && pos >= holdFrames {
			for _, n := range notes {
				engine.Handle(synth.Event{Kind: synth.KindNoteOff, Note: n})
			}
			released = true
		}
		n := renderStep
		if pos+n > frames {
			n = frames - pos
		}
		engine.RenderBlock(out, pos, n)
		if engine.Peak() > peak {
			peak = engine.Peak()
		}
	}
	return peak
}

func report(w *os.File, mono []float64, rate float64, notes []int, peak float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NOTE\tFREQ (Hz)\tENERGY (dB)")
	for _, n := range notes {
		freq := synth.NoteToFrequency(n)
		energy, err := analyze.EnergyAround(mono, rate, freq, 30)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%.1f\n", n, freq, analyze.Decibels(math.Sqrt(energy)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	dominant, err := analyze.DominantFrequency(mono, rate)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "dominant %.2f Hz, peak %.4f (%.1f dBFS)\n",
		dominant, peak, analyze.Decibels(peak))
	return nil
}

// play streams the rendered clip to the default device as interleaved
// float32 little-endian PCM.
func play(out *block.Buffer, rate float64, dur time.Duration) error {
	pcm := make([]float32, out.Channels()*out.Frames())
	n := out.InterleaveFloat32(pcm)
	raw := make([]byte, 4*n)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(pcm[i]))
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(rate),
		ChannelCount: out.Channels(),
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return fmt.Errorf("audio device: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(bytes.NewReader(raw))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}

func parseNotes(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	notes := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad note %q: %w", p, err)
		}
		if n < 0 || n > 127 {
			return nil, fmt.Errorf("note out of range [0,127]: %d", n)
		}
		notes = append(notes, n)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("no notes given")
	}
	return notes, nil
}
