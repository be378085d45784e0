package block

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Buffer holds channels × frames of float64 audio.
type Buffer struct {
	chans  [][]float64
	frames int
}

// New returns a zero-filled buffer with the given channel and frame counts.
func New(channels, frames int) (*Buffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("block channels must be > 0: %d", channels)
	}
	if frames <= 0 {
		return nil, fmt.Errorf("block frames must be > 0: %d", frames)
	}
	data := make([]float64, channels*frames)
	chans := make([][]float64, channels)
	for c := range chans {
		chans[c] = data[c*frames : (c+1)*frames : (c+1)*frames]
	}
	return &Buffer{chans: chans, frames: frames}, nil
}

// Channels returns the channel count.
func (b *Buffer) Channels() int {
	return len(b.chans)
}

// Frames returns the per-channel frame count.
func (b *Buffer) Frames() int {
	return b.frames
}

// Channel returns the backing slice for channel c.
func (b *Buffer) Channel(c int) []float64 {
	return b.chans[c]
}

// Zero clears every channel.
func (b *Buffer) Zero() {
	for _, ch := range b.chans {
		for i := range ch {
			ch[i] = 0
		}
	}
}

// ZeroRange clears frames [start, end) on every channel.
// Indices are clamped to valid bounds.
func (b *Buffer) ZeroRange(start, end int) {
	start, end = b.clampRange(start, end)
	for _, ch := range b.chans {
		for i := start; i < end; i++ {
			ch[i] = 0
		}
	}
}

// AddFrom mixes src into b additively. Channel and frame counts must match.
func (b *Buffer) AddFrom(src *Buffer) error {
	if src == nil || len(src.chans) != len(b.chans) || src.frames != b.frames {
		return fmt.Errorf("block shape mismatch")
	}
	for c, ch := range b.chans {
		vecmath.AddBlockInPlace(ch, src.chans[c])
	}
	return nil
}

// ScaleRange multiplies frames [start, end) on every channel by gain.
// Indices are clamped to valid bounds.
func (b *Buffer) ScaleRange(start, end int, gain float64) {
	start, end = b.clampRange(start, end)
	if start >= end {
		return
	}
	for _, ch := range b.chans {
		vecmath.ScaleBlockInPlace(ch[start:end], gain)
	}
}

// PeakRange returns the largest absolute sample in frames [start, end)
// across all channels. Indices are clamped to valid bounds.
func (b *Buffer) PeakRange(start, end int) float64 {
	start, end = b.clampRange(start, end)
	if start >= end {
		return 0
	}
	peak := 0.0
	for _, ch := range b.chans {
		if p := vecmath.MaxAbs(ch[start:end]); p > peak {
			peak = p
		}
	}
	return peak
}

// InterleaveFloat32 writes frame-interleaved float32 samples into dst and
// returns the number of values written. dst is filled up to
// min(len(dst), Channels()*Frames()) rounded down to whole frames.
func (b *Buffer) InterleaveFloat32(dst []float32) int {
	nch := len(b.chans)
	frames := len(dst) / nch
	if frames > b.frames {
		frames = b.frames
	}
	for i := 0; i < frames; i++ {
		for c, ch := range b.chans {
			dst[i*nch+c] = float32(ch[i])
		}
	}
	return frames * nch
}

func (b *Buffer) clampRange(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > b.frames {
		end = b.frames
	}
	if end < start {
		end = start
	}
	return start, end
}
