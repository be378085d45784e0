package synth

const (
	a4Freq = 440.0
	a4Note = 69
)

// NoteToFrequency converts a MIDI note number to its equal-temperament
// frequency in Hz, with A4 (note 69) at 440 Hz.
func NoteToFrequency(note int) float64 {
	return a4Freq * mathPower2(float64(note-a4Note)/12)
}
