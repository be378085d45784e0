package synth

// EventKind discriminates note events.
type EventKind int

const (
	// KindNoteOn triggers a note.
	KindNoteOn EventKind = iota
	// KindNoteOff releases a note.
	KindNoteOff
)

// Event is one already-decoded note event from an external input source.
type Event struct {
	Kind     EventKind
	Note     int
	Velocity float64
}

// Handle dispatches one event onto the voice pool. Unknown kinds are
// ignored.
func (e *Engine) Handle(ev Event) {
	switch ev.Kind {
	case KindNoteOn:
		e.NoteOn(ev.Note, ev.Velocity)
	case KindNoteOff:
		e.NoteOff(ev.Note)
	}
}
