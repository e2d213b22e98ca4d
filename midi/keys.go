package midi

import "fmt"

// BaseNote is the MIDI note of pitch row 0
const BaseNote = 41

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Key is one row of the piano-key column
type Key struct {
	Pitch int
	Note  uint8
	Name  string
	Black bool
}

// NoteFor maps a pitch row to its MIDI note
func NoteFor(pitch int) uint8 {
	n := BaseNote + pitch
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return uint8(n)
}

// NoteName converts MIDI note to readable name (e.g., "C4", "F#3")
func NoteName(note uint8) string {
	octave := int(note)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}

// IsBlack reports whether note is a sharp
func IsBlack(note uint8) bool {
	return len(noteNames[note%12]) > 1
}

// Keys lists the rows top-down, starting from the highest pitch
func Keys(rows int) []Key {
	keys := make([]Key, 0, rows)
	for pitch := rows - 1; pitch >= 0; pitch-- {
		n := NoteFor(pitch)
		keys = append(keys, Key{
			Pitch: pitch,
			Note:  n,
			Name:  NoteName(n),
			Black: IsBlack(n),
		})
	}
	return keys
}
