package midi

import (
	"math"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-pitchroll/editor"
	"go-pitchroll/geom"
)

// Event is a message at an absolute tick
type Event struct {
	Tick    uint32
	Message gomidi.Message
	Lyric   string // set on note-ons
}

// Options tunes message generation
type Options struct {
	Channel   uint8
	Velocity  uint8
	BendRange float64 // semitones either way
	Step      float64 // px between pitch bend samples
}

func DefaultOptions() Options {
	return Options{
		Velocity:  100,
		BendRange: 2,
		Step:      geom.GridUnit / 8,
	}
}

// CurveFunc reads the pitch curve's y at x
type CurveFunc func(x float64) (float64, bool)

// ordering of messages sharing a tick
const (
	rankOff = iota
	rankBend
	rankOn
)

// Messages turns notes into a time ordered message list. When curve is set,
// every note also carries pitch bends following the curve's offset from the
// note's row, and the bend is reset when the note ends.
func Messages(notes []editor.Note, s editor.Settings, curve CurveFunc, opts Options) []Event {
	type ranked struct {
		Event
		rank int
	}
	var out []ranked
	add := func(tick uint32, rank int, msg gomidi.Message, lyric string) {
		out = append(out, ranked{Event{Tick: tick, Message: msg, Lyric: lyric}, rank})
	}

	for _, n := range notes {
		key := NoteFor(n.Pitch)
		on, off := Ticks(n.StartTime, s.GridUnit), Ticks(n.End(), s.GridUnit)

		if curve != nil && opts.Step > 0 {
			last := int16(0)
			for x := n.StartTime; x < n.End(); x += opts.Step {
				y, ok := curve(x)
				if !ok {
					break
				}
				cents := 100 * (s.RowY(n.Pitch) - y) / s.RowHeight
				b := Bend(cents, opts.BendRange)
				if b != last || x == n.StartTime {
					add(Ticks(x, s.GridUnit), rankBend, gomidi.Pitchbend(opts.Channel, b), "")
					last = b
				}
			}
			if last != 0 {
				add(off, rankBend, gomidi.Pitchbend(opts.Channel, 0), "")
			}
		}

		add(on, rankOn, gomidi.NoteOn(opts.Channel, key, opts.Velocity), n.Lyric)
		add(off, rankOff, gomidi.NoteOff(opts.Channel, key), "")
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tick != out[j].Tick {
			return out[i].Tick < out[j].Tick
		}
		return out[i].rank < out[j].rank
	})

	events := make([]Event, len(out))
	for i, r := range out {
		events[i] = r.Event
	}
	return events
}

// Ticks converts canvas px to ticks; one grid unit is one beat
func Ticks(x, gridUnit float64) uint32 {
	if x <= 0 || gridUnit <= 0 {
		return 0
	}
	return uint32(math.Round(x / gridUnit * geom.TicksPerBeat))
}

// Bend converts a cents offset into a 14-bit pitch bend value
func Bend(cents, bendRange float64) int16 {
	if bendRange <= 0 {
		return 0
	}
	v := math.Round(cents / (bendRange * 100) * 8192)
	return int16(geom.Clamp(v, -8192, 8191))
}
