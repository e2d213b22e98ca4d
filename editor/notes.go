package editor

import (
	"math"

	"github.com/google/uuid"

	"go-pitchroll/debug"
	"go-pitchroll/geom"
	"go-pitchroll/history"
)

// NoteState is the note controller's interaction state
type NoteState int

const (
	NoteIdle NoteState = iota
	NoteDrawing
	NoteDragging
	NoteResizing
)

func (s NoteState) String() string {
	switch s {
	case NoteDrawing:
		return "drawing"
	case NoteDragging:
		return "dragging"
	case NoteResizing:
		return "resizing"
	default:
		return "idle"
	}
}

// Cursor is the pointer affordance under the hover position
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResize
)

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResize:
		return "resize"
	default:
		return "default"
	}
}

// NoteController draws, drags, resizes and selects notes
type NoteController struct {
	settings Settings
	notes    []Note
	log      *history.Log[[]Note]
	newID    func() string

	state      NoteState
	activeID   string // note being dragged or resized
	drawStart  Point
	drawEnd    Point
	dragOffset Point
	resizeX    float64

	selected string
	cursor   Cursor
}

func newNoteController(settings Settings) *NoteController {
	return &NoteController{
		settings: settings,
		notes:    []Note{},
		log:      history.New([]Note{}, cloneNotes),
		newID:    uuid.NewString,
	}
}

// Handle runs one pointer event through the state machine
func (c *NoteController) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		c.down(ev.Pos())
	case PointerMove:
		c.move(ev.Pos())
	case PointerUp, PointerLeave:
		c.up(ev.Pos())
	}
}

func (c *NoteController) down(pos Point) {
	if idx, ok := c.handleAt(pos); ok {
		n := c.notes[idx]
		c.state = NoteResizing
		c.activeID = n.ID
		c.resizeX = pos.X
		c.selected = n.ID
		debug.Log(debug.CatNotes, "resize start id=%s", n.ID)
		return
	}

	if idx, ok := c.bodyAt(pos); ok {
		n := c.notes[idx]
		c.state = NoteDragging
		c.activeID = n.ID
		c.dragOffset = pos.Sub(Point{X: n.StartTime, Y: c.settings.RowY(n.Pitch)})
		c.selected = n.ID
		debug.Log(debug.CatNotes, "drag start id=%s", n.ID)
		return
	}

	c.state = NoteDrawing
	c.drawStart = pos
	c.drawEnd = pos
	debug.Log(debug.CatNotes, "draw start at %.1f,%.1f", pos.X, pos.Y)
}

func (c *NoteController) move(pos Point) {
	switch c.state {
	case NoteResizing:
		idx := findNote(c.notes, c.activeID)
		if idx < 0 {
			c.Reset()
			break
		}
		n := &c.notes[idx]
		n.SetDuration(max(c.settings.MinResizeWidth, c.settings.MinNoteWidth(), pos.X-n.StartTime))

	case NoteDragging:
		idx := findNote(c.notes, c.activeID)
		if idx < 0 {
			c.Reset()
			break
		}
		n := &c.notes[idx]
		n.StartTime = pos.X - c.dragOffset.X
		n.Pitch = c.settings.PitchAt(pos.Y - c.dragOffset.Y)

	case NoteDrawing:
		c.drawEnd = pos
	}

	c.cursor = c.hover(pos)
	debug.LogEvery(20, debug.CatNotes, "move state=%s", c.state)
}

func (c *NoteController) up(pos Point) {
	switch c.state {
	case NoteResizing, NoteDragging:
		if findNote(c.notes, c.activeID) >= 0 {
			c.commit()
			debug.Log(debug.CatNotes, "%s done id=%s", c.state, c.activeID)
		}
	case NoteDrawing:
		c.notes = append(c.notes, c.drawnNote(pos))
		c.commit()
	}
	c.Reset()
}

// drawnNote builds the note for a draw gesture released at end
func (c *NoteController) drawnNote(end Point) Note {
	s := c.settings
	snapY := geom.SnapToGrid(c.drawStart.Y, s.RowHeight)
	pitch := s.PitchAt(snapY)
	duration := math.Max(s.MinNoteWidth(), geom.SnapToGrid(end.X-c.drawStart.X, s.SnapUnit()))

	n := NewNote(c.uniqueID(), c.drawStart.X, duration, pitch, s.DefaultLyric)
	debug.Log(debug.CatNotes, "draw done id=%s pitch=%d dur=%.1f", n.ID, n.Pitch, n.Duration)
	return n
}

func (c *NoteController) uniqueID() string {
	for {
		id := c.newID()
		if id != "" && findNote(c.notes, id) < 0 {
			return id
		}
	}
}

// handleAt finds the first note whose resize handle is under pos
func (c *NoteController) handleAt(pos Point) (int, bool) {
	for i, n := range c.notes {
		if !c.settings.NoteRect(n).Contains(pos) {
			continue
		}
		if pos.X >= n.End()-c.settings.ResizeHandle {
			return i, true
		}
	}
	return -1, false
}

// bodyAt finds the first note under pos
func (c *NoteController) bodyAt(pos Point) (int, bool) {
	for i, n := range c.notes {
		if c.settings.NoteRect(n).Contains(pos) {
			return i, true
		}
	}
	return -1, false
}

func (c *NoteController) hover(pos Point) Cursor {
	if _, ok := c.handleAt(pos); ok {
		return CursorResize
	}
	if _, ok := c.bodyAt(pos); ok {
		return CursorMove
	}
	return CursorDefault
}

// Reset abandons the current gesture without committing
func (c *NoteController) Reset() {
	c.state = NoteIdle
	c.activeID = ""
}

func (c *NoteController) commit() {
	c.log.Commit(c.notes)
	debug.Log(debug.CatHistory, "notes commit index=%d len=%d", c.log.Index(), c.log.Len())
}

// Undo restores the previous snapshot
func (c *NoteController) Undo() bool {
	state, ok := c.log.Undo()
	if !ok {
		return false
	}
	c.Reset()
	c.notes = state
	if findNote(c.notes, c.selected) < 0 {
		c.selected = ""
	}
	debug.Log(debug.CatHistory, "notes undo index=%d", c.log.Index())
	return true
}

// Add appends a note and commits. An empty or duplicate id is replaced.
func (c *NoteController) Add(n Note) string {
	n = n.Copy()
	if n.ID == "" || findNote(c.notes, n.ID) >= 0 {
		n.ID = c.uniqueID()
	}
	n.Duration = math.Max(n.Duration, c.settings.MinNoteWidth())
	n.Pitch = geom.Clamp(n.Pitch, 0, c.settings.MaxPitch())
	if n.ControlPoints == nil {
		n.ControlPoints = DefaultControlPoints(n.Duration)
	}
	c.Reset()
	c.notes = append(c.notes, n)
	c.commit()
	return n.ID
}

// Update applies fn to the note with id and commits. The id cannot change.
func (c *NoteController) Update(id string, fn func(*Note)) bool {
	idx := findNote(c.notes, id)
	if idx < 0 {
		return false
	}
	c.Reset()
	n := c.notes[idx].Copy()
	fn(&n)
	n.ID = id
	n.Pitch = geom.Clamp(n.Pitch, 0, c.settings.MaxPitch())
	if n.Duration < c.settings.MinNoteWidth() {
		n.SetDuration(c.settings.MinNoteWidth())
	}
	c.notes[idx] = n
	c.commit()
	return true
}

// SetLyric replaces the lyric of a note
func (c *NoteController) SetLyric(id, lyric string) bool {
	return c.Update(id, func(n *Note) { n.Lyric = lyric })
}

// Delete removes the note with id and commits
func (c *NoteController) Delete(id string) bool {
	idx := findNote(c.notes, id)
	if idx < 0 {
		return false
	}
	c.Reset()
	c.notes = append(c.notes[:idx], c.notes[idx+1:]...)
	if c.selected == id {
		c.selected = ""
	}
	c.commit()
	return true
}

// Select sets the selected note; an unknown id clears the selection
func (c *NoteController) Select(id string) {
	if findNote(c.notes, id) < 0 {
		id = ""
	}
	c.selected = id
}

// Selected returns the selected note id, empty when nothing is selected
func (c *NoteController) Selected() string {
	return c.selected
}

// Notes returns a copy of the notes
func (c *NoteController) Notes() []Note {
	return cloneNotes(c.notes)
}

// Note returns a copy of the note with id
func (c *NoteController) Note(id string) (Note, bool) {
	idx := findNote(c.notes, id)
	if idx < 0 {
		return Note{}, false
	}
	return c.notes[idx].Copy(), true
}

func (c *NoteController) State() NoteState {
	return c.state
}

func (c *NoteController) Cursor() Cursor {
	return c.cursor
}

// Preview is the live rectangle of a draw gesture
func (c *NoteController) Preview() (geom.Rect, bool) {
	if c.state != NoteDrawing {
		return geom.Rect{}, false
	}
	x := c.drawStart.X
	w := c.drawEnd.X - c.drawStart.X
	if w < 0 {
		x += w
		w = -w
	}
	return geom.Rect{
		X:      x,
		Y:      c.drawStart.Y - c.settings.RowHeight/2,
		Width:  w,
		Height: c.settings.RowHeight,
	}, true
}

func (c *NoteController) HistoryIndex() int {
	return c.log.Index()
}

func (c *NoteController) HistoryLen() int {
	return c.log.Len()
}
