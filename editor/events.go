package editor

// PointerKind is the phase of a pointer event
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer sample in canvas-local coordinates
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

func (e PointerEvent) Pos() Point {
	return Point{X: e.X, Y: e.Y}
}

// Down, Move, Up and Leave build events
func Down(x, y float64) PointerEvent  { return PointerEvent{Kind: PointerDown, X: x, Y: y} }
func Move(x, y float64) PointerEvent  { return PointerEvent{Kind: PointerMove, X: x, Y: y} }
func Up(x, y float64) PointerEvent    { return PointerEvent{Kind: PointerUp, X: x, Y: y} }
func Leave(x, y float64) PointerEvent { return PointerEvent{Kind: PointerLeave, X: x, Y: y} }
