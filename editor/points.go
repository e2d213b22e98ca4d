package editor

import (
	"go-pitchroll/debug"
	"go-pitchroll/geom"
	"go-pitchroll/history"
)

// PointState is the point controller's interaction state
type PointState int

const (
	PointIdle PointState = iota
	PointDragging
)

// PointController adds, inserts and drags curve anchors
type PointController struct {
	settings Settings
	points   []Point
	log      *history.Log[[]Point]

	state     PointState
	dragIndex int
}

func newPointController(settings Settings) *PointController {
	return &PointController{
		settings:  settings,
		points:    []Point{},
		log:       history.New([]Point{}, clonePoints),
		dragIndex: -1,
	}
}

// Handle runs one pointer event through the state machine
func (c *PointController) Handle(ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		c.down(ev.Pos())
	case PointerMove:
		c.move(ev.Pos())
	case PointerUp, PointerLeave:
		c.up(ev.Pos())
	}
}

func (c *PointController) down(pos Point) {
	if idx, ok := geom.NearestPointIndex(c.points, pos, c.settings.PointThreshold); ok {
		c.startDrag(idx)
		debug.Log(debug.CatPoints, "grab #%d at %.1f,%.1f", idx, pos.X, pos.Y)
		return
	}

	idx, near := geom.NearestSegment(c.points, pos, geom.SegmentOptions{
		Threshold: c.settings.CurveThreshold,
		MaxLength: c.settings.MaxSegmentLength,
	})
	if !near && len(c.points) >= 2 {
		// clicked away from an existing curve
		return
	}

	c.points = append(c.points, Point{})
	copy(c.points[idx+1:], c.points[idx:])
	c.points[idx] = pos
	c.commit()
	debug.Log(debug.CatPoints, "insert #%d at %.1f,%.1f (n=%d)", idx, pos.X, pos.Y, len(c.points))

	c.startDrag(idx)
}

func (c *PointController) move(pos Point) {
	if c.state != PointDragging {
		return
	}
	if c.dragIndex < 0 || c.dragIndex >= len(c.points) {
		c.Reset()
		return
	}
	c.points[c.dragIndex] = pos
	debug.LogEvery(20, debug.CatPoints, "drag #%d", c.dragIndex)
}

func (c *PointController) up(pos Point) {
	if c.state != PointDragging {
		return
	}
	if c.dragIndex >= 0 && c.dragIndex < len(c.points) {
		c.commit()
		debug.Log(debug.CatPoints, "drop #%d at %.1f,%.1f", c.dragIndex, pos.X, pos.Y)
	}
	c.Reset()
}

func (c *PointController) startDrag(idx int) {
	c.state = PointDragging
	c.dragIndex = idx
}

// Reset abandons any drag without committing
func (c *PointController) Reset() {
	c.state = PointIdle
	c.dragIndex = -1
}

func (c *PointController) commit() {
	c.log.Commit(c.points)
	debug.Log(debug.CatHistory, "points commit index=%d len=%d", c.log.Index(), c.log.Len())
}

// Undo restores the previous snapshot. Callers reset interactions first.
func (c *PointController) Undo() bool {
	state, ok := c.log.Undo()
	if !ok {
		return false
	}
	c.Reset()
	c.points = state
	debug.Log(debug.CatHistory, "points undo index=%d", c.log.Index())
	return true
}

// Delete removes the anchor at index and commits
func (c *PointController) Delete(index int) bool {
	if index < 0 || index >= len(c.points) {
		return false
	}
	c.Reset()
	c.points = append(c.points[:index], c.points[index+1:]...)
	c.commit()
	return true
}

// Points returns a copy of the anchors in stored order
func (c *PointController) Points() []Point {
	return clonePoints(c.points)
}

func (c *PointController) State() PointState {
	return c.state
}

// DragIndex is the dragged anchor, -1 when idle
func (c *PointController) DragIndex() int {
	return c.dragIndex
}

func (c *PointController) HistoryIndex() int {
	return c.log.Index()
}

func (c *PointController) HistoryLen() int {
	return c.log.Len()
}
