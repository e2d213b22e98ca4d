package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func click(c interface{ Handle(PointerEvent) }, x, y float64) {
	c.Handle(Down(x, y))
	c.Handle(Up(x, y))
}

func TestPointDragThenUndo(t *testing.T) {
	assert := assert.New(t)
	c := newPointController(DefaultSettings())

	click(c, 0, 0)
	click(c, 100, 100)
	assert.Equal([]Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, c.Points())
	assert.Equal(4, c.HistoryIndex(), "insert and release both commit")

	c.Handle(Down(100, 100))
	assert.Equal(PointDragging, c.State())
	assert.Equal(1, c.DragIndex())
	c.Handle(Move(150, 150))
	c.Handle(Move(200, 200))
	assert.Equal(4, c.HistoryIndex(), "moves are not committed")
	c.Handle(Up(200, 200))
	assert.Equal(5, c.HistoryIndex())
	assert.Equal([]Point{{X: 0, Y: 0}, {X: 200, Y: 200}}, c.Points())

	require.True(t, c.Undo())
	assert.Equal([]Point{{X: 0, Y: 0}, {X: 100, Y: 100}}, c.Points())
	assert.Equal(PointIdle, c.State())
}

func TestPointInsertOnSegment(t *testing.T) {
	assert := assert.New(t)
	c := newPointController(DefaultSettings())
	click(c, 0, 0)
	click(c, 100, 0)

	c.Handle(Down(50, 5))
	assert.Equal(PointDragging, c.State())
	assert.Equal(1, c.DragIndex())
	assert.Equal(5, c.HistoryIndex())
	c.Handle(Up(50, 5))
	assert.Equal(6, c.HistoryIndex())
	assert.Equal([]Point{{X: 0, Y: 0}, {X: 50, Y: 5}, {X: 100, Y: 0}}, c.Points())

	// one undo only drops the release snapshot
	require.True(t, c.Undo())
	assert.Equal([]Point{{X: 0, Y: 0}, {X: 50, Y: 5}, {X: 100, Y: 0}}, c.Points())
	require.True(t, c.Undo())
	assert.Equal([]Point{{X: 0, Y: 0}, {X: 100, Y: 0}}, c.Points())
}

func TestPointClickAwayFromCurve(t *testing.T) {
	assert := assert.New(t)
	c := newPointController(DefaultSettings())
	click(c, 0, 0)
	click(c, 100, 0)
	before := c.HistoryIndex()

	click(c, 50, 200)
	assert.Len(c.Points(), 2)
	assert.Equal(before, c.HistoryIndex())
	assert.Equal(PointIdle, c.State())
}

func TestPointGrabWithoutMoveCommitsOnRelease(t *testing.T) {
	c := newPointController(DefaultSettings())
	click(c, 10, 10)
	assert.Equal(t, 2, c.HistoryIndex())
	click(c, 12, 11)
	assert.Equal(t, 3, c.HistoryIndex())
	assert.Equal(t, []Point{{X: 10, Y: 10}}, c.Points())
}

func TestPointLeaveCommitsDrag(t *testing.T) {
	c := newPointController(DefaultSettings())
	click(c, 10, 10)
	c.Handle(Down(10, 10))
	c.Handle(Move(30, 30))
	c.Handle(Leave(40, 40))
	assert.Equal(t, PointIdle, c.State())
	assert.Equal(t, []Point{{X: 30, Y: 30}}, c.Points())
	assert.Equal(t, 3, c.HistoryIndex())
}

func TestPointUndoAtStart(t *testing.T) {
	c := newPointController(DefaultSettings())
	assert.False(t, c.Undo())
	assert.Empty(t, c.Points())
}

func TestPointCommitAfterUndoTruncates(t *testing.T) {
	assert := assert.New(t)
	c := newPointController(DefaultSettings())
	click(c, 0, 0)
	click(c, 300, 300)
	require.True(t, c.Undo())
	require.True(t, c.Undo())
	assert.Equal([]Point{{X: 0, Y: 0}}, c.Points())
	click(c, 500, 500)

	assert.Equal(4, c.HistoryIndex())
	assert.Equal(5, c.HistoryLen())
	assert.Equal([]Point{{X: 0, Y: 0}, {X: 500, Y: 500}}, c.Points())
}

func TestPointDelete(t *testing.T) {
	c := newPointController(DefaultSettings())
	click(c, 0, 0)
	click(c, 300, 300)
	assert.False(t, c.Delete(5))
	assert.True(t, c.Delete(0))
	assert.Equal(t, []Point{{X: 300, Y: 300}}, c.Points())
	assert.Equal(t, 5, c.HistoryIndex())
}

func TestPointsReturnsCopy(t *testing.T) {
	c := newPointController(DefaultSettings())
	click(c, 0, 0)
	pts := c.Points()
	pts[0] = Point{X: 99, Y: 99}
	assert.Equal(t, []Point{{X: 0, Y: 0}}, c.Points())
}
