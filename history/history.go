// Package history keeps a linear undo log of full collection snapshots.
//
// The log always starts with one entry, the initial state. Committing after an
// undo discards every entry past the cursor, so there is no redo.
package history

// Log is a version log of snapshots of T with an undo cursor
type Log[T any] struct {
	entries []T
	index   int
	clone   func(T) T
}

// New creates a log whose first entry is initial. clone must return a deep
// copy; snapshots never share memory with the caller.
func New[T any](initial T, clone func(T) T) *Log[T] {
	return &Log[T]{
		entries: []T{clone(initial)},
		clone:   clone,
	}
}

// Commit truncates the log after the cursor and appends a copy of state
func (l *Log[T]) Commit(state T) {
	l.entries = append(l.entries[:l.index+1], l.clone(state))
	l.index = len(l.entries) - 1
}

// Undo moves the cursor back one entry and returns a copy of that snapshot.
// At the initial entry it does nothing and reports false.
func (l *Log[T]) Undo() (T, bool) {
	if l.index == 0 {
		var zero T
		return zero, false
	}
	l.index--
	return l.clone(l.entries[l.index]), true
}

// Current returns a copy of the snapshot under the cursor
func (l *Log[T]) Current() T {
	return l.clone(l.entries[l.index])
}

// Index is the cursor position
func (l *Log[T]) Index() int {
	return l.index
}

// Len is the number of retained entries, including any past the cursor
func (l *Log[T]) Len() int {
	return len(l.entries)
}

// CanUndo reports whether the cursor is past the initial entry
func (l *Log[T]) CanUndo() bool {
	return l.index > 0
}
