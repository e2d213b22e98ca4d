package editor

import (
	"context"

	"go-pitchroll/debug"
)

// Actor confines every mutation of a Session to one goroutine. Events and
// operations run strictly in the order they are sent.
type Actor struct {
	session *Session
	ops     chan op
	done    chan struct{}

	// Notify listeners (TUI) of updates
	updates chan struct{}
}

type op struct {
	fn     func(*Session)
	notify bool // false for read-only snapshots
}

// NewActor wraps a session; call Run to start processing
func NewActor(s *Session) *Actor {
	return &Actor{
		session: s,
		ops:     make(chan op, 64),
		done:    make(chan struct{}),
		updates: make(chan struct{}, 1),
	}
}

// Run processes operations until ctx is cancelled (blocking - run in goroutine)
func (a *Actor) Run(ctx context.Context) {
	defer close(a.done)
	debug.Log(debug.CatActor, "started")

	for {
		select {
		case <-ctx.Done():
			debug.Log(debug.CatActor, "stopped: %v", ctx.Err())
			return
		case o := <-a.ops:
			o.fn(a.session)
			if o.notify {
				a.notify()
			}
		}
	}
}

// Send queues a pointer event; it reports false once the actor has stopped
func (a *Actor) Send(ev PointerEvent) bool {
	return a.enqueue(op{fn: func(s *Session) { s.Handle(ev) }, notify: true})
}

// Do runs fn on the actor goroutine and waits for it to finish
func (a *Actor) Do(fn func(*Session)) bool {
	return a.wait(fn, true)
}

// Read is Do without an update notification; fn must not mutate the session
func (a *Actor) Read(fn func(*Session)) bool {
	return a.wait(fn, false)
}

// Frame snapshots the session after everything queued so far has run
func (a *Actor) Frame() (Frame, bool) {
	var f Frame
	ok := a.Read(func(s *Session) { f = s.Frame() })
	return f, ok
}

func (a *Actor) wait(fn func(*Session), notify bool) bool {
	finished := make(chan struct{})
	if !a.enqueue(op{fn: func(s *Session) {
		defer close(finished)
		fn(s)
	}, notify: notify}) {
		return false
	}
	select {
	case <-finished:
		return true
	case <-a.done:
		return false
	}
}

// Updates fires (coalesced) after each operation
func (a *Actor) Updates() <-chan struct{} {
	return a.updates
}

// Done is closed when Run returns
func (a *Actor) Done() <-chan struct{} {
	return a.done
}

func (a *Actor) enqueue(o op) bool {
	select {
	case <-a.done:
		return false
	default:
	}
	select {
	case a.ops <- o:
		return true
	case <-a.done:
		return false
	}
}

func (a *Actor) notify() {
	select {
	case a.updates <- struct{}{}:
	default:
	}
}
