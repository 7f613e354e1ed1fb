package ninja

//go:generate go tool stringer --linecomment --type Mode --output guard_string.go

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Mode selects how a [File] guards its statement list.
type Mode int

const (
	// ModeSingle is for files owned by one goroutine. Conflicting access
	// panics with [ErrBorrowConflict] rather than blocking.
	ModeSingle Mode = iota // single
	// ModeShared allows statements to be inserted from many goroutines.
	ModeShared // shared
)

// DefaultMode is the [Mode] used when none is given.
const DefaultMode = ModeSingle

// ParseMode returns the Mode named by s, or [DefaultMode].
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ModeShared.String():
		return ModeShared
	case ModeSingle.String():
		return ModeSingle
	default:
		return DefaultMode
	}
}

// guard serializes access to append-only state.
type guard interface {
	lock()
	unlock()
	rlock()
	runlock()
}

func (m Mode) guard() guard {
	if m == ModeShared {
		return &rwGuard{}
	}

	return &cooperative{}
}

// cooperative is a guard that never waits. It admits any number of readers
// or one writer, and panics with [ErrBorrowConflict] on anything else.
//
// Every statement uses one for its attached lists, in both modes: attaching
// to the same statement from two goroutines at once is not supported.
type cooperative struct {
	state atomic.Int32 // readers if positive, -1 while written
}

func (g *cooperative) lock() {
	if !g.state.CompareAndSwap(0, -1) {
		panic(ErrBorrowConflict.With(
			slog.String("access", "write"),
			slog.Int("state", int(g.state.Load())),
		))
	}
}

func (g *cooperative) unlock() { g.state.Store(0) }

func (g *cooperative) rlock() {
	for {
		n := g.state.Load()
		if n < 0 {
			panic(ErrBorrowConflict.With(slog.String("access", "read")))
		}

		if g.state.CompareAndSwap(n, n+1) {
			return
		}
	}
}

func (g *cooperative) runlock() { g.state.Add(-1) }

// rwGuard is a blocking reader/writer guard. Critical sections are short
// appends or slice snapshots, so waiters are released quickly.
type rwGuard struct {
	mu sync.RWMutex
}

func (g *rwGuard) lock()    { g.mu.Lock() }
func (g *rwGuard) unlock()  { g.mu.Unlock() }
func (g *rwGuard) rlock()   { g.mu.RLock() }
func (g *rwGuard) runlock() { g.mu.RUnlock() }
