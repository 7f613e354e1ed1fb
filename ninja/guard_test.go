package ninja

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

// mustPanic runs fn and reports whether it panicked with an error matching
// target.
func mustPanic(t *testing.T, target error, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()

		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v", target)
		}

		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()

	fn()
}

func TestCooperative_Conflicts(t *testing.T) {
	r := NewRule("r", "cmd")

	r.g.lock()
	mustPanic(t, ErrBorrowConflict, func() { r.Variable("x", "y") })
	mustPanic(t, ErrBorrowConflict, func() { _ = r.Variables() })
	r.g.unlock()

	r.g.rlock()
	mustPanic(t, ErrBorrowConflict, func() { r.Variable("x", "y") })

	if got := len(r.Variables()); got != 1 {
		t.Errorf("expected readers to share access, got %d variables", got)
	}

	r.g.runlock()

	r.Variable("x", "y")

	if got := len(r.Variables()); got != 2 {
		t.Errorf("expected attach to succeed after release, got %d variables", got)
	}
}

func TestRef_KindMismatch(t *testing.T) {
	f := New()
	b := f.Phony("all")

	wrong := RuleRef{b.ref}
	mustPanic(t, ErrKindMismatch, func() { wrong.Variable("x", "y") })

	pool := PoolRef{b.ref}
	mustPanic(t, ErrKindMismatch, func() { _ = pool.Name() })
}

func TestFile_AddBuildUnknownRule(t *testing.T) {
	f := New()
	mustPanic(t, ErrUnknownRule, func() {
		f.AddBuild(NewBuild(NewRule("missing", "x"), "out"))
	})

	if f.Len() != 0 {
		t.Errorf("expected no statement to be added, got %d", f.Len())
	}

	// A panic inside the write lock must release it.
	f.Comment("still usable")

	if f.Len() != 1 {
		t.Errorf("expected 1 statement, got %d", f.Len())
	}
}

func TestError_Message(t *testing.T) {
	err := ErrKindMismatch.With()
	if !errors.Is(err, ErrKindMismatch) {
		t.Error("expected derived error to match sentinel")
	}

	if errors.Is(err, ErrBorrowConflict) {
		t.Error("expected derived error not to match another sentinel")
	}

	msg := ErrUnknownRule.Wrap(errors.New("boom")).Error()
	if !strings.Contains(msg, "boom") || !strings.Contains(msg, ErrUnknownRule.msg) {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestFile_SharedConcurrentInsertion(t *testing.T) {
	const (
		workers = 8
		perWork = 100
	)

	f := New(WithMode(ModeShared))
	cc := f.Rule("cc", "gcc")

	var wg sync.WaitGroup

	for w := range workers {
		wg.Go(func() {
			for i := range perWork {
				name := fmt.Sprintf("w%d_%d", w, i)

				// Each goroutine configures only the statements it created.
				cc.Build(name + ".o").With(name + ".c")
				f.Comment(name)
				f.Variable(name, "1")
			}
		})
	}

	wg.Wait()

	if want := 1 + workers*perWork*3; f.Len() != want {
		t.Fatalf("expected %d statements, got %d", want, f.Len())
	}

	out := f.String()
	for w := range workers {
		name := fmt.Sprintf("w%d_%d", w, perWork-1)
		if !strings.Contains(out, "build "+name+".o: cc "+name+".c\n") {
			t.Errorf("missing build edge for %s", name)
		}
	}
}

func TestMode_Parse(t *testing.T) {
	tests := []struct {
		input string
		want  Mode
	}{
		{"single", ModeSingle},
		{"Shared", ModeShared},
		{"", DefaultMode},
		{"nope", DefaultMode},
	}

	for _, tt := range tests {
		if got := ParseMode(tt.input); got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if New(WithShared(true)).Mode() != ModeShared {
		t.Error("expected shared mode")
	}

	if New(WithShared(false)).Mode() != ModeSingle {
		t.Error("expected single mode")
	}
}
