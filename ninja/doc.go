// Package ninja writes ninja build files.
//
// A [File] collects statements in the order they are declared and renders
// them in the exact syntax ninja reads:
//
//	f := ninja.New()
//	f.Variable("cflags", "-Wall")
//
//	cc := f.Rule("cc", "gcc $cflags -c $in -o $out").
//		Description("CC $out").
//		Depfile("$out.d").
//		DepsGCC()
//
//	cc.Build("foo.o").With("foo.c")
//	cc.Build("bar.o").With("bar.c").Variable("cflags", "-Wall -DDEBUG")
//
//	f.Rule("link", "gcc -o $out $in").Build("app").With("foo.o", "bar.o")
//	f.Defaults("app")
//
//	fmt.Print(f)
//
// # References
//
// Declaring a rule, build edge or pool returns a [RuleRef], [BuildRef] or
// [PoolRef]. A reference is the index of a statement in its file's statement
// list, so every method called through it changes the statement that will be
// rendered. A RuleRef can also append build edges for its rule, and a PoolRef
// can append rules assigned to its pool.
//
// Attached lists (variables, inputs, outputs) only ever grow. Repeated
// variables are kept in order; ninja uses the last one.
//
// # Layout
//
// Statements are rendered in insertion order. A blank line precedes every
// rule, and any statement whose kind differs from the one before it, so build
// edges stay grouped under the rule that precedes them.
//
// # Escaping
//
// Nothing is escaped when rendering. Text containing '$', newlines, spaces
// (in path lists) or ':' (in build outputs) must be passed through [Escape],
// [EscapePath] or [EscapeBuild] first.
//
// # Concurrency
//
// A File created with [ModeSingle] belongs to one goroutine. With
// [ModeShared], statements may be declared from many goroutines at once.
// In both modes, one statement must not be configured from two goroutines
// at the same time: the conflicting call panics with [ErrBorrowConflict].
package ninja
