package ninja

//go:generate go tool stringer --linecomment --type Kind --output statement_string.go

import (
	"log/slog"
	"slices"
	"strings"
)

// Kind identifies the type of a top-level [Statement].
//
// The numeric value of each Kind is its ordinal, which only decides where
// blank lines go when a [File] is rendered.
type Kind int

const (
	KindComment  Kind = iota // comment
	KindRule                 // rule
	KindBuild                // build
	KindVariable             // variable
	KindDefault              // default
	KindSubninja             // subninja
	KindInclude              // include
	KindPool                 // pool
)

// Kinds returns every Kind in ordinal order.
func Kinds() []Kind {
	return []Kind{
		KindComment,
		KindRule,
		KindBuild,
		KindVariable,
		KindDefault,
		KindSubninja,
		KindInclude,
		KindPool,
	}
}

// Statement is one top-level declaration of a ninja file.
type Statement struct {
	kind Kind
	// Exactly one of these is set based on kind
	text     string // comment, subninja, include
	rule     *Rule
	build    *Build
	variable *Variable
	defaults []string
	pool     *Pool
}

// Kind returns the statement kind.
func (s *Statement) Kind() Kind { return s.kind }

// Ordinal returns the fixed ordinal of the statement's kind.
func (s *Statement) Ordinal() int { return int(s.kind) }

// SameKind reports whether s and other are the same kind of statement.
func (s *Statement) SameKind(other *Statement) bool {
	return s.kind == other.kind
}

// Text returns the comment text or the subninja/include path.
func (s *Statement) Text() string { return s.text }

// Rule returns the rule declared by s, or nil.
func (s *Statement) Rule() *Rule { return s.rule }

// Build returns the build edge declared by s, or nil.
func (s *Statement) Build() *Build { return s.build }

// Variable returns the top-level variable declared by s, or nil.
func (s *Statement) Variable() *Variable { return s.variable }

// Defaults returns a copy of the outputs of a default statement.
func (s *Statement) Defaults() []string { return slices.Clone(s.defaults) }

// Pool returns the pool declared by s, or nil.
func (s *Statement) Pool() *Pool { return s.pool }

// String renders the statement body, without the blank line a [File] may put
// in front of it.
func (s *Statement) String() string {
	var b strings.Builder

	s.write(&b)

	return b.String()
}

// hidden reports whether s renders nothing at all.
func (s *Statement) hidden() bool {
	return s.kind == KindPool && s.pool.builtin
}

func (s *Statement) write(b *strings.Builder) {
	switch s.kind {
	case KindComment:
		b.WriteString("# ")
		b.WriteString(s.text)
		b.WriteByte('\n')

	case KindRule:
		s.rule.write(b)

	case KindBuild:
		s.build.write(b)

	case KindVariable:
		b.WriteString(s.variable.String())
		b.WriteByte('\n')

	case KindDefault:
		b.WriteString("default")
		writeList(b, s.defaults)
		b.WriteByte('\n')

	case KindSubninja:
		b.WriteString("subninja ")
		b.WriteString(s.text)
		b.WriteByte('\n')

	case KindInclude:
		b.WriteString("include ")
		b.WriteString(s.text)
		b.WriteByte('\n')

	case KindPool:
		s.pool.write(b)
	}
}

// asRule returns the rule declared by s, panicking if s is not a rule.
func (s *Statement) asRule(index int) *Rule {
	s.expect(KindRule, index)

	return s.rule
}

func (s *Statement) asBuild(index int) *Build {
	s.expect(KindBuild, index)

	return s.build
}

func (s *Statement) asPool(index int) *Pool {
	s.expect(KindPool, index)

	return s.pool
}

func (s *Statement) expect(kind Kind, index int) {
	if s.kind != kind {
		panic(ErrKindMismatch.With(
			slog.Int("index", index),
			slog.String("want", kind.String()),
			slog.String("have", s.kind.String()),
		))
	}
}

// writeList writes each item of list preceded by a space.
func writeList(b *strings.Builder, list []string) {
	for _, item := range list {
		b.WriteByte(' ')
		b.WriteString(item)
	}
}

// writeVariables writes each variable on its own line, indented.
func writeVariables(b *strings.Builder, vars []Variable) {
	for _, v := range vars {
		b.WriteString("  ")
		b.WriteString(v.String())
		b.WriteByte('\n')
	}
}
