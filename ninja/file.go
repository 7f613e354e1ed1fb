package ninja

import (
	"iter"
	"log/slog"
	"slices"
	"strings"
)

// File is an in-memory ninja file: an ordered list of statements that is
// only ever appended to.
//
// Methods that declare a rule, build edge or pool return a reference used to
// configure the new statement further. The remaining declarations return the
// File so calls can be chained.
type File struct {
	list  *statementList
	phony *Rule
	mode  Mode
}

// New returns an empty File.
func New(opts ...Option) *File {
	cfg := apply(config{mode: DefaultMode}, opts...)

	cfg.logger.Trace("file created", slog.String("mode", cfg.mode.String()))

	return &File{
		list:  newStatementList(cfg.mode, cfg.logger),
		phony: NewRule("phony", ""),
		mode:  cfg.mode,
	}
}

// Mode returns the mode the file was created with.
func (f *File) Mode() Mode { return f.mode }

// PhonyRule returns the built-in phony rule. It is never rendered.
func (f *File) PhonyRule() *Rule { return f.phony }

// Len returns the number of statements in f.
func (f *File) Len() int { return f.list.len() }

// Statements returns an iterator over the statements of f in insertion order.
// Statements added while iterating are not visited.
func (f *File) Statements() iter.Seq2[int, *Statement] {
	return slices.All(f.list.snapshot())
}

// Rule declares a rule and returns a reference to it.
func (f *File) Rule(name, command string) RuleRef {
	return f.AddRule(NewRule(name, command))
}

// AddRule appends r and returns a reference to it.
func (f *File) AddRule(r *Rule) RuleRef {
	return RuleRef{f.add(&Statement{kind: KindRule, rule: r})}
}

// Phony declares a build edge for outputs using the built-in phony rule.
func (f *File) Phony(outputs ...string) BuildRef {
	return f.AddBuild(NewBuild(f.phony, outputs...))
}

// AddBuild appends b and returns a reference to it.
//
// The rule of b must already be declared in f, or be phony; otherwise
// AddBuild panics with [ErrUnknownRule].
func (f *File) AddBuild(b *Build) BuildRef {
	return BuildRef{ref{list: f.list, index: f.list.addBuild(b, f.phony.name)}}
}

// Pool declares a pool allowing depth concurrent jobs.
func (f *File) Pool(name string, depth int) PoolRef {
	return f.AddPool(NewPool(name, depth))
}

// AddPool appends p and returns a reference to it.
func (f *File) AddPool(p *Pool) PoolRef {
	return PoolRef{f.add(&Statement{kind: KindPool, pool: p})}
}

// Comment appends a comment line.
func (f *File) Comment(text string) *File {
	f.add(&Statement{kind: KindComment, text: text})

	return f
}

// Variable appends a top-level variable.
func (f *File) Variable(name, value string) *File {
	v := NewVariable(name, value)
	f.add(&Statement{kind: KindVariable, variable: &v})

	return f
}

// Defaults appends a default statement naming outputs.
func (f *File) Defaults(outputs ...string) *File {
	f.add(&Statement{kind: KindDefault, defaults: slices.Clone(outputs)})

	return f
}

// Subninja appends a subninja statement, which includes path in a new scope.
func (f *File) Subninja(path string) *File {
	f.add(&Statement{kind: KindSubninja, text: path})

	return f
}

// Include appends an include statement, which includes path in the current
// scope.
func (f *File) Include(path string) *File {
	f.add(&Statement{kind: KindInclude, text: path})

	return f
}

func (f *File) add(s *Statement) ref {
	return ref{list: f.list, index: f.list.add(s)}
}

// String renders f in ninja syntax.
func (f *File) String() string {
	var b strings.Builder

	f.write(&b)

	return b.String()
}

// write renders every statement in order. A blank line goes before each rule
// and before any statement whose kind differs from the previous one, so build
// edges sit directly under the rule (or each other) they follow.
func (f *File) write(b *strings.Builder) {
	last := 0

	for _, s := range f.list.snapshot() {
		if s.hidden() {
			continue
		}

		next := s.Ordinal() + 1
		if s.kind == KindRule || next != last {
			b.WriteByte('\n')
		}

		s.write(b)

		last = next
	}
}
