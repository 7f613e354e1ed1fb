package ninja

import "strings"

// Rule is a named command template, declared with the rule keyword.
//
// The first variable of a rule made by [NewRule] is always command.
// Variables are never deduplicated: ninja accepts repeated bindings and the
// last one wins.
type Rule struct {
	name string
	bindings
}

// NewRule returns a Rule named name whose command is command.
// The rule is not part of any [File] until added with [Rule.AddTo] or
// [File.AddRule].
func NewRule(name, command string) *Rule {
	return (&Rule{name: name}).Variable("command", command)
}

// Name returns the rule name.
func (r *Rule) Name() string { return r.name }

// AddTo appends r to f and returns a reference to the new statement.
func (r *Rule) AddTo(f *File) RuleRef { return f.AddRule(r) }

// Variable attaches a variable to the rule.
func (r *Rule) Variable(name, value string) *Rule {
	r.bind(name, value)

	return r
}

// Pool assigns the rule to pool p.
func (r *Rule) Pool(p *Pool) *Rule { return r.Variable("pool", p.name) }

// PoolConsole assigns the rule to the built-in console pool.
func (r *Rule) PoolConsole() *Rule { return r.Pool(ConsolePool()) }

// Description sets the text ninja prints when running the rule.
func (r *Rule) Description(desc string) *Rule {
	return r.Variable("description", desc)
}

// Depfile sets the path of the Makefile-style dependency file the command
// writes.
func (r *Rule) Depfile(depfile string) *Rule {
	return r.Variable("depfile", depfile)
}

// DepsGCC declares gcc-style dependency output.
func (r *Rule) DepsGCC() *Rule { return r.Variable("deps", "gcc") }

// DepsMSVC declares msvc-style (/showIncludes) dependency output.
func (r *Rule) DepsMSVC() *Rule { return r.Variable("deps", "msvc") }

// DepsMSVCPrefix declares msvc-style dependency output with a localized
// prefix.
func (r *Rule) DepsMSVCPrefix(prefix string) *Rule {
	return r.DepsMSVC().Variable("msvc_deps_prefix", prefix)
}

// Generator marks the rule as one that regenerates the build file.
func (r *Rule) Generator() *Rule { return r.Variable("generator", "1") }

// InNewline sets in_newline.
func (r *Rule) InNewline(in string) *Rule {
	return r.Variable("in_newline", in)
}

// Restat makes ninja re-stat outputs after the command runs.
func (r *Rule) Restat() *Rule { return r.Variable("restat", "1") }

// Rspfile sets the response file and its content.
func (r *Rule) Rspfile(file, content string) *Rule {
	return r.Variable("rspfile", file).Variable("rspfile_content", content)
}

// String renders the rule block.
func (r *Rule) String() string {
	var b strings.Builder

	r.write(&b)

	return b.String()
}

func (r *Rule) write(b *strings.Builder) {
	r.writeBlock(b, "rule", r.name)
}

// RuleRef is a reference to a rule statement inside a [File].
// All methods act on the rule stored in the file, never a copy.
type RuleRef struct{ ref }

// Rule returns the referenced rule.
func (r RuleRef) Rule() *Rule { return r.statement().asRule(r.index) }

// Name returns the rule name.
func (r RuleRef) Name() string { return r.Rule().name }

// Build appends a build edge producing outputs with this rule to the file
// holding the rule.
func (r RuleRef) Build(outputs ...string) BuildRef {
	b := NewBuild(r.Rule(), outputs...)

	return BuildRef{ref{
		list:  r.list,
		index: r.list.add(&Statement{kind: KindBuild, build: b}),
	}}
}

// Variable attaches a variable to the rule.
func (r RuleRef) Variable(name, value string) RuleRef {
	r.Rule().Variable(name, value)

	return r
}

// Pool assigns the rule to the referenced pool.
func (r RuleRef) Pool(p PoolRef) RuleRef {
	r.Rule().Pool(p.Pool())

	return r
}

// PoolConsole assigns the rule to the built-in console pool.
func (r RuleRef) PoolConsole() RuleRef {
	r.Rule().PoolConsole()

	return r
}

// Description sets the text ninja prints when running the rule.
func (r RuleRef) Description(desc string) RuleRef {
	r.Rule().Description(desc)

	return r
}

// Depfile sets the dependency file path.
func (r RuleRef) Depfile(depfile string) RuleRef {
	r.Rule().Depfile(depfile)

	return r
}

// DepsGCC declares gcc-style dependency output.
func (r RuleRef) DepsGCC() RuleRef {
	r.Rule().DepsGCC()

	return r
}

// DepsMSVC declares msvc-style dependency output.
func (r RuleRef) DepsMSVC() RuleRef {
	r.Rule().DepsMSVC()

	return r
}

// DepsMSVCPrefix declares msvc-style dependency output with prefix.
func (r RuleRef) DepsMSVCPrefix(prefix string) RuleRef {
	r.Rule().DepsMSVCPrefix(prefix)

	return r
}

// Generator marks the rule as a generator.
func (r RuleRef) Generator() RuleRef {
	r.Rule().Generator()

	return r
}

// InNewline sets in_newline.
func (r RuleRef) InNewline(in string) RuleRef {
	r.Rule().InNewline(in)

	return r
}

// Restat makes ninja re-stat outputs.
func (r RuleRef) Restat() RuleRef {
	r.Rule().Restat()

	return r
}

// Rspfile sets the response file and its content.
func (r RuleRef) Rspfile(file, content string) RuleRef {
	r.Rule().Rspfile(file, content)

	return r
}
