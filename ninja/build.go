package ninja

import (
	"slices"
	"strings"
)

// Build is a build edge, declared with the build keyword:
//
//	build <outputs> | <implicit outputs>: <rule> <inputs> | <implicit> || <order-only> |@ <validations>
//
// Every list is append-only. Paths are written exactly as given; use
// [EscapeBuild] for outputs and [EscapePath] for inputs.
type Build struct {
	rule            string
	outputs         []string
	implicitOutputs []string
	inputs          []string
	implicitInputs  []string
	orderOnlyInputs []string
	validations     []string
	bindings
}

// NewBuild returns a build edge producing outputs with rule.
// Only the rule name is kept, so the edge does not hold on to the rule.
func NewBuild(rule *Rule, outputs ...string) *Build {
	return &Build{
		rule:    rule.name,
		outputs: slices.Clone(outputs),
	}
}

// Rule returns the name of the rule that produces the outputs.
func (b *Build) Rule() string { return b.rule }

// Outputs returns a copy of the explicit outputs.
func (b *Build) Outputs() []string { return b.clone(b.outputs) }

// ImplicitOutputs returns a copy of the implicit outputs.
func (b *Build) ImplicitOutputs() []string { return b.clone(b.implicitOutputs) }

// Dependencies returns a copy of the explicit inputs.
func (b *Build) Dependencies() []string { return b.clone(b.inputs) }

// ImplicitDependencies returns a copy of the implicit inputs.
func (b *Build) ImplicitDependencies() []string {
	return b.clone(b.implicitInputs)
}

// OrderOnlyDependencies returns a copy of the order-only inputs.
func (b *Build) OrderOnlyDependencies() []string {
	return b.clone(b.orderOnlyInputs)
}

// ValidationList returns a copy of the validations.
func (b *Build) ValidationList() []string { return b.clone(b.validations) }

// With appends explicit inputs ($in).
func (b *Build) With(inputs ...string) *Build {
	b.extend(&b.inputs, inputs)

	return b
}

// WithImplicit appends implicit inputs, which trigger a rebuild but are not
// part of $in.
func (b *Build) WithImplicit(inputs ...string) *Build {
	b.extend(&b.implicitInputs, inputs)

	return b
}

// WithOrderOnly appends order-only inputs, which must exist before the edge
// runs but never trigger a rebuild.
func (b *Build) WithOrderOnly(inputs ...string) *Build {
	b.extend(&b.orderOnlyInputs, inputs)

	return b
}

// Validations appends validation outputs.
func (b *Build) Validations(validations ...string) *Build {
	b.extend(&b.validations, validations)

	return b
}

// OutputImplicit appends implicit outputs, which are not part of $out.
func (b *Build) OutputImplicit(outputs ...string) *Build {
	b.extend(&b.implicitOutputs, outputs)

	return b
}

// Dyndep sets the dyndep file of the edge.
func (b *Build) Dyndep(path string) *Build { return b.Variable("dyndep", path) }

// Pool runs the edge in pool p, overriding the pool of its rule.
func (b *Build) Pool(p *Pool) *Build { return b.Variable("pool", p.name) }

// Variable attaches a variable to the edge, shadowing the rule's binding.
func (b *Build) Variable(name, value string) *Build {
	b.bind(name, value)

	return b
}

// String renders the build edge.
func (b *Build) String() string {
	var w strings.Builder

	b.write(&w)

	return w.String()
}

func (b *Build) write(w *strings.Builder) {
	b.g.rlock()
	defer b.g.runlock()

	w.WriteString("build")
	writeList(w, b.outputs)
	writeGroup(w, "|", b.implicitOutputs)
	w.WriteString(": ")
	w.WriteString(b.rule)
	writeList(w, b.inputs)
	writeGroup(w, "|", b.implicitInputs)
	writeGroup(w, "||", b.orderOnlyInputs)
	writeGroup(w, "|@", b.validations)
	w.WriteByte('\n')
	writeVariables(w, b.vars)
}

// writeGroup writes " <marker> a b ..." if list is not empty.
func writeGroup(w *strings.Builder, marker string, list []string) {
	if len(list) == 0 {
		return
	}

	w.WriteByte(' ')
	w.WriteString(marker)
	writeList(w, list)
}

// BuildRef is a reference to a build statement inside a [File].
// All methods act on the edge stored in the file, never a copy.
type BuildRef struct{ ref }

// Build returns the referenced build edge.
func (r BuildRef) Build() *Build { return r.statement().asBuild(r.index) }

// With appends explicit inputs.
func (r BuildRef) With(inputs ...string) BuildRef {
	r.Build().With(inputs...)

	return r
}

// WithImplicit appends implicit inputs.
func (r BuildRef) WithImplicit(inputs ...string) BuildRef {
	r.Build().WithImplicit(inputs...)

	return r
}

// WithOrderOnly appends order-only inputs.
func (r BuildRef) WithOrderOnly(inputs ...string) BuildRef {
	r.Build().WithOrderOnly(inputs...)

	return r
}

// Validations appends validation outputs.
func (r BuildRef) Validations(validations ...string) BuildRef {
	r.Build().Validations(validations...)

	return r
}

// OutputImplicit appends implicit outputs.
func (r BuildRef) OutputImplicit(outputs ...string) BuildRef {
	r.Build().OutputImplicit(outputs...)

	return r
}

// Dyndep sets the dyndep file of the edge.
func (r BuildRef) Dyndep(path string) BuildRef {
	r.Build().Dyndep(path)

	return r
}

// Pool runs the edge in the referenced pool.
func (r BuildRef) Pool(p PoolRef) BuildRef {
	r.Build().Pool(p.Pool())

	return r
}

// Variable attaches a variable to the edge.
func (r BuildRef) Variable(name, value string) BuildRef {
	r.Build().Variable(name, value)

	return r
}
