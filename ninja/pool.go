package ninja

import (
	"strconv"
	"strings"
)

// consolePoolName is the name of ninja's built-in console pool.
const consolePoolName = "console"

// Pool limits how many edges assigned to it run at once.
// The first variable of a pool made by [NewPool] is always depth.
type Pool struct {
	name    string
	builtin bool // never rendered
	bindings
}

// NewPool returns a pool named name allowing depth concurrent jobs.
func NewPool(name string, depth int) *Pool {
	p := &Pool{name: name}

	return p.Variable("depth", strconv.Itoa(depth))
}

// ConsolePool returns ninja's built-in console pool. Rules and edges can be
// assigned to it, but it is never declared: it renders as nothing, even when
// added to a [File].
func ConsolePool() *Pool {
	return &Pool{name: consolePoolName, builtin: true}
}

// Name returns the pool name.
func (p *Pool) Name() string { return p.name }

// Builtin reports whether the pool is predefined by ninja.
func (p *Pool) Builtin() bool { return p.builtin }

// AddTo appends p to f and returns a reference to the new statement.
func (p *Pool) AddTo(f *File) PoolRef { return f.AddPool(p) }

// Variable attaches a variable to the pool.
func (p *Pool) Variable(name, value string) *Pool {
	p.bind(name, value)

	return p
}

// String renders the pool block, or nothing for a built-in pool.
func (p *Pool) String() string {
	var b strings.Builder

	p.write(&b)

	return b.String()
}

func (p *Pool) write(b *strings.Builder) {
	if p.builtin {
		return
	}

	p.writeBlock(b, "pool", p.name)
}

// PoolRef is a reference to a pool statement inside a [File].
type PoolRef struct{ ref }

// Pool returns the referenced pool.
func (r PoolRef) Pool() *Pool { return r.statement().asPool(r.index) }

// Name returns the pool name.
func (r PoolRef) Name() string { return r.Pool().name }

// Variable attaches a variable to the pool.
func (r PoolRef) Variable(name, value string) PoolRef {
	r.Pool().Variable(name, value)

	return r
}

// Rule appends a new rule assigned to this pool to the file holding the
// pool.
func (r PoolRef) Rule(name, command string) RuleRef {
	rule := NewRule(name, command).Pool(r.Pool())

	return RuleRef{ref{
		list:  r.list,
		index: r.list.add(&Statement{kind: KindRule, rule: rule}),
	}}
}
