package ninja

import (
	"slices"
	"strings"
)

// bindings is the indented variable block shared by rules, build edges and
// pools. Its guard also covers any other list the owning statement keeps.
type bindings struct {
	g    cooperative
	vars []Variable
}

func (b *bindings) bind(name, value string) {
	b.g.lock()
	defer b.g.unlock()

	b.vars = append(b.vars, NewVariable(name, value))
}

// extend appends items to *list under the bindings guard.
func (b *bindings) extend(list *[]string, items []string) {
	b.g.lock()
	defer b.g.unlock()

	*list = append(*list, items...)
}

// Variables returns a copy of the attached variables, in attach order.
func (b *bindings) Variables() []Variable {
	b.g.rlock()
	defer b.g.runlock()

	return slices.Clone(b.vars)
}

// clone returns a copy of list read under the bindings guard.
func (b *bindings) clone(list []string) []string {
	b.g.rlock()
	defer b.g.runlock()

	return slices.Clone(list)
}

// writeBlock writes header, a newline, then every attached variable indented.
func (b *bindings) writeBlock(w *strings.Builder, keyword, name string) {
	b.g.rlock()
	defer b.g.runlock()

	w.WriteString(keyword)
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteByte('\n')
	writeVariables(w, b.vars)
}
