package view

import (
	"strings"

	"github.com/ardnew/ninjagen/ninja"
)

// item is one rendered statement.
type item struct {
	title string
	body  string
	index int
	kind  ninja.Kind
}

// items implements [fuzzy.Source] over statement titles.
type items []item

func (s items) String(i int) string { return s[i].title }

func (s items) Len() int { return len(s) }

// collect renders every visible statement of f.
func collect(f *ninja.File) items {
	var out items

	for i, s := range f.Statements() {
		body := strings.TrimRight(s.String(), "\n")
		if body == "" {
			continue
		}

		title, _, _ := strings.Cut(body, "\n")

		out = append(out, item{
			title: title,
			body:  body,
			index: i,
			kind:  s.Kind(),
		})
	}

	return out
}
