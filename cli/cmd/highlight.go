package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette styles the parts of a ninja file.
type palette struct {
	comment, keyword, name, key, op lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		comment: r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		keyword: r.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		name:    r.NewStyle().Foreground(lipgloss.Color("2")),
		key:     r.NewStyle().Foreground(lipgloss.Color("3")),
		op:      r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

var keywords = []string{
	"build", "default", "include", "pool", "rule", "subninja",
}

// highlight writes text to w with ninja syntax colored for the terminal
// behind w. Without color support the text is written unchanged.
func highlight(w io.Writer, text string) error {
	p := newPalette(w)

	var b strings.Builder

	for line := range strings.SplitAfterSeq(text, "\n") {
		body := strings.TrimSuffix(line, "\n")
		b.WriteString(p.line(body))

		if len(body) < len(line) {
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (p palette) line(s string) string {
	switch {
	case s == "":
		return s

	case strings.HasPrefix(s, "#"):
		return p.comment.Render(s)

	case strings.HasPrefix(s, "  "):
		return "  " + p.binding(s[2:])
	}

	word, rest, _ := strings.Cut(s, " ")
	if strings.HasPrefix(rest, "= ") {
		return p.binding(s)
	}

	for _, kw := range keywords {
		if word != kw {
			continue
		}

		if kw == "build" {
			return p.keyword.Render(word) + " " + p.build(rest)
		}

		return p.keyword.Render(word) + " " + p.name.Render(rest)
	}

	return p.binding(s)
}

// binding colors "key = value".
func (p palette) binding(s string) string {
	key, value, ok := strings.Cut(s, " = ")
	if !ok {
		return s
	}

	return p.key.Render(key) + " " + p.op.Render("=") + " " + value
}

// build colors the dependency markers and rule name of a build header.
func (p palette) build(s string) string {
	outputs, inputs, ok := cutUnescaped(s, ": ")
	if !ok {
		return s
	}

	rule, deps, _ := strings.Cut(inputs, " ")

	fields := strings.Fields(deps)
	for i, f := range fields {
		switch f {
		case "|", "||", "|@":
			fields[i] = p.op.Render(f)
		}
	}

	out := outputs + p.op.Render(":") + " " + p.name.Render(rule)
	if len(fields) > 0 {
		out += " " + strings.Join(fields, " ")
	}

	return out
}

// cutUnescaped is strings.Cut skipping separators preceded by "$".
func cutUnescaped(s, sep string) (before, after string, found bool) {
	for i := 0; i+len(sep) <= len(s); i++ {
		if s[i] == '$' {
			i++

			continue
		}

		if strings.HasPrefix(s[i:], sep) {
			return s[:i], s[i+len(sep):], true
		}
	}

	return s, "", false
}
