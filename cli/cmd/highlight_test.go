package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const highlightInput = `# comment
cflags = -O2

rule cc
  command = cc $cflags -c $in -o $out

build a$:b.o | gen.h: cc a.c || order |@ check
default a$:b.o
`

func TestHighlight_Plain(t *testing.T) {
	var buf bytes.Buffer

	if err := highlight(&buf, highlightInput); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != highlightInput {
		t.Errorf("highlight without color changed text:\n%q\nwant\n%q", got, highlightInput)
	}
}

func TestHighlight_Color(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)

	p := palette{
		comment: r.NewStyle().Foreground(lipgloss.Color("8")),
		keyword: r.NewStyle().Bold(true),
		name:    r.NewStyle().Foreground(lipgloss.Color("2")),
		key:     r.NewStyle().Foreground(lipgloss.Color("3")),
		op:      r.NewStyle().Foreground(lipgloss.Color("6")),
	}

	tests := []struct {
		line string
		want []string
	}{
		{"# comment", []string{p.comment.Render("# comment")}},
		{"rule cc", []string{p.keyword.Render("rule"), p.name.Render("cc")}},
		{"  command = cc", []string{p.key.Render("command"), p.op.Render("=")}},
		{"build a$:b: cc x | y", []string{"a$:b" + p.op.Render(":"), p.name.Render("cc"), p.op.Render("|")}},
		{"v = 1", []string{p.key.Render("v")}},
	}

	for _, tt := range tests {
		got := p.line(tt.line)

		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("line(%q) = %q, missing %q", tt.line, got, w)
			}
		}

		if got == tt.line {
			t.Errorf("line(%q) was not colored", tt.line)
		}
	}
}

func TestHighlight_KeywordBinding(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI)

	p := palette{
		keyword: r.NewStyle().Bold(true),
		name:    r.NewStyle().Foreground(lipgloss.Color("2")),
		key:     r.NewStyle().Foreground(lipgloss.Color("3")),
		op:      r.NewStyle().Foreground(lipgloss.Color("6")),
	}

	for _, kw := range keywords {
		line := kw + " = x"
		got := p.line(line)

		if want := p.key.Render(kw) + " " + p.op.Render("=") + " x"; got != want {
			t.Errorf("line(%q) = %q, want %q", line, got, want)
		}

		if strings.Contains(got, p.keyword.Render(kw)) {
			t.Errorf("line(%q) colored as a keyword: %q", line, got)
		}
	}
}

func TestCutUnescaped(t *testing.T) {
	tests := []struct {
		in, before, after string
		found             bool
	}{
		{"a: b", "a", "b", true},
		{"a$: b: c", "a$: b", "c", true},
		{"a$$: b", "a$$", "b", true},
		{"none", "none", "", false},
	}

	for _, tt := range tests {
		before, after, found := cutUnescaped(tt.in, ": ")
		if before != tt.before || after != tt.after || found != tt.found {
			t.Errorf("cutUnescaped(%q) = %q, %q, %v", tt.in, before, after, found)
		}
	}
}
