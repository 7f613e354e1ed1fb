package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/ninjagen/ninja"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("8"))
)

var kindStyle = map[ninja.Kind]lipgloss.Style{
	ninja.KindComment:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	ninja.KindRule:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ninja.KindBuild:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ninja.KindVariable: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ninja.KindDefault:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ninja.KindSubninja: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ninja.KindInclude:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ninja.KindPool:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// kindWidth is the width of the widest kind label.
var kindWidth = func() int {
	w := 0
	for _, k := range ninja.Kinds() {
		w = max(w, len(k.String()))
	}

	return w
}()

// renderMatch renders one list row: the kind label followed by the title
// with fuzzy-matched characters highlighted.
func renderMatch(it item, m fuzzy.Match, selected bool) string {
	label := kindStyle[it.kind].Render(padRight(it.kind.String(), kindWidth))

	base, hl := lipgloss.NewStyle(), matchStyle
	if selected {
		base = selectedStyle
		hl = selectedStyle.Bold(true)
	}

	matched := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		matched[i] = true
	}

	var b strings.Builder

	for i, r := range it.title {
		if matched[i] {
			b.WriteString(hl.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return label + " " + b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}

	return s + strings.Repeat(" ", n-len(s))
}
