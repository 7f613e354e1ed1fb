package view

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/ninjagen/log"
	"github.com/ardnew/ninjagen/ninja"
)

const (
	prompt        = "filter> "
	defaultWidth  = 80
	defaultHeight = 24
	// chrome is the number of rows used by the input and status lines.
	chrome = 2
)

// model is the Bubble Tea model of the statement browser.
type model struct {
	ctxFunc  func() context.Context
	logger   log.Logger
	history  *History
	input    textinput.Model
	items    items
	matches  fuzzy.Matches
	cursor   int // index into matches
	offset   int // first visible match
	histIdx  int
	width    int
	height   int
	detail   bool
	quitting bool
}

// Run browses the statements of f until the user quits.
// Filter queries are saved to history when it is not nil.
func Run(
	ctx context.Context,
	f *ninja.File,
	history *History,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if history == nil {
		history = NewHistory("")
	}

	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load view history", slog.Any("error", err))
	}

	m := newModel(ctx, f, history, logger)

	logger.TraceContext(ctx, "view start",
		slog.Int("statements", len(m.items)),
		slog.Int("history", history.Len()),
	)

	// The manifest may have come from stdin, so keys are read from the terminal.
	_, err = tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithInputTTY(),
	).Run()
	if err != nil {
		return err
	}

	return history.Save()
}

func newModel(
	ctx context.Context,
	f *ninja.File,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "type to filter statements"
	ti.CharLimit = 256
	ti.Width = defaultWidth - len(prompt) - 1
	ti.Focus()

	m := model{
		ctxFunc: func() context.Context { return ctx },
		logger:  logger,
		history: history,
		input:   ti,
		items:   collect(f),
		histIdx: history.Len(),
		width:   defaultWidth,
		height:  defaultHeight,
	}

	return m.filter()
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-len(prompt)-1, 1)

		return m.scroll(), nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEsc:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")

		return m.filter(), nil

	case tea.KeyUp, tea.KeyCtrlK:
		return m.move(-1), nil

	case tea.KeyDown, tea.KeyCtrlJ:
		return m.move(1), nil

	case tea.KeyPgUp:
		return m.move(-m.rows()), nil

	case tea.KeyPgDown:
		return m.move(m.rows()), nil

	case tea.KeyTab:
		m.detail = !m.detail

		return m.scroll(), nil

	case tea.KeyEnter:
		m.history.Add(m.input.Value())
		m.histIdx = m.history.Len()
		m.detail = true

		return m.scroll(), nil

	case tea.KeyCtrlP:
		return m.recall(-1), nil

	case tea.KeyCtrlN:
		return m.recall(1), nil
	}

	query := m.input.Value()

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != query {
		m = m.filter()
	}

	return m, cmd
}

// filter recomputes matches for the current query and resets the cursor.
func (m model) filter() model {
	query := strings.TrimSpace(m.input.Value())

	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.items))
		for i, it := range m.items {
			m.matches[i] = fuzzy.Match{Str: it.title, Index: i}
		}
	} else {
		m.matches = fuzzy.FindFrom(query, m.items)
	}

	m.cursor, m.offset = 0, 0

	m.logger.TraceContext(m.ctxFunc(), "view filter",
		slog.String("query", query),
		slog.Int("matches", len(m.matches)),
	)

	return m
}

// recall replaces the query with a history entry, moving by delta.
func (m model) recall(delta int) model {
	n := m.history.Len()
	if n == 0 {
		return m
	}

	m.histIdx = min(max(m.histIdx+delta, 0), n)

	m.input.SetValue(m.history.At(m.histIdx))
	m.input.CursorEnd()

	return m.filter()
}

// move shifts the cursor by delta within the matches.
func (m model) move(delta int) model {
	if len(m.matches) == 0 {
		return m
	}

	m.cursor = min(max(m.cursor+delta, 0), len(m.matches)-1)

	return m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m model) scroll() model {
	rows := m.rows()

	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}

	return m
}

// rows returns the number of list rows that fit on screen.
func (m model) rows() int {
	rows := m.height - chrome
	if m.detail {
		if it, ok := m.selected(); ok {
			rows -= strings.Count(it.body, "\n") + 2
		}
	}

	return max(rows, 1)
}

func (m model) selected() (item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return item{}, false
	}

	return m.items[m.matches[m.cursor].Index], true
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteByte('\n')

	b.WriteString(hintStyle.Render(fmt.Sprintf(
		"%d/%d statements  ↑/↓ move  tab details  ctrl+p/n history  esc quit",
		len(m.matches), len(m.items),
	)))
	b.WriteByte('\n')

	end := min(m.offset+m.rows(), len(m.matches))
	for i := m.offset; i < end; i++ {
		match := m.matches[i]
		b.WriteString(renderMatch(m.items[match.Index], match, i == m.cursor))
		b.WriteByte('\n')
	}

	if it, ok := m.selected(); ok && m.detail {
		b.WriteString(detailStyle.Width(max(m.width, 1)).Render(it.body))
		b.WriteByte('\n')
	}

	return b.String()
}
