package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by [prettyHandler]. The renderer bound to
// the output decides whether any escape sequences are emitted.
type palette struct {
	key, str, num, time lipgloss.Style
	trace, debug, info  lipgloss.Style
	warn, err, boolean  lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:     fg("8"),
		str:     fg("6"),
		num:     fg("3"),
		time:    fg("4"),
		trace:   fg("5"),
		debug:   fg("4"),
		info:    fg("2").Bold(true),
		warn:    fg("3").Bold(true),
		err:     fg("1").Bold(true),
		boolean: fg("2"),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler writes human-oriented records, either as a single
// key=value line or as an indented JSON-like block.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	style  palette
	attrs  []slog.Attr
	prefix string
	format Format
}

func newPrettyHandler(
	w io.Writer,
	format Format,
	opts *slog.HandlerOptions,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		mu:     &sync.Mutex{},
		w:      w,
		style:  newPalette(w),
		format: format,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = slices.Clip(c.attrs)

	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		c.attrs = append(c.attrs, a)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix += name + "."

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	add := func(groups []string, a slog.Attr) {
		if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
			a = h.opts.ReplaceAttr(groups, a)
		}

		if !a.Equal(slog.Attr{}) {
			fields = append(fields, a)
		}
	}

	if !r.Time.IsZero() {
		add(nil, slog.Time(slog.TimeKey, r.Time))
	}

	add(nil, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			add(nil, slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	add(nil, slog.String(slog.MessageKey, r.Message))

	var groups []string
	if h.prefix != "" {
		groups = strings.Split(strings.TrimSuffix(h.prefix, "."), ".")
	}

	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		a.Key = h.prefix + a.Key
		add(groups, a)

		return true
	})

	var buf bytes.Buffer

	if h.format == FormatJSON {
		h.block(&buf, fields, r.Level)
	} else {
		h.line(&buf, fields, r.Level)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) line(buf *bytes.Buffer, fields []slog.Attr, l slog.Level) {
	for i, a := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		switch a.Key {
		case slog.TimeKey, slog.LevelKey, slog.MessageKey:
			buf.WriteString(h.value(a, l))

		default:
			buf.WriteString(h.style.key.Render(a.Key + "="))
			buf.WriteString(h.value(a, l))
		}
	}

	buf.WriteByte('\n')
}

func (h *prettyHandler) block(buf *bytes.Buffer, fields []slog.Attr, l slog.Level) {
	buf.WriteString("{\n")

	for i, a := range fields {
		buf.WriteString("  ")
		buf.WriteString(h.style.key.Render(strconv.Quote(a.Key)))
		buf.WriteString(": ")
		buf.WriteString(h.value(a, l))

		if i < len(fields)-1 {
			buf.WriteByte(',')
		}

		buf.WriteByte('\n')
	}

	buf.WriteString("}\n")
}

func (h *prettyHandler) value(a slog.Attr, l slog.Level) string {
	v := a.Value.Resolve()

	switch a.Key {
	case slog.LevelKey:
		text := v.String()
		if lv, ok := v.Any().(slog.Level); ok {
			text = Level(lv).label()
		}

		return h.style.level(l).Render(h.quote(text))

	case slog.TimeKey:
		return h.style.time.Render(h.quote(v.String()))
	}

	switch v.Kind() {
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64, slog.KindDuration:
		return h.style.num.Render(v.String())

	case slog.KindBool:
		if v.Bool() {
			return h.style.boolean.Render("true")
		}

		return h.style.err.Render("false")

	case slog.KindTime:
		return h.style.time.Render(h.quote(v.Time().Format(time.RFC3339)))

	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))
		for _, g := range v.Group() {
			parts = append(parts, g.Key+"="+h.value(g, l))
		}

		return "{" + strings.Join(parts, " ") + "}"

	default:
		s := v.String()
		if v.Kind() == slog.KindAny {
			if err, ok := v.Any().(error); ok {
				s = err.Error()
			} else {
				s = fmt.Sprint(v.Any())
			}
		}

		return h.style.str.Render(h.quote(s))
	}
}

func (h *prettyHandler) quote(s string) string {
	if h.format == FormatJSON {
		return strconv.Quote(s)
	}

	return s
}
