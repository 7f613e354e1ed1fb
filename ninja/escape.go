package ninja

//go:generate go tool stringer --linecomment --type Policy --output escape_string.go

import (
	"strings"
)

// escapeMarker is the byte ninja uses to escape the byte following it.
const escapeMarker = '$'

// Escape escapes s for use in free text and variable values.
// Only '$' and newlines are escaped.
func Escape(s string) string { return EscapeWith(s, false, false) }

// EscapePath escapes s for use in a list of paths, where a space would
// otherwise separate two items.
func EscapePath(s string) string { return EscapeWith(s, true, false) }

// EscapeBuild escapes s for use as a build output, where ':' terminates the
// output list.
func EscapeBuild(s string) string { return EscapeWith(s, true, true) }

// EscapeWith prefixes the escape marker '$' to every '$' and newline in s,
// and also to every space if space is set, and every ':' if colon is set.
//
// If s contains nothing to escape, s itself is returned and no memory is
// allocated. Bytes of multi-byte UTF-8 sequences are never escaped.
func EscapeWith(s string, space, colon bool) string {
	first := -1

	for i := range len(s) {
		if mustEscape(s[i], space, colon) {
			first = i

			break
		}
	}

	if first < 0 {
		return s
	}

	var b strings.Builder

	b.Grow(len(s) + (len(s)-first)/4 + 1)
	b.WriteString(s[:first])

	for i := first; i < len(s); i++ {
		if mustEscape(s[i], space, colon) {
			b.WriteByte(escapeMarker)
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

func mustEscape(c byte, space, colon bool) bool {
	switch c {
	case escapeMarker, '\n':
		return true
	case ' ':
		return space
	case ':':
		return colon
	default:
		return false
	}
}

// EscapePaths applies [EscapePath] to each path.
// The given slice is returned unmodified if no path needs escaping.
func EscapePaths(paths ...string) []string {
	return PolicyPath.EscapeAll(paths...)
}

// EscapeBuilds applies [EscapeBuild] to each output.
// The given slice is returned unmodified if no output needs escaping.
func EscapeBuilds(outputs ...string) []string {
	return PolicyBuild.EscapeAll(outputs...)
}

// Policy selects which characters are escaped in addition to '$' and
// newlines. [PolicyNone] escapes nothing and passes text through verbatim.
type Policy int

const (
	PolicyPlain Policy = iota // plain
	PolicyPath                // path
	PolicyBuild               // build
	PolicyNone                // none
)

// ParsePolicy returns the Policy named by s, or [PolicyPlain] if s names no
// policy.
func ParsePolicy(s string) Policy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case PolicyPath.String():
		return PolicyPath
	case PolicyBuild.String():
		return PolicyBuild
	case PolicyNone.String():
		return PolicyNone
	default:
		return PolicyPlain
	}
}

// Escape escapes s according to p.
func (p Policy) Escape(s string) string {
	switch p {
	case PolicyPath:
		return EscapePath(s)
	case PolicyBuild:
		return EscapeBuild(s)
	case PolicyNone:
		return s
	default:
		return Escape(s)
	}
}

// EscapeAll escapes each element of v according to p.
// A copy is made only when at least one element changes.
func (p Policy) EscapeAll(v ...string) []string {
	out, copied := v, false

	for i, s := range v {
		e := p.Escape(s)
		if e == s {
			continue
		}

		if !copied {
			out, copied = make([]string, len(v)), true
			copy(out, v)
		}

		out[i] = e
	}

	return out
}
