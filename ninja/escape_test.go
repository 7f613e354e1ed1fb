package ninja

import (
	"strings"
	"testing"
	"unsafe"
)

func TestEscape_Policies(t *testing.T) {
	tests := []struct {
		name  string
		input string
		plain string
		path  string
		build string
	}{
		{"empty", "", "", "", ""},
		{"safe", "foo.o", "foo.o", "foo.o", "foo.o"},
		{"dollar", "$foo", "$$foo", "$$foo", "$$foo"},
		{"space", "foo bar", "foo bar", "foo$ bar", "foo$ bar"},
		{"colon space", "foo: bar", "foo: bar", "foo:$ bar", "foo$:$ bar"},
		{"newline", "a\nb", "a$\nb", "a$\nb", "a$\nb"},
		{"only escapable", "$ :\n", "$$ :$\n", "$$$ :$\n", "$$$ $:$\n"},
		{"non-ascii", "héllo wörld:", "héllo wörld:", "héllo$ wörld:", "héllo$ wörld$:"},
		{"c:\\path", "c:\\my dir", "c:\\my dir", "c:\\my$ dir", "c$:\\my$ dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.input); got != tt.plain {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.plain)
			}

			if got := EscapePath(tt.input); got != tt.path {
				t.Errorf("EscapePath(%q) = %q, want %q", tt.input, got, tt.path)
			}

			if got := EscapeBuild(tt.input); got != tt.build {
				t.Errorf("EscapeBuild(%q) = %q, want %q", tt.input, got, tt.build)
			}
		})
	}
}

func TestEscape_SafeInputIsNotCopied(t *testing.T) {
	inputs := []string{"foo", "path/to/file.c", "héllo", "a=b,c"}

	for _, s := range inputs {
		got := EscapeBuild(s)
		if unsafe.StringData(got) != unsafe.StringData(s) {
			t.Errorf("EscapeBuild(%q) returned a copy", s)
		}
	}

	allocs := testing.AllocsPerRun(100, func() {
		_ = EscapeBuild("path/to/some/file.o")
	})
	if allocs != 0 {
		t.Errorf("expected no allocations for safe input, got %v", allocs)
	}
}

// unescape drops every marker that precedes an escapable byte.
func unescape(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] == '$' && i+1 < len(s) && strings.IndexByte("$\n :", s[i+1]) >= 0 {
			i++
		}

		b.WriteByte(s[i])
	}

	return b.String()
}

func TestEscape_RoundTrip(t *testing.T) {
	inputs := []string{
		"", "$", "$$", "a b", "x:y", "$in $out", "multi\nline: $x y",
		"  leading", "trailing: ", "ünïcode $ : \n",
	}

	for _, s := range inputs {
		for _, p := range []Policy{PolicyPlain, PolicyPath, PolicyBuild} {
			if got := unescape(p.Escape(s)); got != s {
				t.Errorf("%s: unescape(escape(%q)) = %q", p, s, got)
			}
		}
	}
}

func TestEscape_PolicyMonotonic(t *testing.T) {
	inputs := []string{"a b", "a:b", "$x", "a: b\n$c", "plain"}

	count := func(s string) int { return strings.Count(s, "$") }

	for _, s := range inputs {
		plain, path, build := count(Escape(s)), count(EscapePath(s)), count(EscapeBuild(s))
		if plain > path || path > build {
			t.Errorf("%q: markers plain=%d path=%d build=%d", s, plain, path, build)
		}
	}
}

func TestPolicy_None(t *testing.T) {
	in := []string{"$builddir/foo.o", "a b", "x:y", "multi\nline"}

	for _, s := range in {
		if got := PolicyNone.Escape(s); got != s {
			t.Errorf("PolicyNone.Escape(%q) = %q", s, got)
		}
	}

	out := PolicyNone.EscapeAll(in...)
	if &out[0] != &in[0] {
		t.Error("PolicyNone.EscapeAll copied its input")
	}
}

func TestPolicy_Parse(t *testing.T) {
	tests := []struct {
		input string
		want  Policy
	}{
		{"plain", PolicyPlain},
		{"PATH", PolicyPath},
		{" build ", PolicyBuild},
		{"None", PolicyNone},
		{"bogus", PolicyPlain},
		{"", PolicyPlain},
	}

	for _, tt := range tests {
		if got := ParsePolicy(tt.input); got != tt.want {
			t.Errorf("ParsePolicy(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEscapePaths(t *testing.T) {
	safe := []string{"a.c", "b.c"}
	if got := EscapePaths(safe...); &got[0] != &safe[0] {
		t.Error("expected safe slice to be returned as is")
	}

	mixed := []string{"a.c", "my file.c"}

	got := EscapePaths(mixed...)
	if got[1] != "my$ file.c" {
		t.Errorf("expected escaped path, got %q", got[1])
	}

	if mixed[1] != "my file.c" {
		t.Error("input slice was modified")
	}

	if got := EscapeBuilds("out:1"); got[0] != "out$:1" {
		t.Errorf("expected escaped output, got %q", got[0])
	}

	if got := EscapePaths(); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
