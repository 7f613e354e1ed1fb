package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testManifest is a small manifest exercising rules, builds and conditions.
const testManifest = `
env:
  arch: amd64
statements:
  - comment: test
  - rule:
      name: cc
      command: cc -c $in -o $out
      builds:
        - { outputs: [main.o], inputs: [main.c] }
        - { outputs: [arm.o], inputs: [arm.c], when: 'arch == "arm64"' }
  - default: [main.o]
`

const testNinja = `
# test

rule cc
  command = cc -c $in -o $out

build main.o: cc main.c

default main.o
`

// testContext returns a context reading stdin from in and capturing stdout.
func testContext(in string) (context.Context, *bytes.Buffer) {
	var out bytes.Buffer

	return WithStdio(context.Background(), strings.NewReader(in), &out), &out
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestOpenSource(t *testing.T) {
	ctx, _ := testContext("from stdin")
	path := writeTemp(t, "in.yaml", "from file")

	for _, tt := range []struct{ source, want string }{
		{"-", "from stdin"},
		{path, "from file"},
	} {
		r, err := openSource(ctx, tt.source)
		if err != nil {
			t.Fatalf("openSource(%q): %v", tt.source, err)
		}

		data, err := io.ReadAll(r)
		r.Close()

		if err != nil {
			t.Fatal(err)
		}

		if got := string(data); got != tt.want {
			t.Errorf("openSource(%q) read %q, want %q", tt.source, got, tt.want)
		}
	}

	_, err := openSource(ctx, filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrReadManifest) {
		t.Errorf("missing source error = %v, want ErrReadManifest", err)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing source error = %v, want os.ErrNotExist cause", err)
	}
}

func TestOpenOutput(t *testing.T) {
	ctx, out := testContext("")

	w, err := openOutput(ctx, "-")
	if err != nil {
		t.Fatal(err)
	}

	io.WriteString(w, "stdout")

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if out.String() != "stdout" {
		t.Errorf("stdout = %q", out.String())
	}

	_, err = openOutput(ctx, filepath.Join(t.TempDir(), "no", "such", "dir", "out"))
	if !errors.Is(err, ErrWriteOutput) {
		t.Errorf("error = %v, want ErrWriteOutput", err)
	}
}

func TestStdioDefault(t *testing.T) {
	s := stdioFrom(context.Background())

	if s.in != os.Stdin || s.out != os.Stdout {
		t.Error("stdioFrom without WithStdio should use os.Stdin and os.Stdout")
	}
}

func TestParseEnv(t *testing.T) {
	got, err := parseEnv(map[string]string{
		"debug": "true",
		"jobs":  "4",
		"arch":  "arm64",
		"empty": "",
		"list":  "[a, b]",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Integer width depends on the decoder.
	if jobs := fmt.Sprint(got["jobs"]); jobs != "4" {
		t.Errorf("jobs = %s, want 4", jobs)
	}

	delete(got, "jobs")

	want := map[string]any{
		"debug": true,
		"arch":  "arm64",
		"empty": "",
		"list":  []any{"a", "b"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseEnv mismatch (-want +got):\n%s", diff)
	}

	if env, err := parseEnv(nil); env != nil || err != nil {
		t.Errorf("parseEnv(nil) = %v, %v", env, err)
	}

	_, err = parseEnv(map[string]string{"bad": "[unclosed"})
	if !errors.Is(err, ErrInvalidEnv) {
		t.Errorf("error = %v, want ErrInvalidEnv", err)
	}
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := ErrWriteOutput.With(slog.String("path", "out.ninja")).Wrap(cause)

	if got, want := err.Error(), "write output: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(err, ErrWriteOutput) || !errors.Is(err, cause) {
		t.Error("wrapped error lost its identity")
	}

	if errors.Is(err, ErrReadManifest) {
		t.Error("error matched an unrelated sentinel")
	}

	attrs := err.LogValue().Group()
	if len(attrs) != 3 || attrs[2].Key != "path" {
		t.Errorf("LogValue attrs = %v", attrs)
	}
}
