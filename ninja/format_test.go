package ninja

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func sampleFile() *File {
	f := New()
	f.Comment("sample")
	f.Variable("cflags", "-O2")
	f.Pool("link", 1)
	cc := f.Rule("cc", "gcc $cflags -c $in -o $out").DepsGCC()
	cc.Build("a.o").With("a.c").WithImplicit("a.h").WithOrderOnly("gen").
		Validations("lint").OutputImplicit("a.d").Variable("cflags", "-O0")
	f.Defaults("a.o")
	f.Include("extra.ninja")
	f.Subninja("sub.ninja")

	return f
}

func TestFile_WriteTo(t *testing.T) {
	f := sampleFile()

	var buf bytes.Buffer

	n, err := f.WriteTo(&buf)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}

	if int(n) != buf.Len() || buf.String() != f.String() {
		t.Errorf("WriteTo wrote %d bytes, want %q", n, f.String())
	}

	buf.Reset()

	if err := f.Format(context.Background(), &buf); err != nil {
		t.Fatalf("format error: %v", err)
	}

	if buf.String() != f.String() {
		t.Errorf("Format mismatch:\nwant: %q\ngot:  %q", f.String(), buf.String())
	}
}

func TestFile_FormatJSON(t *testing.T) {
	f := sampleFile()

	var buf bytes.Buffer
	if err := f.FormatJSON(context.Background(), &buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	var got []record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	kinds := make([]string, len(got))
	for i, r := range got {
		kinds[i] = r.Kind
	}

	want := []string{"comment", "variable", "pool", "rule", "build", "default", "include", "subninja"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	build := got[4]

	wantBuild := record{
		Kind:            "build",
		Rule:            "cc",
		Outputs:         []string{"a.o"},
		ImplicitOutputs: []string{"a.d"},
		Inputs:          []string{"a.c"},
		Implicit:        []string{"a.h"},
		OrderOnly:       []string{"gen"},
		Validations:     []string{"lint"},
		Variables:       []Variable{{Name: "cflags", Value: "-O0"}},
	}
	if diff := cmp.Diff(wantBuild, build); diff != "" {
		t.Errorf("build record mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()

	if err := f.FormatJSON(context.Background(), &buf, 0); err != nil {
		t.Fatalf("format error: %v", err)
	}

	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected compact JSON on one line, got:\n%s", buf.String())
	}
}

func TestFile_FormatYAML(t *testing.T) {
	f := sampleFile()

	var buf bytes.Buffer
	if err := f.FormatYAML(context.Background(), &buf, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	var got []record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}

	if len(got) != f.Len() {
		t.Fatalf("expected %d records, got %d", f.Len(), len(got))
	}

	if got[2].Name != "link" || got[2].Variables[0] != NewVariable("depth", "1") {
		t.Errorf("unexpected pool record %+v", got[2])
	}

	if got[1].Name != "cflags" || got[1].Value != "-O2" {
		t.Errorf("unexpected variable record %+v", got[1])
	}
}
