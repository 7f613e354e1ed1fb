package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestFmtNinja(t *testing.T) {
	ctx, out := testContext(testManifest)

	if err := (&Ninja{Source: "-"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(testNinja, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

type fmtRecord struct {
	Kind    string   `json:"kind"    yaml:"kind"`
	Name    string   `json:"name"    yaml:"name"`
	Rule    string   `json:"rule"    yaml:"rule"`
	Outputs []string `json:"outputs" yaml:"outputs"`
}

func kinds(records []fmtRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Kind
	}

	return out
}

func TestFmtJSON(t *testing.T) {
	for _, indent := range []int{0, 2} {
		ctx, out := testContext(testManifest)

		if err := (&JSON{Indent: indent, Source: "-"}).Run(ctx); err != nil {
			t.Fatal(err)
		}

		var records []fmtRecord
		if err := json.Unmarshal(out.Bytes(), &records); err != nil {
			t.Fatalf("indent %d: %v\n%s", indent, err, out.String())
		}

		want := []string{"comment", "rule", "build", "default"}
		if diff := cmp.Diff(want, kinds(records)); diff != "" {
			t.Errorf("indent %d kinds mismatch (-want +got):\n%s", indent, diff)
		}

		if lines := strings.Count(out.String(), "\n"); indent == 0 && lines != 1 {
			t.Errorf("compact JSON spans %d lines", lines)
		}
	}
}

func TestFmtYAML(t *testing.T) {
	ctx, out := testContext(testManifest)

	if err := (&YAML{Indent: 2, Source: "-"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var records []fmtRecord
	if err := yaml.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("%v\n%s", err, out.String())
	}

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	want := fmtRecord{Kind: "build", Rule: "cc", Outputs: []string{"main.o"}}
	if diff := cmp.Diff(want, records[2]); diff != "" {
		t.Errorf("build record mismatch (-want +got):\n%s", diff)
	}
}

func TestFmtError(t *testing.T) {
	ctx, _ := testContext("statements:\n  - bogus: 1\n")

	if err := (&Ninja{Source: "-"}).Run(ctx); err == nil {
		t.Error("expected error for unknown statement key")
	}
}
