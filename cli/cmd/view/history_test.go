package view

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func entries(h *History) []string {
	out := make([]string, h.Len())
	for i := range out {
		out[i] = h.At(i)
	}

	return out
}

func TestHistory_Add(t *testing.T) {
	h := NewHistory("")

	for _, q := range []string{"cc", "  ", "link", "cc", ""} {
		h.Add(q)
	}

	if diff := cmp.Diff([]string{"link", "cc"}, entries(h)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	if got := h.At(5); got != "" {
		t.Errorf("At(5) = %q, want empty", got)
	}
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory("")

	for i := range maxHistory + 10 {
		h.Add("q" + strconv.Itoa(i))
	}

	if got := h.Len(); got != maxHistory {
		t.Fatalf("Len = %d, want %d", got, maxHistory)
	}

	if got := h.At(0); got != "q10" {
		t.Errorf("oldest = %q, want %q", got, "q10")
	}
}

func TestHistory_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", HistoryFile)

	// Missing file loads as empty.
	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("Load missing: %v", err)
	}

	h.Add("rule cc")
	h.Add("build app")

	if err := h.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := string(data), "rule cc\nbuild app\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	loaded := NewHistory(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff(entries(h), entries(loaded)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
