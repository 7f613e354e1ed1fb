package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefault_PackageFunctions(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	var buf bytes.Buffer

	SetDefault(Make(&buf, WithFormat(FormatJSON)))
	Config(WithLevel(LevelTrace))

	tests := []struct {
		name  string
		log   func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log("message", slog.String("key", "value"))

			rec := decode(t, buf.Bytes())
			if rec["level"] != tt.level || rec["key"] != "value" {
				t.Errorf("unexpected record %v", rec)
			}
		})
	}

	buf.Reset()
	With(slog.String("cmd", "gen")).Info("run")

	if !strings.Contains(buf.String(), `"cmd":"gen"`) {
		t.Errorf("expected attribute from With, got %s", buf.String())
	}
}
