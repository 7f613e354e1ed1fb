package cli

import (
	"testing"

	"github.com/ardnew/ninjagen/log"
)

func TestLogConfigScan(t *testing.T) {
	defer log.SetDefault(log.Default())

	tests := []struct {
		name   string
		args   []string
		level  logLevel
		format logFormat
		caller bool
		pretty bool
	}{
		{
			name:   "none",
			args:   []string{"gen", "build.yaml"},
			pretty: true,
		},
		{
			name:   "separate_values",
			args:   []string{"gen", "--log-level", "debug", "--log-format", "json"},
			level:  "debug",
			format: "json",
			pretty: true,
		},
		{
			name:   "assigned_values",
			args:   []string{"--log-level=trace", "--log-caller", "--no-log-pretty", "gen"},
			level:  "trace",
			caller: true,
		},
		{
			name:   "explicit_booleans",
			args:   []string{"--log-caller=false", "--no-log-pretty=false"},
			pretty: true,
		},
		{
			name:   "stop_at_terminator",
			args:   []string{"escape", "--", "--log-level=debug"},
			pretty: true,
		},
		{
			name:   "value_is_flag",
			args:   []string{"--log-level", "--log-caller"},
			caller: true,
			pretty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f.Level != tt.level || f.Format != tt.format ||
				f.Caller != tt.caller || f.Pretty != tt.pretty {
				t.Errorf("scan(%q) = %+v", tt.args, f)
			}
		})
	}
}

func TestLogConfigScan_ConfiguresDefault(t *testing.T) {
	defer log.SetDefault(log.Default())

	f := logConfig{}
	f.scan([]string{"--log-level=error", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelError {
		t.Errorf("default level = %v, want %v", got, log.LevelError)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("default format = %v, want %v", got, log.FormatJSON)
	}
}

func TestLogConfigVars(t *testing.T) {
	vars := (&logConfig{}).vars()

	want := map[string]string{
		"logLevel":      "warn",
		"logLevelEnum":  "trace,debug,info,warn,error",
		"logFormat":     "text",
		"logFormatEnum": "text,json",
	}

	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%q] = %q, want %q", k, vars[k], v)
		}
	}
}
