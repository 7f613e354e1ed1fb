// Package cli contains the command line interface for ninjagen.
//
// # Usage
//
//	ninjagen [flags] [gen] [manifest]
//	ninjagen fmt {ninja|json|yaml} [manifest]
//	ninjagen escape [--policy plain|path|build] text...
//	ninjagen init [--force] [--config] [path]
//	ninjagen view [manifest]
//
// gen is the default command; a missing manifest argument reads standard
// input.
//
// # Configuration
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (e.g. ~/.config/ninjagen). The YAML file is
// documented on [resolve]; `ninjagen init --config` writes one from the
// current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, ms, none, ...)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize log output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o ninjagen .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default ~/.cache/ninjagen/pprof)
package cli
