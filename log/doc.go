// Package log provides a small, immutable front end to [log/slog].
//
// A [Logger] is built once with functional options and never changes:
//
//	l := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"))
//	l.Info("manifest loaded", slog.Int("statements", 12))
//
// [Logger.Wrap] derives a logger with different options and [Logger.With]
// one that adds attributes to every record. The zero Logger discards
// everything, so packages may accept one as an optional dependency.
//
// # Levels
//
// [LevelTrace] sits below [slog.LevelDebug] and is used for per-statement
// diagnostics. Records print level names in upper case.
//
// # Pretty output
//
// [WithPretty] replaces the slog handlers with one that colorizes records
// through lipgloss. Colors are only emitted when the output is a terminal.
//
// # Package-level logger
//
// [Config], [Info], [Warn] and the other package-level functions act on a
// default logger writing to standard error. The command-line interface
// configures it from its logging flags.
package log
