// Package profile wraps [github.com/pkg/profile] so the command line can
// record a runtime profile of a generation run.
//
// Profiling is compiled in only with the pprof build tag:
//
//	go build -tags pprof .
//	ninjagen --pprof-mode cpu gen build.yaml
//	go tool pprof -http=: ~/.cache/ninjagen/pprof/cpu.pprof
//
// Without the tag, [Modes] is empty and [Profiler.Start] does nothing. The
// tagged build also registers the [net/http/pprof] handlers.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
