// Package manifest turns a declarative YAML description of a ninja file into
// a [ninja.File].
//
// A manifest lists statements in output order:
//
//	env: { debug: true }
//	statements:
//	  - variable: { name: cflags, value: -O2 }
//	  - rule:
//	      name: cc
//	      command: cc $cflags -c $in -o $out
//	      builds:
//	        - { outputs: [a.o], inputs: [a.c] }
//	  - default: [a.o]
//	    when: os != "windows"
//
// # Conditions
//
// Any entry, and any build nested under a rule, may carry a when expression
// written in expr-lang. It sees the manifest env, values passed with
// [WithEnv], and the host's os and arch. Entries whose condition is false
// are skipped. Compiled conditions are cached for the life of the process.
//
// # References
//
// Builds must name a rule declared earlier in the manifest (or phony), and
// rules and builds must name a declared pool (or console). An unknown name
// yields [ErrUnknownRule] or [ErrUnknownPool] carrying a suggestion when a
// declared name is similar.
//
// # Escaping
//
// Unless disabled, outputs are escaped with [ninja.EscapeBuild] and inputs
// and other paths with [ninja.EscapePath]. Variable values and rule commands
// are ninja expressions and are never escaped.
package manifest
