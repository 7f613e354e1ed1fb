package manifest

import (
	"log/slog"
	"reflect"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/zeebo/xxh3"
)

// programs caches compiled conditions keyed by the hash of their source and
// the shape of the environment they were compiled against.
var programs sync.Map

// environment returns the values visible to when expressions: the host os
// and arch, replaced by the manifest env, replaced by overrides.
func environment(base, overrides map[string]any) map[string]any {
	env := make(map[string]any, len(base)+len(overrides)+2)

	env["os"] = runtime.GOOS
	env["arch"] = runtime.GOARCH

	for k, v := range base {
		env[k] = v
	}

	for k, v := range overrides {
		env[k] = v
	}

	return env
}

// signature identifies the names and dynamic types of env.
func signature(env map[string]any) string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	var b strings.Builder

	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(':')
		b.WriteString(resultTypeName(env[k]))
		b.WriteByte(';')
	}

	return b.String()
}

type programKey struct {
	source uint64
	env    uint64
}

// compile returns the boolean program for source, compiling it on first use.
func compile(source string, env map[string]any) (*vm.Program, error) {
	key := programKey{
		source: xxh3.HashString(source),
		env:    xxh3.HashString(signature(env)),
	}

	if p, ok := programs.Load(key); ok {
		return p.(*vm.Program), nil
	}

	program, err := expr.Compile(source, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, ErrCondition.Wrap(err).
			With(slog.String("when", source))
	}

	p, _ := programs.LoadOrStore(key, program)

	return p.(*vm.Program), nil
}

// evaluate reports whether the condition source holds in env.
// An empty condition always holds.
func evaluate(source string, env map[string]any) (bool, error) {
	if strings.TrimSpace(source) == "" {
		return true, nil
	}

	program, err := compile(source, env)
	if err != nil {
		return false, err
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false, ErrCondition.Wrap(err).
			With(slog.String("when", source))
	}

	ok, _ := out.(bool)

	return ok, nil
}

func resultTypeName(value any) string {
	if value == nil {
		return "nil"
	}

	return reflect.TypeOf(value).String()
}
