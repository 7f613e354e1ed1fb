package manifest

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/ardnew/ninjagen/ninja"
)

const (
	phonyRule   = "phony"
	consolePool = "console"
)

// generator carries the state of one [Manifest.File] call.
type generator struct {
	config

	file  *ninja.File
	vars  map[string]any
	rules map[string]ninja.RuleRef
	pools map[string]ninja.PoolRef
	path  ninja.Policy
	out   ninja.Policy
}

// File generates the ninja file described by m. Entries whose when
// condition is false are skipped, along with anything nested in them.
func (m *Manifest) File(ctx context.Context, opts ...Option) (*ninja.File, error) {
	cfg := apply(config{mode: ninja.DefaultMode}, opts...)

	escape := m.Escape == nil || *m.Escape
	if cfg.escape != nil {
		escape = *cfg.escape
	}

	g := generator{
		config: cfg,
		file:   ninja.New(ninja.WithMode(cfg.mode), ninja.WithLogger(cfg.logger)),
		vars:   environment(m.Env, cfg.env),
		rules:  make(map[string]ninja.RuleRef),
		pools:  make(map[string]ninja.PoolRef),
		path:   ninja.PolicyNone,
		out:    ninja.PolicyNone,
	}

	if escape {
		g.path, g.out = ninja.PolicyPath, ninja.PolicyBuild
	}

	for i := range m.Statements {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := g.entry(ctx, i, &m.Statements[i]); err != nil {
			return nil, WrapError(err).With(slog.Int("entry", i))
		}
	}

	g.logger.DebugContext(ctx, "manifest generated",
		slog.Int("entries", len(m.Statements)),
		slog.Int("statements", g.file.Len()),
		slog.Bool("escape", escape),
	)

	return g.file, nil
}

func (g *generator) entry(ctx context.Context, index int, e *Entry) error {
	key, n := e.key()
	if n != 1 {
		return ErrInvalidEntry.With(slog.Int("keys", n))
	}

	ok, err := evaluate(e.When, g.vars)
	if err != nil {
		return err
	}

	if !ok {
		g.logger.TraceContext(ctx, "entry skipped",
			slog.Int("entry", index),
			slog.String("kind", key),
			slog.String("when", e.When),
		)

		return nil
	}

	switch {
	case e.Comment != nil:
		g.file.Comment(*e.Comment)

	case e.Variable != nil:
		g.file.Variable(e.Variable.Name, e.Variable.Value)

	case e.Pool != nil:
		return g.pool(e.Pool)

	case e.Rule != nil:
		return g.rule(e.Rule)

	case e.Build != nil:
		return g.build(e.Build)

	case e.Phony != nil:
		return g.phony(e.Phony)

	case e.Default != nil:
		g.file.Defaults(g.path.EscapeAll(*e.Default...)...)

	case e.Subninja != nil:
		g.file.Subninja(g.path.Escape(*e.Subninja))

	case e.Include != nil:
		g.file.Include(g.path.Escape(*e.Include))
	}

	return nil
}

func (g *generator) pool(p *Pool) error {
	if p.Name == "" {
		return ErrInvalidEntry.With(slog.String("pool", "missing name"))
	}

	if _, dup := g.pools[p.Name]; dup || p.Name == consolePool {
		return ErrDuplicate.With(slog.String("pool", p.Name))
	}

	ref := g.file.Pool(p.Name, p.Depth)
	for _, v := range p.Variables {
		ref.Variable(v.Name, v.Value)
	}

	g.pools[p.Name] = ref

	return nil
}

func (g *generator) rule(r *Rule) error {
	if r.Name == "" {
		return ErrInvalidEntry.With(slog.String("rule", "missing name"))
	}

	if _, dup := g.rules[r.Name]; dup || r.Name == phonyRule {
		return ErrDuplicate.With(slog.String("rule", r.Name))
	}

	rule := ninja.NewRule(r.Name, r.Command)

	if r.Description != "" {
		rule.Description(r.Description)
	}

	if r.Depfile != "" {
		rule.Depfile(r.Depfile)
	}

	switch r.Deps {
	case "":
	case "gcc":
		rule.DepsGCC()
	case "msvc":
		if r.MSVCDepsPrefix != "" {
			rule.DepsMSVCPrefix(r.MSVCDepsPrefix)
		} else {
			rule.DepsMSVC()
		}
	default:
		return ErrInvalidEntry.With(
			slog.String("rule", r.Name),
			slog.String("deps", r.Deps),
		)
	}

	if r.MSVCDepsPrefix != "" && r.Deps != "msvc" {
		return ErrInvalidEntry.With(
			slog.String("rule", r.Name),
			slog.String("msvc_deps_prefix", "requires deps: msvc"),
		)
	}

	if r.Generator {
		rule.Generator()
	}

	if r.Restat {
		rule.Restat()
	}

	if r.Rspfile != "" || r.RspfileContent != "" {
		rule.Rspfile(r.Rspfile, r.RspfileContent)
	}

	if r.InNewline != "" {
		rule.InNewline(r.InNewline)
	}

	switch pool, err := g.lookupPool(r.Pool); {
	case err != nil:
		return WrapError(err).With(slog.String("rule", r.Name))
	case r.Pool == consolePool:
		rule.PoolConsole()
	case pool != nil:
		rule.Pool(pool.Pool())
	}

	for _, v := range r.Variables {
		rule.Variable(v.Name, v.Value)
	}

	ref := g.file.AddRule(rule)
	g.rules[r.Name] = ref

	for i := range r.Builds {
		b := &r.Builds[i]

		ok, err := evaluate(b.When, g.vars)
		if err != nil {
			return WrapError(err).With(slog.Int("build", i))
		}

		if !ok {
			continue
		}

		if len(b.Outputs) == 0 {
			return ErrInvalidEntry.With(slog.Int("build", i), slog.String("outputs", "none"))
		}

		if err := g.attach(ref.Build(g.out.EscapeAll(b.Outputs...)...), b); err != nil {
			return WrapError(err).With(slog.Int("build", i))
		}
	}

	return nil
}

func (g *generator) build(b *Build) error {
	ok, err := evaluate(b.When, g.vars)
	if err != nil || !ok {
		return err
	}

	if b.Rule == phonyRule {
		return g.phony(b)
	}

	if len(b.Outputs) == 0 {
		return ErrInvalidEntry.With(slog.String("outputs", "none"))
	}

	ref, found := g.rules[b.Rule]
	if !found {
		return unknown(ErrUnknownRule, "rule", b.Rule, slices.Collect(maps.Keys(g.rules)))
	}

	return g.attach(ref.Build(g.out.EscapeAll(b.Outputs...)...), b)
}

func (g *generator) phony(b *Build) error {
	ok, err := evaluate(b.When, g.vars)
	if err != nil || !ok {
		return err
	}

	if len(b.Outputs) == 0 {
		return ErrInvalidEntry.With(slog.String("outputs", "none"))
	}

	return g.attach(g.file.Phony(g.out.EscapeAll(b.Outputs...)...), b)
}

// attach copies the dependency lists and bindings of b onto ref.
func (g *generator) attach(ref ninja.BuildRef, b *Build) error {
	if len(b.ImplicitOutputs) > 0 {
		ref.OutputImplicit(g.out.EscapeAll(b.ImplicitOutputs...)...)
	}

	if len(b.Inputs) > 0 {
		ref.With(g.path.EscapeAll(b.Inputs...)...)
	}

	if len(b.Implicit) > 0 {
		ref.WithImplicit(g.path.EscapeAll(b.Implicit...)...)
	}

	if len(b.OrderOnly) > 0 {
		ref.WithOrderOnly(g.path.EscapeAll(b.OrderOnly...)...)
	}

	if len(b.Validations) > 0 {
		ref.Validations(g.path.EscapeAll(b.Validations...)...)
	}

	if b.Dyndep != "" {
		ref.Dyndep(g.path.Escape(b.Dyndep))
	}

	switch pool, err := g.lookupPool(b.Pool); {
	case err != nil:
		return err
	case b.Pool == consolePool:
		ref.Variable("pool", consolePool)
	case pool != nil:
		ref.Pool(*pool)
	}

	for _, v := range b.Variables {
		ref.Variable(v.Name, v.Value)
	}

	return nil
}

// lookupPool resolves a pool reference. The empty name and the built-in
// console pool resolve to nil without error.
func (g *generator) lookupPool(name string) (*ninja.PoolRef, error) {
	if name == "" || name == consolePool {
		return nil, nil
	}

	if ref, ok := g.pools[name]; ok {
		return &ref, nil
	}

	return nil, unknown(ErrUnknownPool, "pool", name, slices.Collect(maps.Keys(g.pools)))
}

// unknown reports a reference to an undeclared name, with a suggestion when
// a declared name is close enough.
func unknown(err *Error, kind, name string, declared []string) *Error {
	slices.Sort(declared)

	err = err.With(slog.String(kind, name))
	if s := suggest(name, declared); s != "" {
		err = err.With(slog.String("hint", hint(s)))
	}

	return err
}
