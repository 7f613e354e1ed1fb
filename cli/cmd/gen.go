package cmd

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/ninjagen/log"
	"github.com/ardnew/ninjagen/manifest"
	"github.com/ardnew/ninjagen/ninja"
)

// Gen generates a ninja file from a manifest.
type Gen struct {
	Output   string            `default:"-"      help:"Output file or '-' for stdout."                        short:"o"`
	Env      map[string]string `                 help:"Set a condition variable; the value is parsed as YAML." short:"e" placeholder:"KEY=VALUE"`
	Mode     string            `default:"single" enum:"single,shared"                                       help:"Guard mode of the statement list."`
	NoEscape bool              `                 help:"Write manifest values without escaping."`
	Color    bool              `default:"false"  help:"Highlight ninja syntax in the output."                negatable:""`

	Manifest string `arg:"" default:"-" help:"Manifest file or '-' for default stdin." name:"manifest"`
}

// Run executes the gen command.
func (g *Gen) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := parseEnv(g.Env)
	if err != nil {
		return err
	}

	opts := []manifest.Option{
		manifest.WithEnv(env),
		manifest.WithMode(ninja.ParseMode(g.Mode)),
	}
	if g.NoEscape {
		opts = append(opts, manifest.WithEscape(false))
	}

	f, err := loadFile(ctx, g.Manifest, opts...)
	if err != nil {
		return err
	}

	out, err := openOutput(ctx, g.Output)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = ErrWriteOutput.With(slog.String("path", g.Output)).Wrap(cerr)
		}
	}()

	if g.Color {
		err = highlight(out, f.String())
	} else {
		_, err = f.WriteTo(out)
	}

	if err != nil {
		return ErrWriteOutput.With(slog.String("path", g.Output)).Wrap(err)
	}

	log.DebugContext(ctx, "ninja file written",
		slog.String("manifest", g.Manifest),
		slog.String("output", g.Output),
		slog.Int("statements", f.Len()),
	)

	return nil
}

// parseEnv decodes each value of env as a YAML scalar so that conditions
// can compare numbers and booleans.
func parseEnv(env map[string]string) (map[string]any, error) {
	if len(env) == 0 {
		return nil, nil
	}

	out := make(map[string]any, len(env))

	for _, key := range slices.Sorted(maps.Keys(env)) {
		value := env[key]
		if value == "" {
			out[key] = value

			continue
		}

		var v any
		if err := yaml.Unmarshal([]byte(value), &v); err != nil {
			return nil, ErrInvalidEnv.
				With(slog.String("key", key), slog.String("value", value)).
				Wrap(err)
		}

		if v == nil {
			v = value
		}

		out[key] = v
	}

	return out, nil
}
