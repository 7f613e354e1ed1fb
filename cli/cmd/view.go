package cmd

import (
	"context"
	"path/filepath"

	"github.com/ardnew/ninjagen/cli/cmd/view"
	"github.com/ardnew/ninjagen/log"
	"github.com/ardnew/ninjagen/manifest"
)

// View browses the statements generated from a manifest.
type View struct {
	Env     map[string]string `help:"Set a condition variable; the value is parsed as YAML." short:"e" placeholder:"KEY=VALUE"`
	History bool              `default:"true" help:"Remember filter queries."              negatable:""`

	Manifest string `arg:"" default:"-" help:"Manifest file or '-' for default stdin." name:"manifest"`
}

// Run executes the view command.
func (v *View) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	env, err := parseEnv(v.Env)
	if err != nil {
		return err
	}

	f, err := loadFile(ctx, v.Manifest, manifest.WithEnv(env))
	if err != nil {
		return err
	}

	return view.Run(ctx, f, v.history(ctx), log.Default())
}

// history returns the query history stored in the cache directory.
func (v *View) history(ctx context.Context) *view.History {
	if !v.History {
		return nil
	}

	if ktx := kongContextFrom(ctx); ktx != nil {
		if dir, ok := ktx.Model.Vars()[CacheIdentifier]; ok && dir != "" {
			return view.NewHistory(filepath.Join(dir, view.HistoryFile))
		}
	}

	return nil
}
