package cmd

import (
	"context"
	"log/slog"
)

// Fmt loads a manifest and writes the generated file in the chosen format.
type Fmt struct {
	Ninja Ninja `cmd:"" default:"withargs" help:"Format as ninja syntax (default)."`
	JSON  JSON  `cmd:""                    help:"Format as JSON."`
	YAML  YAML  `cmd:""                    help:"Format as YAML."`
}

// Ninja formats a manifest as ninja syntax.
type Ninja struct {
	Source string `arg:"" default:"-" help:"Manifest file or '-' for default stdin." name:"source"`
}

// Run executes the ninja command.
func (n *Ninja) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	f, err := loadFile(ctx, n.Source)
	if err != nil {
		return err
	}

	if err := f.Format(ctx, stdioFrom(ctx).out); err != nil {
		return ErrWriteOutput.With(slog.String("format", "ninja")).Wrap(err)
	}

	return nil
}

// JSON formats a manifest as a JSON array of statement records.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output; 0 writes one line." short:"i"`

	Source string `arg:"" default:"-" help:"Manifest file or '-' for default stdin." name:"source"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	f, err := loadFile(ctx, j.Source)
	if err != nil {
		return err
	}

	if err := f.FormatJSON(ctx, stdioFrom(ctx).out, j.Indent); err != nil {
		return ErrWriteOutput.With(slog.String("format", "json")).Wrap(err)
	}

	return nil
}

// YAML formats a manifest as a YAML sequence of statement records.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output" short:"i"`

	Source string `arg:"" default:"-" help:"Manifest file or '-' for default stdin." name:"source"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	f, err := loadFile(ctx, y.Source)
	if err != nil {
		return err
	}

	if err := f.FormatYAML(ctx, stdioFrom(ctx).out, y.Indent); err != nil {
		return ErrWriteOutput.With(slog.String("format", "yaml")).Wrap(err)
	}

	return nil
}
