package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/ninjagen/ninja"
)

// Escape prints each argument escaped for use in a ninja file.
type Escape struct {
	Policy string `default:"build" enum:"plain,path,build" help:"Escaping policy: plain for values, path for paths, build for build outputs and inputs."`

	Text []string `arg:"" help:"Text to escape." name:"text"`
}

// Run executes the escape command.
func (e *Escape) Run(ctx context.Context) error {
	out := stdioFrom(ctx).out
	policy := ninja.ParsePolicy(e.Policy)

	for _, s := range policy.EscapeAll(e.Text...) {
		if _, err := fmt.Fprintln(out, s); err != nil {
			return ErrWriteOutput.Wrap(err)
		}
	}

	return nil
}
