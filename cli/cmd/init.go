package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/ninjagen/log"
	"github.com/ardnew/ninjagen/manifest"
	"github.com/ardnew/ninjagen/profile"
)

// defaultConfigIndent is the number of spaces to use for indentation
// when generating the default configuration file.
const defaultConfigIndent = 2

// Init writes a starter manifest, or with --config the configuration file
// holding the current flag values.
type Init struct {
	Force  bool `help:"Overwrite an existing file"                                short:"f"`
	Config bool `help:"Write the configuration file instead of a starter manifest"`

	Path string `arg:"" default:"build.yaml" help:"Path of the starter manifest." type:"path"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if i.Config {
		return i.writeConfig(ctx)
	}

	if err := i.create(i.Path, manifest.Starter()); err != nil {
		return ErrWriteOutput.With(slog.String("file", i.Path)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized manifest", slog.String("path", i.Path))

	return nil
}

func (i *Init) writeConfig(ctx context.Context) error {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		panic("internal error: kong context undefined")
	}

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	data, err := yaml.MarshalWithOptions(
		i.configValues(ktx),
		yaml.Indent(defaultConfigIndent),
	)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if err := i.create(confPath, data); err != nil {
		return ErrWriteConfig.With(slog.String("file", confPath)).Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// create writes data to path unless it exists and Force is unset.
func (i *Init) create(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil && !i.Force {
		return ErrFileExists
	}

	return os.WriteFile(path, data, 0o644)
}

// configValues collects the application flags with a value, keyed by their
// config file names.
func (i *Init) configValues(ktx *kong.Context) yaml.MapSlice {
	prefixIgnore := []string{"help", "version", profile.Tag}

	var values yaml.MapSlice

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(prefixIgnore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		if val := flagValue(ktx.FlagValue(flag)); val != nil {
			values = append(values, yaml.MapItem{
				Key:   strings.ReplaceAll(flag.Name, "-", "_"),
				Value: val,
			})
		}
	}

	slices.SortFunc(values, func(a, b yaml.MapItem) int {
		return strings.Compare(a.Key.(string), b.Key.(string))
	})

	return values
}

// flagValue returns the config file value of a flag, or nil if it is unset.
func flagValue(val any) any {
	switch v := val.(type) {
	case nil:
		return nil

	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return v

	case string:
		if v == "" {
			return nil
		}

		return v

	case []string:
		if len(v) == 0 {
			return nil
		}

		return v

	case map[string]string:
		if len(v) == 0 {
			return nil
		}

		return v

	case fmt.Stringer:
		return flagValue(v.String())

	default:
		return fmt.Sprint(v)
	}
}
