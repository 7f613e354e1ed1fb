package cli

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/ninjagen/log"
)

// resolve returns a [kong.ConfigurationLoader] for YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve(ctx), "/path/to/config.yaml")
//
// Top-level keys set application flags only. A mapping named after a command
// sets that command's flags, nested for subcommands; a top-level key never
// reaches a command flag of the same name. Flag names with hyphens
// (e.g., "log-level") may use underscores (e.g., "log_level").
//
//	log_level: debug
//	log_pretty: false
//	gen:
//	  color: true
//	fmt:
//	  json:
//	    indent: 4
//
// Command-line flags override config file values. A file that does not
// parse is logged and ignored.
func resolve(ctx context.Context) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}

		var root map[string]any
		if err := yaml.UnmarshalContext(ctx, data, &root); err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		return config(root), nil
	}
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	parent *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong resolves application flags with the application path, so a
	// command's flags are only ever looked up in that command's mapping.
	if value, ok := c.section(commandPath(parent)).lookup(flag.Name); ok {
		return normalize(value), nil
	}

	return nil, nil
}

// lookup finds name as written or with hyphens replaced by underscores.
func (c config) lookup(name string) (any, bool) {
	if value, ok := c[name]; ok {
		return value, true
	}

	value, ok := c[strings.ReplaceAll(name, "-", "_")]

	return value, ok
}

// section returns the nested mapping for the command path.
func (c config) section(path []string) config {
	for _, name := range path {
		value, ok := c.lookup(name)
		if !ok {
			return config{}
		}

		next, ok := value.(map[string]any)
		if !ok {
			return config{}
		}

		c = next
	}

	return c
}

// commandPath returns the command names leading to parent, outermost first.
func commandPath(parent *kong.Path) []string {
	if parent == nil {
		return nil
	}

	var path []string

	for n := parent.Node(); n != nil && n.Type != kong.ApplicationNode; n = n.Parent {
		path = append([]string{n.Name}, path...)
	}

	return path
}

// normalize converts decoded YAML to values kong can map: numbers become
// strings, recursively.
func normalize(value any) any {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}

		return out
	default:
		return v
	}
}
