package manifest

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/readahead"

	"github.com/ardnew/ninjagen/ninja"
)

// Parse decodes a YAML manifest. Unknown fields are rejected, and every
// statement entry must hold exactly one statement key.
func Parse(ctx context.Context, data []byte) (*Manifest, error) {
	var m Manifest

	err := yaml.UnmarshalContext(ctx, data, &m, yaml.DisallowUnknownField())
	if err != nil {
		return nil, ErrDecode.Wrap(err)
	}

	for i := range m.Statements {
		if _, n := m.Statements[i].key(); n != 1 {
			return nil, ErrInvalidEntry.With(
				slog.Int("entry", i),
				slog.Int("keys", n),
			)
		}
	}

	return &m, nil
}

// Read reads all of r and parses it as a manifest.
func Read(ctx context.Context, r io.Reader) (*Manifest, error) {
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return Parse(ctx, data)
}

// Load reads a manifest from r and generates its ninja file.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*ninja.File, error) {
	m, err := Read(ctx, r)
	if err != nil {
		return nil, err
	}

	return m.File(ctx, opts...)
}

// LoadFile reads the manifest at path and generates its ninja file.
func LoadFile(ctx context.Context, path string, opts ...Option) (*ninja.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}
	defer file.Close()

	f, err := Load(ctx, file, opts...)
	if err != nil {
		return nil, WrapError(err).With(slog.String("path", path))
	}

	return f, nil
}
