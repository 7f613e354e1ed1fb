package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/ninjagen/log"
	"github.com/ardnew/ninjagen/manifest"
	"github.com/ardnew/ninjagen/ninja"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	stdioKey struct{}
	stdio    struct {
		in  io.Reader
		out io.Writer
	}
)

// WithStdio returns a new context.Context whose commands read standard input
// from in and write standard output to out.
func WithStdio(ctx context.Context, in io.Reader, out io.Writer) context.Context {
	return context.WithValue(ctx, stdioKey{}, stdio{in: in, out: out})
}

func stdioFrom(ctx context.Context) stdio {
	s, _ := ctx.Value(stdioKey{}).(stdio)
	if s.in == nil {
		s.in = os.Stdin
	}

	if s.out == nil {
		s.out = os.Stdout
	}

	return s
}

// stdSource is the path naming standard input or standard output.
const stdSource = "-"

// openSource opens path for reading, or returns standard input for "-".
func openSource(ctx context.Context, path string) (io.ReadCloser, error) {
	if path == stdSource || path == "" {
		return io.NopCloser(stdioFrom(ctx).in), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ErrReadManifest.
			With(slog.String("path", path)).
			Wrap(err)
	}

	return file, nil
}

// openOutput creates path for writing, or returns standard output for "-".
func openOutput(ctx context.Context, path string) (io.WriteCloser, error) {
	if path == stdSource || path == "" {
		return nopWriteCloser{stdioFrom(ctx).out}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, ErrWriteOutput.
			With(slog.String("path", path)).
			Wrap(err)
	}

	return file, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// loadFile reads the manifest at source and generates its ninja file.
func loadFile(
	ctx context.Context,
	source string,
	opts ...manifest.Option,
) (*ninja.File, error) {
	r, err := openSource(ctx, source)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	opts = append([]manifest.Option{manifest.WithLogger(log.Default())}, opts...)

	f, err := manifest.Load(ctx, r, opts...)
	if err != nil {
		return nil, ErrLoadManifest.
			With(slog.String("source", source)).
			Wrap(err)
	}

	return f, nil
}
