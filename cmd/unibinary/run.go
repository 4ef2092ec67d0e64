package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mnightingale/unibinary/internal/config"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// source is one input of a command: a file, a literal string or stdin.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

// streamFunc transforms one whole input into one output and returns a
// short summary for verbose logging.
type streamFunc func(in io.Reader, out io.Writer) (string, error)

type runner struct {
	ctx     context.Context
	cfg     *config.Config
	stdout  io.Writer
	outDir  string
	verbose bool
}

func newRunner(c *cli.Context, cfg *config.Config) *runner {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	return &runner{
		ctx:     ctx,
		cfg:     cfg,
		stdout:  c.App.Writer,
		outDir:  c.String("out-dir"),
		verbose: c.Bool("verbose"),
	}
}

func collectSources(c *cli.Context) ([]source, error) {
	paths := c.Args().Slice()
	if p := c.String("path"); p != "" {
		paths = append([]string{p}, paths...)
	}

	if c.IsSet("string") {
		if len(paths) > 0 {
			return nil, errors.New("--string cannot be combined with files")
		}
		s := c.String("string")
		return []source{{
			name: "string",
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader(s)), nil
			},
		}}, nil
	}

	if len(paths) == 0 {
		stdin := c.App.Reader
		if stdin == nil {
			stdin = os.Stdin
		}
		return []source{{
			name: "stdin",
			open: func() (io.ReadCloser, error) {
				return io.NopCloser(stdin), nil
			},
		}}, nil
	}

	sources := make([]source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, source{
			name: p,
			open: func() (io.ReadCloser, error) {
				return os.Open(p)
			},
		})
	}
	return sources, nil
}

// run processes every source with fn. Without an output directory the
// single source is written to stdout; otherwise sources are processed
// concurrently, each into outDir/outName(source).
func (r *runner) run(sources []source, outName func(string) string, fn streamFunc) error {
	if r.outDir == "" {
		if len(sources) > 1 {
			return fmt.Errorf("%d inputs given, --out-dir is required for more than one", len(sources))
		}
		return r.process(sources[0], r.stdout, fn)
	}

	paths, err := r.outputPaths(sources, outName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(r.ctx)
	g.SetLimit(r.cfg.Jobs)

	for i, src := range sources {
		path := paths[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}

			err = r.process(src, f, fn)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			return err
		})
	}

	return g.Wait()
}

// outputPaths maps every source to its file in outDir. Two sources
// sharing an output file are rejected before anything is written.
func (r *runner) outputPaths(sources []source, outName func(string) string) ([]string, error) {
	paths := make([]string, len(sources))
	owners := make(map[string]string, len(sources))

	for i, src := range sources {
		path := filepath.Join(r.outDir, outName(src.name))
		if prev, ok := owners[path]; ok {
			return nil, fmt.Errorf("%s and %s would both be written to %s", prev, src.name, path)
		}
		owners[path] = src.name
		paths[i] = path
	}

	return paths, nil
}

func (r *runner) process(src source, out io.Writer, fn streamFunc) error {
	in, err := src.open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src.name, err)
	}
	defer in.Close()

	start := time.Now()
	summary, err := fn(in, out)
	if err != nil {
		return fmt.Errorf("%s: %w", src.name, err)
	}

	if r.verbose {
		log.Printf("%s: %s in %s", src.name, summary, time.Since(start).Round(time.Microsecond))
	}
	return nil
}
