package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/mnightingale/unibinary"
	"github.com/mnightingale/unibinary/internal/config"

	"github.com/urfave/cli/v2"
)

// decodeCommand decodes a string, files or stdin
func decodeCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	sources, err := collectSources(c)
	if err != nil {
		return err
	}

	return newRunner(c, cfg).run(sources, decodedName, func(in io.Reader, out io.Writer) (string, error) {
		return decodeStream(cfg, in, out)
	})
}

// decodedName strips the ".txt" suffix added by encode, or appends ".bin"
// when there is none.
func decodedName(name string) string {
	base := filepath.Base(name)
	if trimmed, ok := strings.CutSuffix(base, ".txt"); ok && trimmed != "" {
		return trimmed
	}
	return base + ".bin"
}

func decodeStream(cfg *config.Config, in io.Reader, out io.Writer) (string, error) {
	dec := unibinary.NewDecoder(in, cfg.DecoderOptions()...)

	n, err := io.Copy(out, dec)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d bytes decoded, xxh64 %016x", n, dec.Sum64()), nil
}
