package main

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mnightingale/unibinary"
	"github.com/mnightingale/unibinary/internal/config"

	"github.com/urfave/cli/v2"
)

// encodeCommand encodes a string, files or stdin
func encodeCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	sources, err := collectSources(c)
	if err != nil {
		return err
	}

	verify := c.Bool("verify")
	outName := func(name string) string {
		return filepath.Base(name) + ".txt"
	}

	return newRunner(c, cfg).run(sources, outName, func(in io.Reader, out io.Writer) (string, error) {
		return encodeStream(cfg, in, out, verify)
	})
}

// encodeStream writes the encoding of in to out. With verify the
// produced text is decoded again and its digest compared with the input's.
func encodeStream(cfg *config.Config, in io.Reader, out io.Writer, verify bool) (string, error) {
	var text bytes.Buffer
	w := out
	if verify {
		w = io.MultiWriter(out, &text)
	}

	enc, err := unibinary.NewEncoder(w, cfg.EncoderOptions()...)
	if err != nil {
		return "", err
	}

	n, err := io.Copy(enc, in)
	if err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	summary := fmt.Sprintf("%d bytes encoded as %d symbols", n, enc.Symbols())
	if !verify {
		return summary, nil
	}

	dec := unibinary.NewDecoder(&text, cfg.DecoderOptions()...)
	if _, err := io.Copy(io.Discard, dec); err != nil {
		return "", fmt.Errorf("verify: %w", err)
	}
	if dec.Sum64() != enc.Sum64() {
		return "", fmt.Errorf("verify: decoded xxh64 %016x does not match input xxh64 %016x", dec.Sum64(), enc.Sum64())
	}

	return fmt.Sprintf("%s, verified xxh64 %016x", summary, enc.Sum64()), nil
}
