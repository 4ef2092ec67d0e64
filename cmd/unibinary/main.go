package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mnightingale/unibinary"
	"github.com/mnightingale/unibinary/internal/config"

	"github.com/urfave/cli/v2"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	if c.IsSet("break") {
		cfg.LineLength = c.Int("break")
	}
	if c.Bool("utf16") {
		cfg.TextEncoding = unibinary.UTF16LE.String()
	}
	if c.Bool("utf16be") {
		cfg.TextEncoding = unibinary.UTF16BE.String()
	}
	if c.Bool("no-ascii-pairs") {
		cfg.ASCIIPairs = false
	}
	if c.Bool("modulo-runs") {
		cfg.ModuloRuns = true
	}
	if c.IsSet("jobs") {
		cfg.Jobs = c.Int("jobs")
	}
	if c.IsSet("max-input-size") {
		cfg.MaxInputSize = c.Int("max-input-size")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "string",
			Aliases: []string{"s"},
			Usage:   "String to be encoded or decoded",
		},
		&cli.StringFlag{
			Name:    "path",
			Aliases: []string{"f"},
			Usage:   "File to be encoded or decoded",
		},
		&cli.StringFlag{
			Name:    "out-dir",
			Aliases: []string{"o"},
			Usage:   "Write one output file per input into this directory instead of stdout",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "Number of files processed at once (default: number of CPUs)",
		},
		&cli.BoolFlag{
			Name:  "utf16",
			Usage: "Use UTF-16 little endian text",
		},
		&cli.BoolFlag{
			Name:  "utf16be",
			Usage: "Use UTF-16 big endian text",
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "unibinary",
		Usage:                  "Encodes and decodes data into printable Unicode characters",
		Version:                unibinary.Version(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Log every processed input",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Aliases:   []string{"e"},
				Usage:     "Encode data into Unicode text",
				ArgsUsage: "[FILE...]",
				Flags: append(sourceFlags(),
					&cli.IntFlag{
						Name:    "break",
						Aliases: []string{"b"},
						Usage:   "Break encoded text into lines of `NUM` characters",
					},
					&cli.BoolFlag{
						Name:  "no-ascii-pairs",
						Usage: "Do not pack ASCII pairs into a single character",
					},
					&cli.BoolFlag{
						Name:  "modulo-runs",
						Usage: "Reduce run lengths modulo 4096 instead of capping them",
					},
					&cli.BoolFlag{
						Name:  "verify",
						Usage: "Decode the produced text and compare it with the input",
					},
				),
				Action: encodeCommand,
			},
			{
				Name:      "decode",
				Aliases:   []string{"d"},
				Usage:     "Decode Unicode text back into data",
				ArgsUsage: "[FILE...]",
				Flags: append(sourceFlags(),
					&cli.IntFlag{
						Name:  "max-input-size",
						Usage: "Refuse encoded inputs larger than `BYTES`",
					},
				),
				Action: decodeCommand,
			},
		},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("unibinary: ")

	if err := newApp().Run(os.Args); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
