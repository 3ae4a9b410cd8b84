package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/readmegen"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Documents readmegen.DocumentSource
	Templates readmegen.TemplateSource
	Output    readmegen.OutputWriter

	// Anchors is optional; nil disables the anchor check.
	Anchors readmegen.AnchorChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dir          string `short:"d" default:"." env:"READMEGEN_DIR" help:"Directory holding sources, template and output"`
	Pattern      string `default:"CPP*.md" env:"READMEGEN_PATTERN" help:"Glob matching variant sources"`
	Template     string `short:"t" default:"readme-template.md" env:"READMEGEN_TEMPLATE" help:"Template file name"`
	Output       string `short:"o" default:"README.md" env:"READMEGEN_OUTPUT" help:"Output file name"`
	Check        bool   `help:"Fail if the output is out of date instead of writing it"`
	CheckAnchors bool   `help:"Warn about in-page links without a matching heading"`
	Verbose      bool   `short:"v" help:"Enable debug logging"`
}

// Validate returns an error if the output could be picked up as a source.
func (c *CLI) Validate() error {
	matched, err := filepath.Match(c.Pattern, c.Output)
	if err != nil {
		return readmegen.Errorf(readmegen.EINVALID, "invalid source pattern %q: %v", c.Pattern, err)
	}
	if matched {
		return readmegen.Errorf(readmegen.EINVALID, "output %q matches source pattern %q", c.Output, c.Pattern)
	}
	return nil
}

// GenerateCmd combines the sources into the output file.
type GenerateCmd struct {
	Output string
	Check  bool
}
