package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readmegen"
	"github.com/fwojciec/readmegen/fs"
	"github.com/fwojciec/readmegen/goldmark"
	"github.com/fwojciec/readmegen/goquery"
	rgslog "github.com/fwojciec/readmegen/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", formatError(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readmegen"),
		kong.Description("Combine per-variant markdown sources into a single README"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if err := cli.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	source := fs.NewSource(cli.Dir, cli.Pattern, cli.Template, goldmark.NewParser())
	outputPath := filepath.Join(cli.Dir, cli.Output)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Documents: rgslog.NewLoggingDocumentSource(source, logger),
		Templates: rgslog.NewLoggingTemplateSource(source, logger),
		Output:    rgslog.NewLoggingOutputWriter(fs.NewWriter(outputPath), outputPath, logger),
	}
	if cli.CheckAnchors {
		deps.Anchors = rgslog.NewLoggingAnchorChecker(goquery.NewAnchorChecker(), logger)
	}

	cmd := &GenerateCmd{
		Output: outputPath,
		Check:  cli.Check,
	}

	return cmd.Run(deps)
}

// formatError returns the message of application errors and the full
// error chain of anything else.
func formatError(err error) string {
	if readmegen.ErrorCode(err) == readmegen.EINTERNAL {
		return err.Error()
	}
	return readmegen.ErrorMessage(err)
}
