package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/urltext"
	"github.com/fwojciec/urltext/batch"
	"github.com/fwojciec/urltext/fs"
	urlgoquery "github.com/fwojciec/urltext/goquery"
	urlhttp "github.com/fwojciec/urltext/http"
	"github.com/fwojciec/urltext/readability"
	urlslog "github.com/fwojciec/urltext/slog"
	"github.com/fwojciec/urltext/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// DefaultOutputDir is used when no output directory is given, or when
	// the user declines to create a missing one. Resolved once here and
	// passed down explicitly; nothing below the CLI consults it.
	DefaultOutputDir string

	// Confirmer answers the create-directory prompt. Defaults to reading
	// stdin; tests inject a canned answer.
	Confirmer urltext.Confirmer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DefaultOutputDir: defaultOutputDir(),
	}
}

// defaultOutputDir returns the well-known documents subdirectory used when
// no output directory is configured.
func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "URL Text")
	}
	return filepath.Join(home, "Documents", "URL Text")
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("urltext"),
		kong.Description("Extract the readable text of each URL in a file to its own .txt file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Pre-flight checks happen before any network activity; failures here
	// are fatal configuration errors.
	if err := ValidateInputFile(cli.File); err != nil {
		return err
	}

	confirmer := m.Confirmer
	if confirmer == nil {
		confirmer = NewStdioConfirmer(stdin, stdout)
	}

	outputDir, err := ResolveOutputDir(cli.Output, m.DefaultOutputDir, confirmer, stdout)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var fetcher urltext.Fetcher = urlhttp.NewFetcher(urlhttp.WithTimeout(cli.Timeout))
	if cli.Verbose {
		fetcher = urlslog.NewLoggingFetcher(fetcher, logger)
	}
	defer fetcher.Close()

	var engine urltext.Extractor
	switch cli.Engine {
	case "trafilatura":
		engine = trafilatura.NewExtractor()
	default:
		engine = readability.NewExtractor()
	}

	runner := &batch.Runner{
		Fetcher:     fetcher,
		Extractor:   engine,
		Fallback:    urlgoquery.NewExtractor(),
		Writer:      fs.NewWriter(outputDir),
		Limiter:     batch.NewHostLimiter(cli.RPS),
		Logger:      logger,
		Concurrency: cli.Concurrency,
	}

	input, err := os.Open(cli.File)
	if err != nil {
		return fmt.Errorf("opening %s: %w", cli.File, err)
	}
	defer input.Close()

	progress := func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressCompleted:
			fmt.Fprintf(stdout, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
		case batch.ProgressFailed:
			fmt.Fprintf(stdout, "[%d/%d] %s\n", e.Completed, e.Total, e.URL)
			fmt.Fprintf(stderr, "failed %s: %s\n", e.URL, reason(e.Error))
		}
	}

	result, err := runner.Run(ctx, input, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Saved %d files to %s (%d failed, %d lines skipped)\n",
		result.Saved+result.Failed, outputDir, result.Failed, result.Skipped)
	return nil
}

// reason prefers the application error message when one is available.
func reason(err error) string {
	var e *urltext.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
