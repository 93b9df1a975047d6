package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/urltext"
	"github.com/fwojciec/urltext/fs"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File        string        `short:"f" required:"" help:"Path to the text file containing URLs, one per line."`
	Output      string        `short:"o" help:"Directory where extracted text files are saved (default: ~/Documents/URL Text)."`
	Engine      string        `default:"readability" enum:"readability,trafilatura" help:"Content extraction engine."`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit (1 = sequential, in file order)."`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per request."`
	RPS         float64       `default:"2" help:"Max requests per second per host."`
	Verbose     bool          `short:"v" help:"Log each fetch to stderr."`
}

// inputFileExt is the only accepted input file type.
const inputFileExt = ".txt"

// ValidateInputFile checks the input list before any network activity.
func ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return urltext.Errorf(urltext.ENOTFOUND, "input file %q does not exist", path)
	}
	if info.IsDir() {
		return urltext.Errorf(urltext.EINVALID, "input path %q is a directory, not a file", path)
	}
	if filepath.Ext(path) != inputFileExt {
		return urltext.Errorf(urltext.EINVALID, "input file %q is not a %s file", path, inputFileExt)
	}
	return nil
}

// ResolveOutputDir decides where output files go and makes sure the
// directory exists. A requested path that is an existing regular file is a
// fatal configuration error. A missing non-default path is only created
// after the confirmer approves; on decline the default directory is used
// and created without prompting.
func ResolveOutputDir(requested, defaultDir string, confirmer urltext.Confirmer, stdout io.Writer) (string, error) {
	dir := requested
	if dir == "" {
		dir = defaultDir
	}

	info, err := os.Stat(dir)
	if err == nil && !info.IsDir() {
		return "", urltext.Errorf(urltext.EINVALID, "output path %q is a file, not a directory", dir)
	}

	if err != nil && dir != defaultDir {
		prompt := fmt.Sprintf("Output path %q does not exist. Create it?", dir)
		if !confirmer.Confirm(prompt) {
			dir = defaultDir
			fmt.Fprintf(stdout, "Output path set to %s\n", dir)
		}
	}

	if err := fs.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return dir, nil
}
