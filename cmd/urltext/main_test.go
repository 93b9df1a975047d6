package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/urltext"
	main "github.com/fwojciec/urltext/cmd/urltext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, strings.NewReader(""), &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "urltext")
	assert.Contains(t, stdout.String(), "--file")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, strings.NewReader(""), &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_MissingInputFile(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	missing := filepath.Join(t.TempDir(), "urls.txt")
	err := m.Run(context.Background(), []string{"-f", missing}, strings.NewReader(""), &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, urltext.ENOTFOUND, urltext.ErrorCode(err))
}

func TestMain_Run_WrongInputExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "urls.csv")
	require.NoError(t, os.WriteFile(path, []byte("https://example.com\n"), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-f", path}, strings.NewReader(""), &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, urltext.EINVALID, urltext.ErrorCode(err))
}

func TestMain_Run_OutputPathIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(input, []byte("https://example.com\n"), 0644))
	collision := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(collision, []byte("x"), 0644))

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"-f", input, "-o", collision}, strings.NewReader(""), &stdout, &stderr)

	require.Error(t, err)
	assert.Equal(t, urltext.EINVALID, urltext.ErrorCode(err))
}

func TestMain_Run_EndToEnd(t *testing.T) {
	t.Parallel()

	const article = `<!DOCTYPE html>
<html>
<head><title>Example Article</title></head>
<body>
<nav><a href="/">Home Nav Link</a></nav>
<article>
<p>Hello &amp; welcome. This article body is long enough for the extraction
heuristics to recognize it as the main content of the page.</p>
<p>It keeps going for a second paragraph so the scoring has something to
work with beyond a single sentence.</p>
</article>
</body>
</html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/article":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(article))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	outputDir := filepath.Join(dir, "out")
	input := filepath.Join(dir, "urls.txt")
	lines := fmt.Sprintf("%s/article\nnot a url\n%s/missing\n", server.URL, server.URL)
	require.NoError(t, os.WriteFile(input, []byte(lines), 0644))

	m := main.NewMain()
	m.Confirmer = yesConfirmer{}
	var stdout, stderr bytes.Buffer

	err := m.Run(
		context.Background(),
		[]string{"-f", input, "-o", outputDir, "--rps", "100"},
		strings.NewReader(""),
		&stdout, &stderr,
	)
	require.NoError(t, err)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "one file per valid URL, skipped line leaves none")

	// Line positions drive names: index 0 for the article, index 2 for the
	// 404 URL because the invalid middle line still consumed index 1.
	articleFile := filepath.Join(outputDir, urltext.OutputName(0, server.URL+"/article"))
	got, err := os.ReadFile(articleFile)
	require.NoError(t, err)
	text := string(got)
	assert.Contains(t, text, "Example Article")
	assert.Contains(t, text, "Hello & welcome")
	assert.NotContains(t, text, "<p>")
	assert.NotContains(t, text, "&amp;")
	assert.NotContains(t, text, "Home Nav Link")

	missingFile := filepath.Join(outputDir, urltext.OutputName(2, server.URL+"/missing"))
	empty, err := os.ReadFile(missingFile)
	require.NoError(t, err)
	assert.Empty(t, empty, "failed fetch still leaves an empty file")

	assert.Contains(t, stdout.String(), "[1/2]")
	assert.Contains(t, stdout.String(), "Saved 2 files")
	assert.Contains(t, stderr.String(), "404")
}

// yesConfirmer answers yes without a terminal.
type yesConfirmer struct{}

func (yesConfirmer) Confirm(string) bool { return true }
