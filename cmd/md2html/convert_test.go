package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/dateutil"
)

// testEnv returns an environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := DefaultEnv()
	env.Now = func() time.Time { return time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC) }
	env.Stdout = &stdout
	env.Stderr = &stderr
	return env, &stdout, &stderr
}

func newTestParser(t *testing.T, opts ...md2html.Option) *md2html.Parser {
	t.Helper()
	p, err := md2html.NewParser(opts...)
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}
	return p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRenderDocument - Output layout
// ---------------------------------------------------------------------------

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		raw      string
		params   conversionParams
		contains []string
		excludes []string
		prefix   string
	}{
		{
			name:     "fragment",
			raw:      "# Hello\n\nWorld",
			contains: []string{`<h1 id="hello-1">Hello</h1>`, "<p>World</p>"},
			excludes: []string{"<html", "<style>"},
		},
		{
			name:     "fragment with toc",
			raw:      "# A\n\n## B",
			params:   conversionParams{toc: true},
			prefix:   `<nav class="toc"`,
			contains: []string{`href="#b-2"`},
		},
		{
			name:     "standalone",
			raw:      "---\ntitle: Guide\n---\n# Start",
			params:   conversionParams{standalone: true},
			prefix:   "<!DOCTYPE html>",
			contains: []string{"<title>Guide</title>", "<style>", `<h1 id="start-1">Start</h1>`},
		},
		{
			name:     "inline css",
			raw:      "text",
			params:   conversionParams{inlineCSS: true},
			prefix:   "<style>",
			contains: []string{"<p>text</p>"},
		},
		{
			name:     "safe fallback",
			raw:      "[broken]()",
			params:   conversionParams{safe: true},
			contains: []string{`<pre class="md-fallback">[broken]()</pre>`},
		},
		{
			name:     "safe fallback with toc",
			raw:      "---\nbad\n---\n",
			params:   conversionParams{safe: true, toc: true},
			prefix:   `<pre class="md-fallback">`,
			excludes: []string{"<nav"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := renderDocument(ctx, p, tt.raw, &tt.params)
			if err != nil {
				t.Fatalf("renderDocument() error: %v", err)
			}
			if tt.prefix != "" && !strings.HasPrefix(got, tt.prefix) {
				t.Errorf("output should start with %q, got %q", tt.prefix, got)
			}
			for _, s := range tt.contains {
				if !strings.Contains(got, s) {
					t.Errorf("output should contain %q, got %q", s, got)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(got, s) {
					t.Errorf("output should not contain %q, got %q", s, got)
				}
			}
		})
	}
}

func TestRenderDocument_Errors(t *testing.T) {
	t.Parallel()

	p := newTestParser(t)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty link", "[x]()", md2html.ErrInvalidLink},
		{"empty content", "  \n", md2html.ErrEmptyContent},
		{"unterminated front matter", "---\ntitle: x\n", md2html.ErrUnterminatedFrontMatter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := renderDocument(context.Background(), p, tt.raw, &conversionParams{toc: true})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("renderDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch - Bounded concurrent conversion
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.md": "# A",
		"b.md": "[bad]()",
		"c.md": "# C",
	})
	out := filepath.Join(t.TempDir(), "nested", "out")

	files, err := discoverFiles(root, out)
	if err != nil {
		t.Fatalf("discoverFiles() error: %v", err)
	}

	results := convertBatch(context.Background(), newTestParser(t), files, &conversionParams{}, 2)
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for i, r := range results {
		if r.InputPath != files[i].InputPath {
			t.Errorf("result %d is for %s, want %s", i, r.InputPath, files[i].InputPath)
		}
	}

	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("unexpected errors: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, md2html.ErrInvalidLink) {
		t.Errorf("results[1].Err = %v, want ErrInvalidLink", results[1].Err)
	}
	if _, err := os.Stat(results[1].OutputPath); !errors.Is(err, os.ErrNotExist) {
		t.Error("failed conversion should not write output")
	}

	got := readFile(t, filepath.Join(out, "a.html"))
	if got != `<h1 id="a-1">A</h1>`+"\n" {
		t.Errorf("a.html = %q", got)
	}
	if results[0].Size != len(got) {
		t.Errorf("Size = %d, want %d", results[0].Size, len(got))
	}

	summary := countResults(results)
	if summary.Succeeded != 2 || summary.Failed != 1 {
		t.Errorf("summary = %+v", summary)
	}
	if !errors.Is(firstError(results), md2html.ErrInvalidLink) {
		t.Errorf("firstError() = %v", firstError(results))
	}
}

func TestConvertBatch_CanceledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.md": "# A"})
	files, err := discoverFiles(root, "")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := convertBatch(ctx, newTestParser(t), files, &conversionParams{}, 1)
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("Err = %v, want context.Canceled", results[0].Err)
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := convertBatch(context.Background(), newTestParser(t), nil, &conversionParams{}, 4); got != nil {
		t.Errorf("convertBatch(nil) = %v, want nil", got)
	}
}

func TestConvertFile_ReadError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := FileToConvert{InputPath: filepath.Join(dir, "missing.md"), OutputPath: filepath.Join(dir, "missing.html")}
	r := convertFile(context.Background(), newTestParser(t), f, &conversionParams{})
	if !errors.Is(r.Err, ErrReadMarkdown) {
		t.Errorf("Err = %v, want ErrReadMarkdown", r.Err)
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults - Result reporting
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html", Size: 2048, Duration: 3 * time.Millisecond},
		{InputPath: "b.md", Err: md2html.ErrInvalidLink},
	}

	t.Run("default", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		failed := printResults(results, false, false, env)
		if failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if !strings.Contains(stdout.String(), "a.html") {
			t.Errorf("stdout = %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout should contain the summary, got %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "b.md: link has no destination") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		printResults(results, false, true, env)
		if !strings.Contains(stdout.String(), "a.md -> a.html (2.0 kB, 3ms)") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		printResults(results, true, false, env)
		if stdout.Len() != 0 {
			t.Errorf("quiet stdout = %q", stdout.String())
		}
		if stderr.Len() == 0 {
			t.Error("failures should still be reported when quiet")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRunConvert - End to end
// ---------------------------------------------------------------------------

func TestRunConvert(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.md":       "---\ntitle: Home\n---\n# Welcome\n\nSee [guide](guide/intro.md).",
		"guide/intro.md": "# Intro\n\n```go\nfmt.Println(1)\n```",
	})
	out := filepath.Join(t.TempDir(), "site")

	env, stdout, stderr := testEnv()
	err := run(context.Background(), []string{"md2html", "convert", root, "-o", out, "--html-doc", "--css", "-w", "2"}, env)
	if err != nil {
		t.Fatalf("run() error: %v\nstderr: %s", err, stderr.String())
	}

	index := readFile(t, filepath.Join(out, "index.html"))
	for _, s := range []string{"<!DOCTYPE html>", "<title>Home</title>", `href="guide/intro.md"`} {
		if !strings.Contains(index, s) {
			t.Errorf("index.html should contain %q", s)
		}
	}
	intro := readFile(t, filepath.Join(out, "guide", "intro.html"))
	if !strings.Contains(intro, "<title>Intro</title>") {
		t.Error("title should fall back to the first heading")
	}

	css := readFile(t, filepath.Join(out, stylesheetName))
	if strings.TrimSpace(css) == "" {
		t.Error("styles.css is empty")
	}
	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunConvert_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"bad.md":    "![alt]()",
		"page.md":   "# Page",
		"notes.txt": "x",
	})

	tests := []struct {
		name     string
		args     []string
		wantErr  error
		wantCode int
	}{
		{"content error", []string{filepath.Join(root, "bad.md"), "-q"}, md2html.ErrInvalidImage, ExitContent},
		{"no input", nil, ErrNoInput, ExitIO},
		{"wrong extension", []string{filepath.Join(root, "notes.txt")}, ErrInvalidExtension, ExitUsage},
		{"invalid workers", []string{root, "-w", "-3"}, ErrInvalidWorkerCount, ExitUsage},
		{"unknown preset", []string{filepath.Join(root, "page.md"), "--preset", "nope"}, md2html.ErrUnknownPreset, ExitUsage},
		{"invalid highlight", []string{filepath.Join(root, "page.md"), "--highlight", "some"}, nil, ExitUsage},
		{"unknown flag", []string{"--bogus"}, ErrInvalidFlags, ExitUsage},
		{"invalid date", []string{filepath.Join(root, "page.md"), "--date", "automatic"}, dateutil.ErrInvalidDateFormat, ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, _ := testEnv()
			err := run(context.Background(), append([]string{"md2html", "convert"}, tt.args...), env)
			if err == nil {
				t.Fatal("run() error = nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("run() error = %v, want %v", err, tt.wantErr)
			}
			if got := exitCodeFor(err); got != tt.wantCode {
				t.Errorf("exitCodeFor(%v) = %d, want %d", err, got, tt.wantCode)
			}
		})
	}
}

func TestRunConvert_Safe(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"bad.md": "[x]()"})

	env, _, _ := testEnv()
	if err := run(context.Background(), []string{"md2html", "convert", filepath.Join(root, "bad.md"), "--safe", "-q"}, env); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	got := readFile(t, filepath.Join(root, "bad.html"))
	if !strings.Contains(got, md2html.FallbackClass) {
		t.Errorf("bad.html = %q, want fallback block", got)
	}
}

// ---------------------------------------------------------------------------
// TestRunConvert_Date - --date fills headers of undated documents
// ---------------------------------------------------------------------------

func TestRunConvert_Date(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"undated.md": "---\ntitle: Undated\n---\nBody",
		"dated.md":   "---\ntitle: Dated\ndate: June 5, 2023\n---\nBody",
	})

	env, _, stderr := testEnv()
	args := []string{"md2html", "convert", root, "--html-doc", "--date", "auto:long", "-q"}
	if err := run(context.Background(), args, env); err != nil {
		t.Fatalf("run() error: %v\nstderr: %s", err, stderr.String())
	}

	if got := readFile(t, filepath.Join(root, "undated.html")); !strings.Contains(got, ">March 4, 2024</time>") {
		t.Errorf("undated.html should carry the resolved date, got:\n%s", got)
	}
	if got := readFile(t, filepath.Join(root, "dated.html")); !strings.Contains(got, ">June 5, 2023</time>") {
		t.Errorf("dated.html should keep its own date, got:\n%s", got)
	}
}

func TestStampDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fm   md2html.FrontMatter
		date string
		want any
	}{
		{"fills missing date", md2html.FrontMatter{"title": "T"}, "2024-03-04", "2024-03-04"},
		{"keeps existing date", md2html.FrontMatter{"date": "yesterday"}, "2024-03-04", "yesterday"},
		{"nil front matter", nil, "2024-03-04", "2024-03-04"},
		{"empty date is a no-op", md2html.FrontMatter{}, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := &md2html.ParsedDocument{FrontMatter: tt.fm}
			stampDate(doc, tt.date)
			if got := doc.FrontMatter["date"]; got != tt.want {
				t.Errorf("date = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStampDate_LeavesParsedMapAlone(t *testing.T) {
	t.Parallel()

	parsed := md2html.FrontMatter{"title": "T"}
	doc := &md2html.ParsedDocument{FrontMatter: parsed}
	stampDate(doc, "2024-03-04")

	if _, ok := parsed["date"]; ok {
		t.Errorf("parsed front matter gained a date: %v", parsed)
	}
	if len(parsed) != 1 {
		t.Errorf("parsed front matter = %v, want only the title", parsed)
	}
	if doc.FrontMatter["date"] != "2024-03-04" || doc.FrontMatter["title"] != "T" {
		t.Errorf("stamped front matter = %v", doc.FrontMatter)
	}
}
