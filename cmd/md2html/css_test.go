package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	md2html "github.com/alnah/go-md2html"
)

func TestRunCSS(t *testing.T) {
	t.Parallel()

	t.Run("prints stylesheet", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := run(context.Background(), []string{"md2html", "css"}, env); err != nil {
			t.Fatalf("run() error: %v", err)
		}
		if !strings.HasSuffix(stdout.String(), "\n") || strings.TrimSpace(stdout.String()) == "" {
			t.Errorf("stylesheet = %q", stdout.String())
		}
	})

	t.Run("basic has no token styles", func(t *testing.T) {
		t.Parallel()

		enhancedEnv, enhanced, _ := testEnv()
		basicEnv, basic, _ := testEnv()
		if err := run(context.Background(), []string{"md2html", "css"}, enhancedEnv); err != nil {
			t.Fatal(err)
		}
		if err := run(context.Background(), []string{"md2html", "css", "--basic"}, basicEnv); err != nil {
			t.Fatal(err)
		}
		if len(basic.String()) >= len(enhanced.String()) {
			t.Errorf("basic stylesheet (%d bytes) should be shorter than enhanced (%d bytes)", basic.Len(), enhanced.Len())
		}
	})

	t.Run("writes file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "assets", "site.css")
		env, stdout, _ := testEnv()
		if err := run(context.Background(), []string{"md2html", "css", "-o", path, "-p", "classic"}, env); err != nil {
			t.Fatalf("run() error: %v", err)
		}
		if !strings.Contains(stdout.String(), path) {
			t.Errorf("stdout = %q", stdout.String())
		}
		if readFile(t, path) == "" {
			t.Error("stylesheet file is empty")
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		err := run(context.Background(), []string{"md2html", "css", "-p", "nope"}, env)
		if !errors.Is(err, md2html.ErrUnknownPreset) {
			t.Errorf("error = %v, want ErrUnknownPreset", err)
		}
	})
}
