package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/automaxprocs/maxprocs"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/typography"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand indicates a missing or unrecognized command.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	if isVerbose(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain runs the command and reports its error with a hint. It returns
// the process exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	warnUnknownEnvVars(env.Stderr)

	err := run(ctx, args, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// run dispatches args[1] to its command.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "convert":
		return runConvert(ctx, rest, env)
	case "watch":
		return runWatch(ctx, rest, env)
	case "css":
		return runCSS(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, md2html.ErrUnknownPreset):
		return hints.ForPresetNotFound(typography.PresetNames())
	case errors.Is(err, md2html.ErrUnterminatedFrontMatter),
		errors.Is(err, md2html.ErrMalformedFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, md2html.ErrInvalidLink),
		errors.Is(err, md2html.ErrInvalidImage),
		errors.Is(err, md2html.ErrEmptyCodeBlock):
		return hints.ForContentError()
	case errors.Is(err, ErrNoMarkdownFiles):
		return hints.ForNoMarkdownFiles()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
