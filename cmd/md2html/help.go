package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown files to HTML")
	fmt.Fprintln(w, "  watch      Convert a directory again on every change")
	fmt.Fprintln(w, "  css        Print the stylesheet")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printRenderFlags prints the flags shared by convert, watch and css.
func printRenderFlags(w io.Writer) {
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -p, --preset <name>       Typography preset")
	fmt.Fprintln(w, "      --basic               Use the basic renderer")
	fmt.Fprintln(w, "      --highlight <mode>    Syntax highlighting: off, selected, all")
	fmt.Fprintln(w, "      --languages <list>    Languages for --highlight=selected")
	fmt.Fprintln(w, "      --math                Render $...$ and $$...$$ as math")
	fmt.Fprintln(w, "      --no-marks            Leave ==text== unchanged")
	fmt.Fprintln(w, "      --code-theme <name>   Chroma style for code colors")
	fmt.Fprintln(w, "      --stylesheet <path>   Extra CSS appended to the stylesheet")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom presets, styles and templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	printConvertFlags(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html watch <dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every markdown file under dir, then convert files again")
	fmt.Fprintln(w, "as they change. Stops on Ctrl+C.")
	fmt.Fprintln(w)
	printConvertFlags(w)
}

func printConvertFlags(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --html-doc            Write complete HTML documents")
	fmt.Fprintln(w, "      --css                 Write styles.css next to the output")
	fmt.Fprintln(w, "      --inline-css          Embed the stylesheet in each fragment")
	fmt.Fprintln(w, "      --safe                Render invalid documents as escaped text")
	fmt.Fprintln(w, "      --sanitize            Sanitize the rendered HTML")
	fmt.Fprintln(w, "      --base-url <url|dir>  Resolve relative links against a base")
	fmt.Fprintln(w, "      --date <value>        Date for headers without one (auto, auto:FORMAT, text)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Table of Contents:")
	fmt.Fprintln(w, "      --toc                 Render a table of contents")
	fmt.Fprintln(w, "      --toc-title <s>       TOC heading text")
	fmt.Fprintln(w, "      --toc-depth <n>       Max heading depth (1-6)")
	fmt.Fprintln(w, "      --toc-numbered        Number TOC entries")
	fmt.Fprintln(w)
	printRenderFlags(w)
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet for the selected preset and renderer.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Write the stylesheet to a file")
	fmt.Fprintln(w)
	printRenderFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
