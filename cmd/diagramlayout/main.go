// Command diagramlayout computes an ir.Layout from a parsed diagram IR and an optional
// config/theme overlay. Per spec.md §1 the Parser (Mermaid text -> IR) and Renderer
// (Layout -> SVG) are external collaborators; this binary's contract starts after the
// parser and stops before the renderer, so -i/--input reads IR JSON rather than Mermaid
// source and the only -e/--outputFormat this binary can honor is "json".
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/inkmesh/diagramlayout/config"
	"github.com/inkmesh/diagramlayout/internal/preview"
	"github.com/inkmesh/diagramlayout/internal/version"
	"github.com/inkmesh/diagramlayout/ir"
	"github.com/inkmesh/diagramlayout/layout"
)

// errFlagParse is a sentinel error indicating flag parsing failed. The flag package already
// printed the error, so main should not print again.
var errFlagParse = errors.New("flag parse error")

func main() {
	code, err := run(os.Args, os.Stdin, os.Stdout, os.Stderr)
	if err != nil && err != errFlagParse {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	os.Exit(code)
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) (int, error) {
	if len(args) >= 2 {
		switch args[1] {
		case "-h", "--help", "help":
			usage(wErr)
			return 0, nil
		case "version":
			_, _ = fmt.Fprintln(w, version.Version())
			return 0, nil
		case "preview":
			return runPreview(args[2:], wErr)
		}
	}
	return runLayout(args[1:], r, w, wErr)
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "diagramlayout computes a diagram Layout from a parsed IR")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "usage: diagramlayout [flags]")
	_, _ = fmt.Fprintln(w, "       diagramlayout preview [flags] <ir-file>")
	_, _ = fmt.Fprintln(w, "       diagramlayout version")
}

func runLayout(args []string, r io.Reader, w io.Writer, wErr io.Writer) (code int, err error) {
	flags := flag.NewFlagSet("diagramlayout", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: diagramlayout [flags]")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	input := flags.String("i", "-", "input IR JSON file, or - for stdin")
	flags.StringVar(input, "input", "-", "input IR JSON file, or - for stdin")
	output := flags.String("o", "-", "output file, or - for stdout")
	flags.StringVar(output, "output", "-", "output file, or - for stdout")
	outputFormat := flags.String("e", "json", "output format; only \"json\" is supported by this binary (Renderer is an external collaborator)")
	flags.StringVar(outputFormat, "outputFormat", "json", "output format; only \"json\" is supported by this binary (Renderer is an external collaborator)")
	configFile := flags.String("c", "", "config JSON overlay file")
	flags.StringVar(configFile, "configFile", "", "config JSON overlay file")
	width := flags.Float64("w", 0, "override the computed Layout.Width (0 disables)")
	height := flags.Float64("H", 0, "override the computed Layout.Height (0 disables)")
	dumpIR := flags.Bool("dump-ir", false, "print the parsed input IR back out instead of computing a Layout, for debugging")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, nil
		}
		return 2, errFlagParse
	}

	if *outputFormat != "json" {
		return 2, fmt.Errorf("outputFormat %q not supported: this binary stops at the Layout; SVG/PNG rendering is the external Renderer's job (spec.md §1)", *outputFormat)
	}

	err = profile(func() error {
		in, err := openInput(*input, r)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = in.Close() }()

		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("error reading input: %w", err)
		}

		var g ir.Graph
		if err := json.Unmarshal(data, &g); err != nil {
			return fmt.Errorf("invalid input IR: %w", err)
		}

		out, err := openOutput(*output, w)
		if err != nil {
			return fmt.Errorf("failed to open output: %w", err)
		}
		defer func() { _ = out.Close() }()

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		if *dumpIR {
			return enc.Encode(g)
		}

		cfg := config.Default()
		if *configFile != "" {
			overlay, err := os.ReadFile(*configFile)
			if err != nil {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			cfg, err = config.Overlay(cfg, overlay)
			if err != nil {
				return fmt.Errorf("invalid config overlay: %w", err)
			}
		}

		l := layout.Compute(g, config.DefaultTheme(), cfg)
		if *width > 0 {
			l.Width = *width
		}
		if *height > 0 {
			l.Height = *height
		}

		return enc.Encode(l)
	}, *cpuProfile, *memProfile)
	if err != nil {
		return 1, err
	}
	return 0, nil
}

// nopCloser wraps a reader/writer that must not be closed (stdin/stdout).
type nopCloser struct {
	io.Reader
	io.Writer
}

func (nopCloser) Close() error { return nil }

func openInput(path string, fallback io.Reader) (io.ReadCloser, error) {
	if path == "-" || path == "" {
		return nopCloser{Reader: fallback}, nil
	}
	return os.Open(path)
}

func openOutput(path string, fallback io.Writer) (io.WriteCloser, error) {
	if path == "-" || path == "" {
		return nopCloser{Writer: fallback}, nil
	}
	return os.Create(path)
}

func profile(fn func() error, cpuProfile, memProfile string) error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := fn()
	if err != nil {
		return err
	}

	if memProfile != "" {
		f, err := os.Create(memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %v", err)
		}
		defer func() { _ = f.Close() }()
		runtime.GC() // materialize all statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %v", err)
		}
	}

	return nil
}

func runPreview(args []string, wErr io.Writer) (int, error) {
	flags := flag.NewFlagSet("preview", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: diagramlayout preview [flags] <ir-file>")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	port := flags.String("port", "0", "HTTP server port (0 for a random available port)")
	debug := flags.Bool("debug", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, nil
		}
		return 2, errFlagParse
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2, nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p, err := preview.New(preview.Config{
		File:   flags.Arg(0),
		Port:   *port,
		Debug:  *debug,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		return 1, err
	}
	if err := p.Watch(ctx); err != nil {
		return 1, err
	}
	return 0, nil
}
