package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/ironsheep/rhinozelfant/internal/batch"
	"github.com/ironsheep/rhinozelfant/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "rhinozelfant %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printUsage(stdout)
			return 0
		}
	}

	// Logs go to stderr; stdout carries the MCP protocol in serve mode.
	logger := log.New(stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
	log.SetOutput(stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("RHINOZELFANT_LOG_LEVEL") == "debug"
	if debug {
		logger.Printf("rhinozelfant v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if len(args) > 0 && args[0] == "serve" {
		server.Version = Version
		srv := server.NewWithLogger(logger, debug)
		if err := srv.Run(); err != nil {
			logger.Printf("Server error: %v", err)
			return 1
		}
		return 0
	}

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	cfg.Debug = debug

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := batch.NewRunner(cfg, logger).Run(ctx)
	if summary != nil {
		logger.Printf("Processed %d images: %d succeeded, %d failed",
			len(summary.Results), summary.Succeeded(), summary.Failed())
	}
	if err != nil {
		logger.Printf("Error: %v", err)
		return 1
	}
	return 0
}

// parseFlags builds a batch configuration from command-line flags, starting
// from batch.DefaultConfig.
func parseFlags(args []string, output io.Writer) (batch.Config, error) {
	cfg := batch.DefaultConfig()

	fs := flag.NewFlagSet("rhinozelfant", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.InputDir, "input", cfg.InputDir, "Directory containing the input images")
	fs.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Directory to write the result images to")
	fs.StringVar(&cfg.Prefix, "prefix", cfg.Prefix, "File name prefix before the sequence number")
	fs.StringVar(&cfg.Ext, "ext", cfg.Ext, "File extension, including the dot")
	fs.IntVar(&cfg.First, "first", cfg.First, "First sequence number")
	fs.IntVar(&cfg.Last, "last", cfg.Last, "Last sequence number")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of images processed at once")
	fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "Scan rows of each image concurrently")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(output, err)
		return cfg, err
	}
	return cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "rhinozelfant - whiten neighboring pixels of identical color")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  rhinozelfant [flags]    Process <input>/<prefix>N<ext> into <output>")
	fmt.Fprintln(w, "  rhinozelfant serve      Run as an MCP server over stdin/stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -input DIR       Input directory (default ../input)")
	fmt.Fprintln(w, "  -output DIR      Output directory (default ../output)")
	fmt.Fprintln(w, "  -prefix NAME     File name prefix (default rhinozelfant)")
	fmt.Fprintln(w, "  -ext EXT         File extension (default .png)")
	fmt.Fprintln(w, "  -first N         First sequence number (default 1)")
	fmt.Fprintln(w, "  -last N          Last sequence number (default 9)")
	fmt.Fprintln(w, "  -workers N       Images processed at once (default 1)")
	fmt.Fprintln(w, "  -parallel        Scan rows of each image concurrently")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  RHINOZELFANT_LOG_LEVEL=debug    Enable debug logging")
}
