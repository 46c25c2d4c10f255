package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-slicer/internal/imaging"
	"github.com/ironsheep/image-slicer/internal/slicer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	prog := "image-slicer"
	if len(args) > 0 {
		prog = args[0]
	}

	// Handle --version and -v flags
	if len(args) > 1 {
		switch args[1] {
		case "--version", "-v", "version":
			fmt.Fprintf(stdout, "image-slicer %s\n", Version)
			fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
			fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printHelp(stdout)
			return 0
		}
	}

	if len(args) != 4 {
		fmt.Fprintf(stderr, "Usage: %s <input_image_path> <rows> <columns>\n", prog)
		return 1
	}

	// Configure logging to stderr (stdout carries the summary line)
	logger := log.New(stderr, "", log.Ldate|log.Ltime|log.Lshortfile)

	var opts slicer.Options
	if os.Getenv("IMAGE_SLICER_LOG_LEVEL") == "debug" {
		logger.Printf("image-slicer v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		opts.Logger = logger
	}

	grid, err := imaging.ParseGridSpec(args[2], args[3])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	result, err := slicer.Slice(context.Background(), args[1], grid, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, result.Summary())
	return 0
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "image-slicer - cut an image into a grid of JPEG tiles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: image-slicer <input_image_path> <rows> <columns>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tiles are written to sub_images/<name>/subimage_<column>_<row>.jpg,")
	fmt.Fprintln(w, "numbered from 1. Remainder pixels that do not fill a whole tile are dropped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  IMAGE_SLICER_LOG_LEVEL=debug    Log every tile written")
}
