package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/greenkey/internal/batch"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("greenkey %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("greenkey - replace the green screen behind decor sprites with transparency")
			fmt.Println()
			fmt.Println("Usage: greenkey [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  GREENKEY_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println()
			fmt.Println("Run from the project root. Files processed:")
			for _, p := range batch.DefaultConfig().Pairs {
				fmt.Printf("  %s -> %s\n", p.Input, p.Output)
			}
			return
		}
	}

	// Diagnostics go to stderr, progress to stdout
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("GREENKEY_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("greenkey v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	results := batch.New(os.Stdout, debug).Run(batch.DefaultConfig())

	// Per-file failures never change the exit status
	s := batch.Summarize(results)
	fmt.Printf("Done: %d saved, %d skipped, %d failed\n", s.Saved, s.Skipped, s.Failed)
}
