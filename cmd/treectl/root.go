package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	asciiOut bool
	folded   bool
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Build and inspect hash-indexed trees",
	Long: `treectl drives an in-memory hash-indexed tree from a simple
line-oriented script: insert keys, attach them under parents, reparent,
erase subtrees, and print the resulting hierarchy.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&asciiOut, "ascii", false, "ASCII-only tree rendering")
	rootCmd.PersistentFlags().BoolVar(&folded, "folded", false, "Case-insensitive keys")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
