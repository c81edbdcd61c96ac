package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/sortkit/pkg/types"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	limitsName string
)

var rootCmd = &cobra.Command{
	Use:   "sortctl",
	Short: "Run and measure instrumented sort strategies",
	Long: `sortctl runs sorting algorithms against an instrumented array group
and reports how many tracked element accesses each one performs. It can run a
single strategy, optionally paced and observed, or benchmark many strategies
across input sizes.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&limitsName, "limits", "default", "Input limits preset: default, relaxed or strict")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// selectedLimits resolves the --limits preset.
func selectedLimits() (types.Limits, error) {
	switch limitsName {
	case "", "default":
		return types.DefaultLimits(), nil
	case "relaxed":
		return types.RelaxedLimits(), nil
	case "strict":
		return types.StrictLimits(), nil
	default:
		return types.Limits{}, fmt.Errorf("--limits %q: %w", limitsName, types.ErrInvalidInput)
	}
}
