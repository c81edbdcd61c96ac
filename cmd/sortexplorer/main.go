package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/sortkit/cmd/sortexplorer/logger"
	"github.com/joshuapare/sortkit/pkg/sortdemo"
	"github.com/joshuapare/sortkit/pkg/types"
)

const (
	// fpsEnv overrides the repaint rate.
	fpsEnv = "SORTEXPLORER_FPS"
	// logLevelEnv sets the session log level and enables the log.
	logLevelEnv = "SORTEXPLORER_LOG_LEVEL"
)

func main() {
	// Parse flags first (before positional args)
	args := os.Args[1:]
	debugMode := false

	// Extract --debug/-d flag
	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	logOpts, err := logOptions(debugMode, os.Getenv(logLevelEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) > 0 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("sortexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		}
	}

	cfg, err := parseConfig(filteredArgs, os.Getenv(fpsEnv))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}
	logger.L.Info("starting sortexplorer", "algorithm", cfg.Algorithm, "size", cfg.Size,
		"fps", cfg.FPS, "level", logOpts.Level)

	m := NewModel(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		logger.L.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		if err := model.Close(); err != nil {
			logger.L.Warn("error closing resources", "error", err)
		}
	}

	logger.L.Info("sortexplorer exited normally")
}

// logOptions enables the session log for --debug or a level override. The
// level defaults to debug so the group's structural records are kept.
func logOptions(debug bool, level string) (logger.Options, error) {
	opts := logger.Options{Enabled: debug, Level: slog.LevelDebug}
	if level == "" {
		return opts, nil
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return opts, fmt.Errorf("%s: %w", logLevelEnv, err)
	}
	opts.Enabled = true
	opts.Level = lvl
	return opts, nil
}

// parseConfig reads the optional positional algorithm and size, and the FPS
// override.
func parseConfig(args []string, fps string) (Config, error) {
	cfg := DefaultConfig()
	limits := types.DefaultLimits()

	if len(args) > 2 {
		return cfg, fmt.Errorf("too many arguments: %v", args)
	}
	if len(args) > 0 {
		if _, err := sortdemo.Resolve(args[0]); err != nil {
			return cfg, err
		}
		cfg.Algorithm = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return cfg, fmt.Errorf("size %q: %w", args[1], types.ErrInvalidInput)
		}
		if err := limits.CheckSize(n); err != nil {
			return cfg, err
		}
		cfg.Size = n
	}
	if fps != "" {
		n, err := strconv.Atoi(fps)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("%s=%q: %w", fpsEnv, fps, types.ErrInvalidInput)
		}
		cfg.FPS = min(n, 240)
	}
	return cfg, nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: sortexplorer [options] [algorithm] [size]\n")
	fmt.Fprintf(os.Stderr, "Try 'sortexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("sortexplorer - Watch instrumented sort strategies run")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  sortexplorer [options] [algorithm] [size]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Runs a sort strategy on a paced, instrumented array and draws every")
	fmt.Println("  element as a bar. The last read is highlighted in cyan, the last")
	fmt.Println("  write in magenta.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    →/l, ←/h    Next / previous algorithm")
	fmt.Println("    i           Cycle input kind")
	fmt.Println("    r           Restart with new input")
	fmt.Println("    +, -        Faster / slower")
	fmt.Println("    space       Toggle pacing")
	fmt.Println("    s           Finish the run unpaced")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.sortexplorer/logs/")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Printf("  %s        Maximum repaints per second (default 30)\n", fpsEnv)
	fmt.Printf("  %s  Log at debug, info, warn or error (implies --debug)\n", logLevelEnv)
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  sortexplorer")
	fmt.Println("  sortexplorer heap-merge 120")
	fmt.Println()
	fmt.Println("For non-interactive runs and benchmarks, use the 'sortctl' command instead.")
}
