// Package main is the entry point for the quill editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/quill/internal/app"
	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// exitInterrupted is the status after SIGINT or SIGTERM.
const exitInterrupted = 130

func main() {
	os.Exit(run())
}

// cliOptions holds parsed command line flags.
type cliOptions struct {
	configPath string
	logLevel   string
	logFile    string
	path       string
}

func run() int {
	cli, code, done := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if done {
		return code
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, logCloser, err := app.OpenLogFile(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logCloser.Close()
	logger = logger.WithField("session", app.NewSessionID())
	logger.Info("quill %s (%s, %s)", version, commit, date)

	application, err := app.New(app.Options{
		Path:    cli.path,
		Version: version,
		Config:  cfg,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open terminal: %v\n", err)
		return 1
	}
	if err := application.SetBackend(term); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set backend: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-signals
		logger.Warn("received %s, restoring terminal", sig)
		application.Shutdown()
		logCloser.Close()
		os.Exit(exitInterrupted)
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// loadConfig resolves the config file, environment and flag overrides.
func loadConfig(cli cliOptions) (*config.Config, error) {
	cfg, err := config.Load(config.Options{
		Path:     cli.configPath,
		Explicit: cli.configPath != "",
	})
	if err != nil {
		return nil, err
	}

	if cli.logLevel != "" {
		cfg.Log.Level = cli.logLevel
	}
	if cli.logFile != "" {
		cfg.Log.File = cli.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseFlags parses args. When done is set the program should exit with code
// without starting the editor.
func parseFlags(args []string, stdout, stderr io.Writer) (cli cliOptions, code int, done bool) {
	fs := flag.NewFlagSet("quill", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion bool
	var showHelp bool

	fs.StringVar(&cli.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&cli.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cli.logFile, "log-file", "", "Write logs to this file")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "quill - a minimal terminal text viewer\n\n")
		fmt.Fprintf(stderr, "Usage: quill [options] [file]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "Movement keys work in command mode only.\n")
		fmt.Fprintf(stderr, "  arrows, h j k l      Move the cursor\n")
		fmt.Fprintf(stderr, "  PageUp, PageDown     Move one screen up or down\n")
		fmt.Fprintf(stderr, "  Home, End            Move one screen width left or right\n")
		fmt.Fprintf(stderr, "  i, Insert / Escape   Enter insert mode / return to command mode\n")
		fmt.Fprintf(stderr, "  Ctrl+Q               Quit\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cli, 0, true
		}
		return cli, 2, true
	}

	if showHelp {
		fs.Usage()
		return cli, 0, true
	}

	if showVersion {
		fmt.Fprintf(stdout, "quill %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return cli, 0, true
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cli.path = fs.Arg(0)
	default:
		fmt.Fprintf(stderr, "Error: expected at most one file, got %d\n", fs.NArg())
		return cli, 2, true
	}

	return cli, 0, false
}
