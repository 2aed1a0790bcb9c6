// domesim computes sun and moon positions over the dome and reports
// alignments and eclipses.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/domesim/internal/config"
	"github.com/Faultbox/domesim/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("starting", zap.String("command", args[0]), zap.Strings("args", args[1:]))

	if err := run(cfg, args[0], args[1:], os.Stdout); err != nil {
		logger.Debug("command failed", zap.String("command", args[0]), zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()
}

// run dispatches one subcommand. Output goes to w; errors are returned so
// main decides the exit code.
func run(cfg *config.Config, command string, args []string, w io.Writer) error {
	switch command {
	case "state":
		return cmdState(cfg, args, w)
	case "animate":
		return cmdAnimate(cfg, args, w)
	case "scan":
		return cmdScan(cfg, args, w)
	case "shadow":
		return cmdShadow(cfg, args, w)
	case "config":
		return cmdConfig(cfg, args, w)
	case "help", "-h", "--help":
		printUsage(w)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `domesim - sun and moon geometry over the dome

Usage:
  domesim [global options] <command> [options]

Global options:
  -config <file>       Config file (default ./config.yaml, then the user config dir)
  -debug               Enable debug logging
  -log-file <file>     Also write logs to a rotating file
  -moon-cycle <days>   Moon cycle length
  -light-spot <size>   Light spot size used for eclipse detection

Commands:
  state    [-day N -hour H -moon D | -at RFC3339] [-json]   One frame
  animate  [-ticks N -step H -advance-moon] [-json]         Headless tick loop
  scan     [-hour-step H -moon-step D -moon D -workers N]   Alignments over a year
  shadow   [-day N -hour H -moon D] [-json]                 Shadow-cast model
  config   [-o file]                                        Print or save the config

Examples:
  domesim state -day 172 -hour 12 -moon 14.75
  domesim state -at 2024-01-25T17:54:00Z -json
  domesim animate -ticks 480 -step 0.1 -advance-moon
  domesim -moon-cycle 30 scan -moon-step 0.5`)
}
