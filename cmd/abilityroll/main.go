// Package main provides the abilityroll CLI: it rolls a set of six ability
// scores with the selected strategy, or averages many such sets.
//
// Usage:
//
//	abilityroll [flags] [traditional|drop-twice] [N]
//
// With N, the per-position averages over N trials are printed instead of a
// single set.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/abilityroll/internal/config"
	"github.com/cory-johannsen/abilityroll/internal/game/abilities"
	"github.com/cory-johannsen/abilityroll/internal/game/dice"
	"github.com/cory-johannsen/abilityroll/internal/observability"
	"github.com/cory-johannsen/abilityroll/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("abilityroll: %v", err)
	}
}

// run parses args, rolls, and writes the result to stdout. Logs go to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	start := time.Now()

	fs := flag.NewFlagSet("abilityroll", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to optional YAML configuration file")
	format := fs.String("format", "", "output format: text, json, or yaml")
	seed := fs.Uint64("seed", 0, "seed for a reproducible run (0 uses crypto/rand)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, or error")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Output.Format = *format
		case "seed":
			cfg.Roll.Seed = *seed
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	if err := applyPositional(&cfg.Roll, fs.Args()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := observability.NewLoggerTo(cfg.Logging, stderr)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	strategy, err := abilities.ParseStrategy(cfg.Roll.Strategy)
	if err != nil {
		return err
	}
	outFormat, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	src := dice.NewCryptoSource()
	if cfg.Roll.Seed != 0 {
		src = dice.NewSeededSource(cfg.Roll.Seed)
	}
	gen := abilities.NewGenerator(dice.NewD6Stream(src), logger)

	logger.Debug("rolling",
		zap.Stringer("strategy", strategy),
		zap.Int("trials", cfg.Roll.Trials),
		zap.Uint64("seed", cfg.Roll.Seed),
		zap.String("format", string(outFormat)),
	)

	if cfg.Roll.Trials > 0 {
		acc, err := gen.Average(strategy, cfg.Roll.Trials)
		if err != nil {
			return err
		}
		err = report.WriteAverages(stdout, outFormat, strategy, acc)
		logger.Debug("done", zap.Duration("elapsed", time.Since(start)))
		return err
	}

	outcome, err := gen.Trial(strategy)
	if err != nil {
		return err
	}
	err = report.WriteOutcome(stdout, outFormat, strategy, outcome)
	logger.Debug("done", zap.Duration("elapsed", time.Since(start)))
	return err
}

// applyPositional reads an optional strategy name and an optional trial
// count, in either order.
func applyPositional(roll *config.RollConfig, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments: %v", args)
	}
	var sawStrategy, sawTrials bool
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			if sawTrials {
				return fmt.Errorf("trial count given twice: %q", arg)
			}
			if n < 1 {
				return fmt.Errorf("%w: trial count must be >= 1, got %d", abilities.ErrEmptyAverage, n)
			}
			roll.Trials = n
			sawTrials = true
			continue
		}
		if sawStrategy {
			return fmt.Errorf("strategy given twice: %q", arg)
		}
		if _, err := abilities.ParseStrategy(arg); err != nil {
			return err
		}
		roll.Strategy = arg
		sawStrategy = true
	}
	return nil
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage: %s [flags] [strategy] [N]\n\n", fs.Name())
	fmt.Fprintln(w, "Rolls six ability scores. With N, prints per-position averages over N trials.")
	fmt.Fprintln(w, "\nStrategies:")
	for _, s := range abilities.Strategies() {
		fmt.Fprintf(w, "  %-12s %s\n", s, s.Description())
	}
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}
