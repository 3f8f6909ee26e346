// filtrate - filtration builder and auditor
//
// filtrate samples (or reads) a point cloud, builds its flag filtration,
// audits the result and writes a per-dimension CSV report.
//
// Inputs, first match wins:
//   - -edges FILE   graded edge list ("u v grade" lines, real grades)
//   - -matrix FILE  lower-triangular or full distance matrix
//   - the dataset section of the config (sampled, optionally cached)
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/filtra/internal/config"
	"github.com/katalvlaran/filtra/internal/logging"
)

const version = "0.3.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes one build and returns the process exit code.
// Deferred cleanup (signal handler, report file) completes before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("filtrate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Config file path (YAML)")
	initConfig := fs.Bool("init", false, "Write the default config to -config and exit")
	showVersion := fs.Bool("version", false, "Show version and exit")

	kind := fs.String("dataset", "", "Sampler: circle, sphere, torus, swissroll, uniform")
	points := fs.Int("points", 0, "Number of sampled points")
	seed := fs.Int64("seed", 0, "Sampler seed")
	noise := fs.Float64("noise", 0, "Gaussian jitter added to samples")
	maxDim := fs.Int("max-dim", 0, "Maximum simplex dimension")
	threshold := fs.Float64("threshold", 0, "Edge length cut-off")
	bigraded := fs.Bool("bigraded", false, "Build the codensity x distance bifiltration")
	k := fs.Int("k", 0, "Codensity neighbour rank (with -bigraded)")
	cacheDir := fs.String("cache", "", "Distance-matrix cache directory")
	out := fs.String("out", "", "CSV report path (default stdout)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error")
	edgesPath := fs.String("edges", "", "Read a graded edge list instead of sampling")
	matrixPath := fs.String("matrix", "", "Read a distance matrix instead of sampling")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *showVersion {
		fmt.Fprintf(stdout, "filtrate %s\n", version)
		return exitOK
	}

	if *initConfig {
		if *configPath == "" {
			fmt.Fprintln(stderr, "-init needs -config")
			return exitUsage
		}
		if err := config.Default().Save(*configPath); err != nil {
			fmt.Fprintf(stderr, "Failed to initialize config: %v\n", err)
			return exitError
		}
		fmt.Fprintf(stdout, "Config initialized at: %s\n", *configPath)
		return exitOK
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitError
	}

	// Flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dataset":
			cfg.Dataset.Kind = *kind
		case "points":
			cfg.Dataset.Points = *points
		case "seed":
			cfg.Dataset.Seed = *seed
		case "noise":
			cfg.Dataset.Noise = *noise
		case "max-dim":
			cfg.Build.MaxDim = *maxDim
		case "threshold":
			cfg.Build.Threshold = *threshold
		case "bigraded":
			cfg.Build.Bigraded = *bigraded
		case "k":
			cfg.Build.K = *k
		case "cache":
			cfg.Cache.Dir = *cacheDir
		case "out":
			cfg.Report.Path = *out
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	log := logging.NewDefaultLogger(stderr, level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w := stdout
	if cfg.Report.Path != "" {
		f, err := os.Create(cfg.Report.Path)
		if err != nil {
			log.Error("create report", "path", cfg.Report.Path, "err", err)
			return exitError
		}
		defer f.Close()
		w = f
	}

	in := Input{EdgesPath: *edgesPath, MatrixPath: *matrixPath}
	if _, err := Run(ctx, cfg, in, log, w); err != nil {
		log.Error("run failed", "err", err)
		return exitError
	}

	return exitOK
}
