package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/mrta-suitability/internal/dataset"
	"github.com/danielpatrickdp/mrta-suitability/internal/suitability"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "output SQLite database path")
	steps := flag.Int("steps", 21, "grid steps per input axis")
	capability := flag.Float64("capability", 1, "fixed capability value for the sweep")
	notes := flag.String("notes", "", "free-form note stored with the run")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: surface-export --db path/to/surface.db [--steps N] [--capability 0|1] [--notes text]")
		os.Exit(2)
	}

	if err := run(*dbPath, *steps, *capability, *notes); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath string, steps int, capability float64, notes string) error {
	model, err := suitability.BuildModel()
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}

	cfg := dataset.SweepConfig{Steps: steps, Capability: capability}
	samples, err := dataset.Sweep(model, cfg)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	store, err := dataset.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	runID, err := store.SaveRun(cfg, notes, samples)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	fmt.Printf("run %s: %d samples (%d^3 grid, capability=%g) written to %s\n",
		runID, len(samples), steps, capability, dbPath)
	return nil
}

// #endregion main
