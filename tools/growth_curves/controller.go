package growth_curves

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"bio_toolkit_go/logger"
)

func Run(args []string) {
	err := run(args, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	def := DefaultConfig()
	fs := flag.NewFlagSet("growth", flag.ContinueOnError) // Isolated flag set for "growth"

	curves := fs.Int("curves", 100, "Number of growth curves to generate")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")
	horizon := fs.Int("horizon", def.Horizon, "Number of time steps per curve")
	capacity := fs.Float64("capacity", def.Capacity, "Carrying capacity")
	initial := fs.Float64("initial", def.Initial, "Initial population")
	lagMin := fs.Int("lag_min", def.LagMin, "Shortest lag phase (time steps)")
	lagMax := fs.Int("lag_max", def.LagMax, "Longest lag phase (time steps, at most -horizon)")
	rateMin := fs.Float64("rate_min", def.RateMin, "Lowest growth rate")
	rateMax := fs.Float64("rate_max", def.RateMax, "Highest growth rate")
	noise := fs.Float64("noise", def.Noise, "Per-point noise as a +/- fraction (e.g. 0.05)")
	fraction := fs.Float64("fraction", def.Fraction, "Threshold fraction of each curve's maximum")
	outFile := fs.String("out_file", "", "Dataset CSV output (default: stdout)")
	thresholds := fs.Bool("thresholds", false, "Print threshold times instead of the dataset on stdout")
	plotFile := fs.String("plot", "", "Write a plot of the first curves (.svg, .png, .pdf)")
	plotCurves := fs.Int("plot_curves", 3, "Number of curves drawn with -plot")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Bio Toolkit | growth - Logistic growth curve simulator")
		fmt.Fprintln(os.Stderr, "Usage: bio_toolkit growth [options]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v (use -h to view valid flags)", fs.Args())
	}

	cfg := Config{
		Horizon:  *horizon,
		Capacity: *capacity,
		Initial:  *initial,
		LagMin:   *lagMin,
		LagMax:   *lagMax,
		RateMin:  *rateMin,
		RateMax:  *rateMax,
		Noise:    *noise,
		Fraction: *fraction,
	}

	runID := uuid.NewString()
	usedSeed := ResolveSeed(*seed)
	log := logger.Named("growth").With().Str("run_id", runID).Logger()

	ds, err := GenerateGrowthCurves(*curves, cfg, usedSeed)
	if err != nil {
		return err
	}
	log.Info().Int("curves", *curves).Uint64("seed", usedSeed).Int("rows", ds.Len()).Msg("generated growth curves")

	times := FindThresholdTimes(ds, cfg.Fraction)
	sum := Summarize(times)
	log.Info().
		Float64("fraction", cfg.Fraction).
		Int("reached", sum.Reached).
		Float64("mean", sum.Mean).
		Float64("stddev", sum.StdDev).
		Int("min", sum.Min).
		Int("max", sum.Max).
		Msg("threshold times")

	if *thresholds {
		if err := WriteThresholdCSV(stdout, times); err != nil {
			return fmt.Errorf("write thresholds: %w", err)
		}
	}

	switch {
	case *outFile != "":
		if err := writeCSVFile(*outFile, ds); err != nil {
			return err
		}
		log.Info().Str("path", *outFile).Msg("wrote dataset CSV")
	case !*thresholds:
		if err := WriteCSV(stdout, ds); err != nil {
			return fmt.Errorf("write dataset: %w", err)
		}
	}

	if *plotFile != "" {
		ids := ds.CurveIDs()
		if *plotCurves > 0 && *plotCurves < len(ids) {
			ids = ids[:*plotCurves]
		}
		if err := SavePlot(*plotFile, ds, ids); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		log.Info().Str("path", *plotFile).Int("curves", len(ids)).Msg("wrote plot")
	}
	return nil
}

func writeCSVFile(path string, ds Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, ds); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
