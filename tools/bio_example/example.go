// Package bio_example walks through every toolkit component on generated
// data: translation, growth curves, threshold times and Hamming distance.
package bio_example

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"text/tabwriter"

	"bio_toolkit_go/config"
	"bio_toolkit_go/logger"
	"bio_toolkit_go/tools/dna_translate"
	"bio_toolkit_go/tools/growth_curves"
	"bio_toolkit_go/tools/hamming"
	"bio_toolkit_go/tools/seq_generator"
)

// Options for one example run
type Options struct {
	Seed      uint64
	DNALength int
	Curves    int
	HeadRows  int
	PlotPath  string // optional plot of the curves
	CSVPath   string // optional dataset CSV
	StringA   string
	StringB   string
}

func DefaultOptions() Options {
	return Options{
		DNALength: 45,
		Curves:    3,
		HeadRows:  5,
		StringA:   "biodata_user",
		StringB:   "data_science",
	}
}

// Run takes key=value arguments: seed=, curves=, length=, plot=, csv=
func Run(args []string) {
	opts, err := optionsFromArgs(args)
	if err == nil {
		err = Example(os.Stdout, opts)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func optionsFromArgs(args []string) (Options, error) {
	params := config.ParseParams("example", args)
	opts := DefaultOptions()

	var err error
	if opts.Seed, err = params.Uint64("seed", 0); err != nil {
		return opts, err
	}
	if opts.Curves, err = params.Int("curves", opts.Curves); err != nil {
		return opts, err
	}
	if opts.DNALength, err = params.Int("length", opts.DNALength); err != nil {
		return opts, err
	}
	opts.PlotPath = params.String("plot", "")
	opts.CSVPath = params.String("csv", "")
	opts.StringA = params.String("a", opts.StringA)
	opts.StringB = params.String("b", opts.StringB)
	return opts, nil
}

// Example prints each section to out
func Example(out io.Writer, opts Options) error {
	log := logger.Named("example")
	seed := growth_curves.ResolveSeed(opts.Seed)
	log.Debug().Uint64("seed", seed).Int("curves", opts.Curves).Msg("starting example")

	if opts.DNALength < 0 {
		return fmt.Errorf("length must not be negative")
	}

	// Part 1: DNA translation
	fmt.Fprintln(out, "\n===== DNA TRANSLATION =====")
	dna := seq_generator.SampleDNA(seq_generator.NewRand(seed), opts.DNALength)
	protein := dna_translate.TranslateWith(dna, dna_translate.Options{Normalize: true, StopAtStop: true})
	fmt.Fprintf(out, "DNA sequence: %s\n", dna)
	fmt.Fprintf(out, "Protein: %s\n", protein)

	// Part 2: growth curves
	fmt.Fprintln(out, "\n===== POPULATION GROWTH CURVES =====")
	// second PCG stream so the curves do not replay the DNA draws
	sim, err := growth_curves.NewSimulator(growth_curves.DefaultConfig(), rand.NewPCG(seed, 1))
	if err != nil {
		return err
	}
	ds, err := sim.Batch(opts.Curves)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "First few rows of growth data:")
	if err := writeWideHead(out, ds, opts.HeadRows); err != nil {
		return err
	}

	if opts.PlotPath != "" {
		if err := growth_curves.SavePlot(opts.PlotPath, ds, nil); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		fmt.Fprintf(out, "Plot written to %s\n", opts.PlotPath)
	}
	if opts.CSVPath != "" {
		f, err := os.Create(opts.CSVPath)
		if err != nil {
			return err
		}
		if err := growth_curves.WriteCSV(f, ds); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Dataset written to %s\n", opts.CSVPath)
	}

	// Part 3: time to reach 80% of maximum
	fmt.Fprintln(out, "\n===== TIME TO REACH 80% OF MAXIMUM =====")
	times := growth_curves.Find80PercentTime(ds)
	ids := make([]int, 0, len(times))
	for id := range times {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if times[id] == growth_curves.NotReached {
			fmt.Fprintf(out, "Curve_%d never reaches 80%%\n", id+1)
			continue
		}
		fmt.Fprintf(out, "Curve_%d reaches 80%% at time: %d\n", id+1, times[id])
	}

	// Part 4: Hamming distance
	fmt.Fprintln(out, "\n===== HAMMING DISTANCE =====")
	d, err := hamming.Distance(opts.StringA, opts.StringB)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "String 1: %s\n", opts.StringA)
	fmt.Fprintf(out, "String 2: %s\n", opts.StringB)
	fmt.Fprintf(out, "Hamming distance: %d\n", d)
	return nil
}

// writeWideHead prints the first rows with one column per curve
func writeWideHead(out io.Writer, ds growth_curves.Dataset, rows int) error {
	curves := ds.Curves()
	ids := ds.CurveIDs()

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Time\t")
	for _, id := range ids {
		fmt.Fprintf(tw, "Curve_%d\t", id+1)
	}
	fmt.Fprintln(tw)
	for t := 0; t < min(rows, ds.Horizon); t++ {
		fmt.Fprintf(tw, "%d\t", t)
		for _, id := range ids {
			fmt.Fprintf(tw, "%.3f\t", curves[id][t])
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
