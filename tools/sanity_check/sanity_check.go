package sanity_check

import (
	"fmt"
	"io"
	"os"

	"bio_toolkit_go/config" // Version control file
	"bio_toolkit_go/tools/dna_translate"
	"bio_toolkit_go/tools/growth_curves"
	"bio_toolkit_go/tools/hamming"
)

// Run prints the version and re-checks a known answer for every component.
func Run(args []string) {
	if err := Check(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Sanity check failed:", err)
		os.Exit(1)
	}
}

func Check(out io.Writer) error {
	if got := dna_translate.Translate("AACCCGTTG"); got != "ACX" {
		return fmt.Errorf("translate: got %q, want %q", got, "ACX")
	}

	d, err := hamming.Distance("biodata_user", "data_science")
	if err != nil {
		return fmt.Errorf("hamming: %w", err)
	}
	if d != 12 {
		return fmt.Errorf("hamming: got %d, want 12", d)
	}

	cfg := growth_curves.DefaultConfig()
	ds, err := growth_curves.GenerateGrowthCurves(1, cfg, 1)
	if err != nil {
		return fmt.Errorf("growth: %w", err)
	}
	curve := ds.Curve(0)
	for t := 1; t < len(curve); t++ {
		if curve[t] < curve[t-1] || curve[t] > cfg.Capacity {
			return fmt.Errorf("growth: curve misbehaves at t=%d", t)
		}
	}
	if at := growth_curves.Find80PercentTime(ds)[0]; at == growth_curves.NotReached {
		return fmt.Errorf("growth: 80%% threshold not reached")
	}

	fmt.Fprintf(out, "Successfully running Bio Toolkit! (%s)\n", config.Main_version)
	return nil
}
