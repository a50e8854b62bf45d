package hamming

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

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

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hamming", flag.ContinueOnError)
	a := fs.String("a", "", "First string")
	b := fs.String("b", "", "Second string")
	pad := fs.Bool("pad", false, "Pad the shorter string with spaces instead of failing on unequal lengths")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Bio Toolkit | hamming - Hamming distance between two strings")
		fmt.Fprintln(os.Stderr, "Usage: bio_toolkit hamming -a <string> -b <string> [-pad]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v (use -h to view valid flags)", fs.Args())
	}

	var d int
	if *pad {
		d = PaddedDistance(*a, *b)
	} else {
		var err error
		if d, err = Distance(*a, *b); err != nil {
			return err
		}
	}
	log := logger.Named("hamming")
	log.Debug().Int("len_a", len(*a)).Int("len_b", len(*b)).Bool("pad", *pad).Int("distance", d).Msg("compared")
	_, err := fmt.Fprintln(out, d)
	return err
}
