package dna_translate

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"bio_toolkit_go/logger"
	"bio_toolkit_go/utils"
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
	fs := flag.NewFlagSet("translate", flag.ContinueOnError) // Isolated flag set for "translate"

	seq := fs.String("seq", "", "DNA sequence to translate")
	inFile := fs.String("in_file", "", "FASTA file (plain or gzip); every record is translated")
	tableName := fs.String("table", "basic", "Codon table: basic or standard")
	normalize := fs.Bool("normalize", false, "Upper-case and strip spaces before translating")
	stop := fs.Bool("stop", false, "Stop translating after the first stop codon")
	revcomp := fs.Bool("revcomp", false, "Translate the reverse complement")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Bio Toolkit | translate - DNA to protein translation")
		fmt.Fprintln(os.Stderr, "Usage: bio_toolkit translate (-seq <DNA> | -in_file <FASTA>) [options]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v (use -h to view valid flags)", fs.Args())
	}
	if (*seq == "") == (*inFile == "") {
		return fmt.Errorf("exactly one of -seq or -in_file is required")
	}

	table, err := TableByName(*tableName)
	if err != nil {
		return err
	}
	opts := Options{Table: table, Normalize: *normalize, StopAtStop: *stop}

	prepare := func(s string) string {
		if *revcomp {
			return common.ReverseComplement(s)
		}
		return s
	}

	log := logger.Named("translate")

	if *seq != "" {
		fmt.Fprintln(out, TranslateWith(prepare(*seq), opts))
		return nil
	}

	records := 0
	err = common.StreamFastaFile(*inFile, func(id, s string) error {
		records++
		_, err := fmt.Fprintf(out, ">%s\n%s\n", id, TranslateWith(prepare(s), opts))
		return err
	})
	if err != nil {
		return err
	}
	log.Debug().Str("in_file", *inFile).Int("records", records).Str("table", *tableName).Msg("translated FASTA")
	return nil
}
