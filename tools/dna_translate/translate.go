package dna_translate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options controls how a sequence is prepared and read
type Options struct {
	Table      CodonTable // nil means BasicCode
	Normalize  bool       // upper-case and drop spaces before reading codons
	StopAtStop bool       // end after the first stop symbol, keeping it
}

// Translate reads seq as consecutive, non-overlapping codons from position 0
// using BasicCode. Matching is case sensitive and a trailing partial codon is
// dropped.
func Translate(seq string) string {
	return TranslateWith(seq, Options{})
}

// TranslateWith is Translate with an explicit table and preparation options.
func TranslateWith(seq string, opts Options) string {
	table := opts.Table
	if table == nil {
		table = BasicCode
	}
	if opts.Normalize {
		seq = Normalize(seq)
	}

	var protein strings.Builder
	protein.Grow(len(seq) / 3)
	for i := 0; i+3 <= len(seq); i += 3 {
		aa := table.Lookup(seq[i : i+3])
		protein.WriteRune(aa)
		if opts.StopAtStop && aa == Stop {
			break
		}
	}
	return protein.String()
}

// Normalize upper-cases seq and removes spaces
func Normalize(seq string) string {
	return strings.ReplaceAll(cases.Upper(language.Und).String(seq), " ", "")
}
