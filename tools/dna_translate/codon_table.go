package dna_translate

import (
	"fmt"
	"strings"
)

// CodonTable maps a three letter codon to a single amino acid symbol.
// Codons missing from a table translate to Unknown.
type CodonTable map[string]rune

const (
	Unknown = 'X'
	Stop    = '*'
)

// BasicCode is the classroom code: four amino acids plus stops.
// Only TTA reads as leucine; TTG stays unmapped.
var BasicCode = CodonTable{
	// Alanine
	"AAA": 'A', "AAC": 'A',
	// Cysteine
	"CCG": 'C', "CCC": 'C',
	// Leucine
	"TTA": 'L',
	// Serine
	"AGT": 'S', "AGC": 'S',
	// Stop codons
	"TAA": '*', "TAG": '*', "TGA": '*',
}

// StandardCode is the full 64 codon nuclear genetic code
var StandardCode = CodonTable{
	// Phenylalanine
	"TTT": 'F', "TTC": 'F',
	// Leucine
	"TTA": 'L', "TTG": 'L', "CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	// Isoleucine
	"ATT": 'I', "ATC": 'I', "ATA": 'I',
	// Methionine (Start)
	"ATG": 'M',
	// Valine
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	// Serine
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S', "AGT": 'S', "AGC": 'S',
	// Proline
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	// Threonine
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	// Alanine
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	// Tyrosine
	"TAT": 'Y', "TAC": 'Y',
	// Histidine
	"CAT": 'H', "CAC": 'H',
	// Glutamine
	"CAA": 'Q', "CAG": 'Q',
	// Asparagine
	"AAT": 'N', "AAC": 'N',
	// Lysine
	"AAA": 'K', "AAG": 'K',
	// Aspartic Acid
	"GAT": 'D', "GAC": 'D',
	// Glutamic Acid
	"GAA": 'E', "GAG": 'E',
	// Cysteine
	"TGT": 'C', "TGC": 'C',
	// Tryptophan
	"TGG": 'W',
	// Arginine
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R', "AGA": 'R', "AGG": 'R',
	// Glycine
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
	// Stop codons
	"TAA": '*', "TAG": '*', "TGA": '*',
}

// TableByName resolves the -table flag
func TableByName(name string) (CodonTable, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "basic":
		return BasicCode, nil
	case "standard":
		return StandardCode, nil
	default:
		return nil, fmt.Errorf("unknown codon table %q (expected basic or standard)", name)
	}
}

// Lookup returns the symbol for codon, or Unknown
func (t CodonTable) Lookup(codon string) rune {
	if aa, ok := t[codon]; ok {
		return aa
	}
	return Unknown
}
