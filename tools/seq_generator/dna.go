package seq_generator

import (
	"math/rand/v2"
	"strings"
)

const nucleotides = "ATGC"

// GenerateDNA returns a DNA or RNA sequence whose expected GC fraction is gcBias
func GenerateDNA(rng *rand.Rand, length int, gcBias float64, rna bool) string {
	cWeight := gcBias / 2
	aWeight := (1 - gcBias) / 2
	tWeight := aWeight // AT bias

	seq := make([]byte, length)
	for i := range seq {
		r := rng.Float64()
		switch {
		case r < aWeight:
			seq[i] = 'A'
		case r < aWeight+tWeight:
			seq[i] = 'T'
		case r < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}

	s := string(seq)
	if rna {
		s = strings.ReplaceAll(s, "T", "U")
	}
	return s
}

// SampleDNA draws every base uniformly from A, T, G and C
func SampleDNA(rng *rand.Rand, length int) string {
	seq := make([]byte, length)
	for i := range seq {
		seq[i] = nucleotides[rng.IntN(len(nucleotides))]
	}
	return string(seq)
}
