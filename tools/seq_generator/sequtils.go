package seq_generator

import (
	"math/rand/v2"
	"strings"
	"time"
)

func WrapFasta(seq string, width int) string {
	var out strings.Builder
	for i := 0; i < len(seq); i += width {
		end := min(i+width, len(seq))
		out.WriteString(seq[i:end] + "\n")
	}
	return out.String()
}

// NewRand returns a PCG backed generator; seed 0 seeds from the clock
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, 0))
}
