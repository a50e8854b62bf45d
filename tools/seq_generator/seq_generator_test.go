package seq_generator

import (
	"bytes"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bio_toolkit_go/utils"
)

func TestSampleDNA(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	seq := SampleDNA(rng, 45)
	assert.Len(t, seq, 45)
	assert.Empty(t, strings.Trim(seq, "ACGT"))

	a := SampleDNA(rand.New(rand.NewPCG(9, 0)), 100)
	b := SampleDNA(rand.New(rand.NewPCG(9, 0)), 100)
	assert.Equal(t, a, b)
	assert.Empty(t, SampleDNA(rng, 0))
}

func TestGenerateDNA_GCExtremes(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 0))
	assert.Empty(t, strings.Trim(GenerateDNA(rng, 500, 0, false), "AT"))
	assert.Empty(t, strings.Trim(GenerateDNA(rng, 500, 1, false), "GC"))

	rnaSeq := GenerateDNA(rng, 500, 0, true)
	assert.NotContains(t, rnaSeq, "T")
	assert.Empty(t, strings.Trim(rnaSeq, "AU"))
}

func TestWrapFasta(t *testing.T) {
	assert.Equal(t, "ACG\nTA\n", WrapFasta("ACGTA", 3))
	assert.Equal(t, "", WrapFasta("", 60))
}

func TestMultiSeqFlag(t *testing.T) {
	var m MultiSeqFlag
	require.NoError(t, m.Set("chr1,10"))
	require.NoError(t, m.Set("chr2,5,0.9"))
	assert.Equal(t, MultiSeqFlag{{"chr1", 10, 0.5}, {"chr2", 5, 0.9}}, m)

	assert.Error(t, m.Set("chr3"))
	assert.Error(t, m.Set("chr3,ten"))
	assert.Error(t, m.Set("chr3,10,1.5"))
}

func TestRun_Stdout(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-seed", "5", "-length", "70", "-name", "demo"}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, ">demo", lines[0])
	assert.Len(t, lines[1], 60)
	assert.Len(t, lines[2], 10)

	var again bytes.Buffer
	require.NoError(t, run([]string{"-seed", "5", "-length", "70", "-name", "demo"}, &again))
	assert.Equal(t, out.String(), again.String())
}

func TestRun_GzipFileRoundTrip(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out.fa")
	var out bytes.Buffer
	require.NoError(t, run([]string{"-seed", "2", "-seq", "a,12", "-seq", "b,7,0.2", "-out_file", base, "-gzip"}, &out))
	assert.Empty(t, out.String())

	got := map[string]int{}
	require.NoError(t, common.StreamFastaFile(base+".gz", func(id, seq string) error {
		got[id] = len(seq)
		return nil
	}))
	assert.Equal(t, map[string]int{"a": 12, "b": 7}, got)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-gzip"}, &out))
	assert.Error(t, run([]string{"-gc_bias", "2"}, &out))
	assert.Error(t, run([]string{"-length", "-1"}, &out))
	assert.Error(t, run([]string{"oops"}, &out))
}
