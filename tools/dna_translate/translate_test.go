package dna_translate

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_DocumentedExample(t *testing.T) {
	assert.Equal(t, "ACX", Translate("AACCCGTTG"))
}

func TestTranslate_Cases(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"shorter than a codon", "AA", ""},
		{"trailing one dropped", "AAAC", "A"},
		{"trailing two dropped", "AGTCCCGT", "SC"},
		{"stop does not end by default", "TAAAAA", "*A"},
		{"lower case is unmapped", "aaa", "X"},
		{"unknown characters", "NNN???", "XX"},
		{"leucine TTA only", "TTATTG", "LX"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Translate(c.in))
		})
	}
}

func TestTranslate_LengthProperty(t *testing.T) {
	bases := "ACGT"
	for n := 0; n < 40; n++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteByte(bases[(i*7+n)%4])
		}
		seq := b.String()
		got := Translate(seq)
		assert.Len(t, got, n/3, "len(Translate) for input length %d", n)
		if n%3 != 0 {
			// trailing bases never change the result
			assert.Equal(t, Translate(seq[:n-n%3]), got)
		}
	}
}

func TestTranslateWith_Options(t *testing.T) {
	assert.Equal(t, "ACA*", TranslateWith("aac ccg aaa tag agt", Options{Normalize: true, StopAtStop: true}))
	assert.Equal(t, "ACA*S", TranslateWith("aac ccg aaa tag agt", Options{Normalize: true}))
	assert.Equal(t, "NPL", TranslateWith("AACCCGTTG", Options{Table: StandardCode}))
	assert.Equal(t, "MAS*", TranslateWith("ATGGCTTCTTAAGGG", Options{Table: StandardCode, StopAtStop: true}))
}

func TestStandardCodeIsComplete(t *testing.T) {
	bases := "ACGT"
	for _, a := range bases {
		for _, b := range bases {
			for _, c := range bases {
				codon := string([]rune{a, b, c})
				assert.NotEqual(t, Unknown, StandardCode.Lookup(codon), codon)
			}
		}
	}
	assert.Len(t, StandardCode, 64)
}

func TestTableByName(t *testing.T) {
	tbl, err := TableByName("")
	require.NoError(t, err)
	assert.Equal(t, BasicCode, tbl)

	tbl, err = TableByName(" Standard ")
	require.NoError(t, err)
	assert.Equal(t, StandardCode, tbl)

	_, err = TableByName("mito")
	require.Error(t, err)
}

func TestRun_Seq(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-seq", "AACCCGTTG"}, &out))
	assert.Equal(t, "ACX\n", out.String())

	out.Reset()
	// reverse complement of GCTGGG is CCCAGC -> CCC AGC
	require.NoError(t, run([]string{"-seq", "GCTGGG", "-revcomp"}, &out))
	assert.Equal(t, "CS\n", out.String())
}

func TestRun_InFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(path, []byte(">a\nATGGCT\nTAA\n>b\nTTTTT\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-in_file", path, "-table", "standard", "-stop"}, &out))
	assert.Equal(t, ">a\nMA*\n>b\nF\n", out.String())
}

func TestRun_BadInput(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(nil, &out))
	assert.Error(t, run([]string{"-seq", "AAA", "-in_file", "x.fa"}, &out))
	assert.Error(t, run([]string{"-seq", "AAA", "-table", "nope"}, &out))
	assert.Error(t, run([]string{"-seq", "AAA", "extra"}, &out))
}
