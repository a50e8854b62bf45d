package common

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct{ id, seq string }

func collect(t *testing.T, in string) []record {
	t.Helper()
	var got []record
	err := StreamFasta(strings.NewReader(in), func(id, seq string) error {
		got = append(got, record{id, seq})
		return nil
	})
	require.NoError(t, err)
	return got
}

func TestReverseComplement(t *testing.T) {
	cases := []struct{ in, want string }{
		{"ATGC", "GCAT"},
		{"aacg", "CGTT"},
		{"ANT", "ANT"},
		{"AXG", "CNT"},
		{"", ""},
		{">header", ">header"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ReverseComplement(c.in), "ReverseComplement(%q)", c.in)
	}
}

func TestStreamFasta_MultiLineRecords(t *testing.T) {
	in := ">seq1 first\nAAC\nCCG\n  TTG  \n>seq2\nagt\n>empty\n>seq3\nTAA\n"
	got := collect(t, in)
	assert.Equal(t, []record{
		{"seq1 first", "AACCCGTTG"},
		{"seq2", "agt"},
		{"seq3", "TAA"},
	}, got)
}

func TestStreamFasta_DataBeforeHeader(t *testing.T) {
	err := StreamFasta(strings.NewReader("ACGT\n>x\nAC\n"), func(string, string) error { return nil })
	require.Error(t, err)
}

func TestStreamFasta_HandlerErrorStops(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := StreamFasta(strings.NewReader(">a\nAC\n>b\nGT\n"), func(string, string) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestStreamFastaFile_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()
	content := ">r1\nAACCCG\n>r2\nTTGA\n"

	plain := filepath.Join(dir, "in.fa")
	require.NoError(t, os.WriteFile(plain, []byte(content), 0o644))

	gzPath := filepath.Join(dir, "in.fa.gz")
	f, err := os.Create(gzPath)
	require.NoError(t, err)
	gw := gzip.NewWriter(f)
	_, err = gw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, f.Close())

	for _, path := range []string{plain, gzPath} {
		var ids []string
		err := StreamFastaFile(path, func(id, seq string) error {
			ids = append(ids, id+":"+seq)
			return nil
		})
		require.NoError(t, err, path)
		assert.Equal(t, []string{"r1:AACCCG", "r2:TTGA"}, ids, path)
	}

	require.Error(t, StreamFastaFile(filepath.Join(dir, "missing.fa"), func(string, string) error { return nil }))
}
