// Common package contains helpers shared by more than one tool:
// FASTA streaming for the translator and reverse complements.
package common

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReverseComplement returns the reverse complement of a DNA sequence.
// Input is treated case-insensitively and non-ACGT characters become 'N'.
// A string that looks like a FASTA header is returned unchanged.
func ReverseComplement(seq string) string {
	if strings.HasPrefix(seq, ">") {
		return seq
	}
	var rc strings.Builder
	rc.Grow(len(seq))
	seq = strings.ToUpper(seq)
	for i := len(seq) - 1; i >= 0; i-- {
		switch seq[i] {
		case 'A':
			rc.WriteByte('T')
		case 'T':
			rc.WriteByte('A')
		case 'C':
			rc.WriteByte('G')
		case 'G':
			rc.WriteByte('C')
		default:
			rc.WriteByte('N') // Ambiguous or invalid character
		}
	}
	return rc.String()
}

// FastaHandler receives one record at a time; a non-nil error stops the stream
type FastaHandler func(id string, seq string) error

// StreamFastaFile opens file, transparently decompressing gzip, and streams it
func StreamFastaFile(file string, handler FastaHandler) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	var reader io.Reader = br
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1F && magic[1] == 0x8B {
		gr, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader: %w", err)
		}
		defer gr.Close()
		reader = gr
	}
	return StreamFasta(reader, handler)
}

// StreamFasta calls handler for every record in r. Sequence lines are
// concatenated with surrounding whitespace trimmed; case is preserved so the
// caller decides how to treat it. Records with no sequence are skipped.
func StreamFasta(r io.Reader, handler FastaHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var currentID string
	var buffer bytes.Buffer
	seen := false

	flush := func() error {
		if !seen || buffer.Len() == 0 {
			return nil
		}
		if err := handler(currentID, buffer.String()); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimPrefix(line, ">")
			buffer.Reset()
			seen = true
			continue
		}
		if !seen {
			if line == "" {
				continue
			}
			return fmt.Errorf("sequence data before first header: %q", line)
		}
		buffer.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}
