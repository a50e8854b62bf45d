package seq_generator

import (
	"compress/gzip"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"bio_toolkit_go/logger"
)

// For repeated -seq arguments
type SequenceRequest struct {
	ID     string
	Length int
	GCBias float64
}

type MultiSeqFlag []SequenceRequest

func (m *MultiSeqFlag) String() string { return fmt.Sprint(*m) }
func (m *MultiSeqFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) < 2 {
		return fmt.Errorf("expected format: name,length[,gc_bias]")
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil || length < 0 {
		return fmt.Errorf("invalid length")
	}
	gc := 0.5
	if len(parts) == 3 {
		gc, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || gc < 0.0 || gc > 1.0 {
			return fmt.Errorf("invalid gc_bias")
		}
	}
	*m = append(*m, SequenceRequest{ID: parts[0], Length: length, GCBias: gc})
	return nil
}

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

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("seq_generator", flag.ContinueOnError)

	name := fs.String("name", "random_seq", "Sequence name")
	length := fs.Int("length", 45, "Sequence length")
	gc := fs.Float64("gc_bias", 0.5, "GC bias")
	rna := fs.Bool("rna", false, "Emit RNA (U instead of T)")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based)")
	outFile := fs.String("out_file", "", "Output FASTA file")
	gzipOut := fs.Bool("gzip", false, "Compress output with gzip")

	var multiSeq MultiSeqFlag
	fs.Var(&multiSeq, "seq", "Use format name,length[,gc_bias] (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unrecognized arguments: %v (use -h to view valid flags)", fs.Args())
	}
	if *length < 0 {
		return fmt.Errorf("-length must not be negative")
	}
	if *gc < 0 || *gc > 1 {
		return fmt.Errorf("-gc_bias must be within [0, 1]")
	}
	if len(multiSeq) == 0 {
		multiSeq = MultiSeqFlag{{ID: *name, Length: *length, GCBias: *gc}}
	}

	rng := NewRand(*seed)
	var fastaOut strings.Builder
	for _, req := range multiSeq {
		seq := GenerateDNA(rng, req.Length, req.GCBias, *rna)
		fmt.Fprintf(&fastaOut, ">%s\n%s", req.ID, WrapFasta(seq, 60))
	}

	output := fastaOut.String()
	if *outFile == "" {
		if *gzipOut {
			return fmt.Errorf("cannot gzip to stdout, specify -out_file")
		}
		_, err := io.WriteString(stdout, output)
		return err
	}

	path := *outFile
	if *gzipOut {
		path += ".gz"
	}
	if err := writeFasta(path, output, *gzipOut); err != nil {
		return err
	}
	log := logger.Named("seq_generator")
	log.Info().Str("path", path).Int("records", len(multiSeq)).Msg("wrote sequences")
	return nil
}

func writeFasta(path, output string, compress bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	var w io.Writer = file
	var gz *gzip.Writer
	if compress {
		gz = gzip.NewWriter(file)
		w = gz
	}
	if _, err := io.WriteString(w, output); err != nil {
		file.Close()
		return fmt.Errorf("error writing data: %w", err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			file.Close()
			return fmt.Errorf("error writing compressed data: %w", err)
		}
	}
	return file.Close()
}
