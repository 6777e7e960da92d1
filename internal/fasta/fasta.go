// Package fasta streams records out of FASTA files and writes single
// record FASTA entries. Parsing is delegated to biogo.
package fasta

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is a single FASTA entry
type Record struct {
	// ID is the first token of the header. In ">seq1 chr1" it's "seq1"
	ID string

	// Desc is the remainder of the header after the ID
	Desc string

	// Seq is the full sequence with line wrapping removed
	Seq string
}

// Reader iterates over the records of a FASTA stream, one at a time
type Reader struct {
	sc      *seqio.Scanner
	rec     Record
	closers []io.Closer
}

// NewReader returns a Reader over r. The caller owns r
func NewReader(r io.Reader) *Reader {
	// the alphabet is only a template for biogo, letters aren't validated against it
	template := linear.NewSeq("", nil, alphabet.DNA)
	return &Reader{sc: seqio.NewScanner(biofasta.NewReader(r, template))}
}

// Open opens the FASTA file at path. Files ending in ".gz" are decompressed.
// Close releases the underlying file
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, ".gz") {
		r := NewReader(f)
		r.closers = []io.Closer{f}
		return r, nil
	}

	gz, err := gzip.NewReader(f)
	if errors.Is(err, io.EOF) {
		// an empty file has no gzip header, read it as an empty stream
		r := NewReader(f)
		r.closers = []io.Closer{f}
		return r, nil
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	r := NewReader(gz)
	r.closers = []io.Closer{gz, f}
	return r, nil
}

// Next advances to the next record. It returns false at the end of the
// input or on the first error, see Err
func (r *Reader) Next() bool {
	if !r.sc.Next() {
		return false
	}

	// biogo clones the template for each record
	s := r.sc.Seq().(*linear.Seq)
	id, desc := headerFields(s.ID, s.Desc)
	r.rec = Record{
		ID:   id,
		Desc: desc,
		Seq:  string(s.Seq),
	}
	return true
}

// headerFields handles headers like "> seq1 desc" where whitespace follows
// the '>'. biogo leaves the ID empty for those, so it's taken from the
// first word of the description instead
func headerFields(id, desc string) (string, string) {
	if id != "" {
		return id, desc
	}

	desc = strings.TrimSpace(desc)
	if i := strings.IndexAny(desc, " \t"); i >= 0 {
		return desc[:i], strings.TrimSpace(desc[i+1:])
	}
	return desc, ""
}

// Record returns the record read by the last call to Next
func (r *Reader) Record() Record {
	return r.rec
}

// Err returns the first non-EOF error hit while reading
func (r *Reader) Err() error {
	return r.sc.Error()
}

// Close closes any files opened by Open
func (r *Reader) Close() (err error) {
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	r.closers = nil
	return err
}

// Write writes rec to w as a header line followed by the sequence on a
// single line. No trailing newline is written
func Write(w io.Writer, rec Record) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, ">%s\n%s", rec.ID, rec.Seq); err != nil {
		return err
	}
	return bw.Flush()
}

// Count returns the number of records in the FASTA file at path
func Count(path string) (n int, err error) {
	r, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	for r.Next() {
		n++
	}
	return n, r.Err()
}
