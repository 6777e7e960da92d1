// Package split writes each record of a multi-FASTA file to its own
// single record FASTA file, named after the record's identifier
package split

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/JHUAPL/meta-simulator/config"
	"github.com/JHUAPL/meta-simulator/internal/fasta"
)

// Splitter writes records to an output directory. It remembers every file
// it has written so identifiers repeated across inputs are caught
type Splitter struct {
	// dir is the output directory
	dir string

	// limit is the max number of files to write, 0 for no limit
	limit int

	// force allows existing files to be truncated and rewritten
	force bool

	logger *log.Logger

	// seen maps lower cased file names written in this run to the input they came from
	seen map[string]string

	// written is the number of files written across all inputs
	written int
}

// New returns a Splitter that writes to c.Out. The output directory must
// already exist. A nil logger discards all logs
func New(c *config.Config, logger *log.Logger) (*Splitter, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	info, err := os.Stat(c.Out)
	if err != nil {
		return nil, &OutputWriteError{Path: c.Out, Err: err}
	}
	if !info.IsDir() {
		return nil, &OutputWriteError{Path: c.Out, Err: errors.New("not a directory")}
	}

	return &Splitter{
		dir:    c.Out,
		limit:  c.Count,
		force:  c.Force,
		logger: logger,
		seen:   make(map[string]string),
	}, nil
}

// Split writes each record of the FASTA file at path to
// <out>/<identifier>.fasta and returns the number of files written.
// It stops at the first error. Files written before the error are left in place
func Split(path, out string) (int, error) {
	s, err := New(&config.Config{Out: out}, nil)
	if err != nil {
		return 0, err
	}
	return s.Split(path)
}

// Run splits every input in c, in order, into c.Out and returns the total
// number of files written
func Run(c *config.Config, logger *log.Logger) (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	s, err := New(c, logger)
	if err != nil {
		return 0, err
	}

	for i, in := range c.In {
		if s.full() {
			s.logger.Info("count reached, skipping remaining inputs", "count", s.limit, "skipped", len(c.In)-i)
			break
		}

		n, err := s.Split(in)
		if err != nil {
			return s.Written(), err
		}
		s.logger.Info("split input", "in", in, "files", n)
	}

	return s.Written(), nil
}

// Written returns the number of files written by s so far
func (s *Splitter) Written() int {
	return s.written
}

// Split writes each record of the FASTA file at path to its own file
// and returns the number written from this input
func (s *Splitter) Split(path string) (n int, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, &InputNotFoundError{Path: path, Err: err}
	}
	if info.IsDir() {
		return 0, &InputNotFoundError{Path: path, Err: errors.New("is a directory")}
	}

	r, err := fasta.Open(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return 0, &InputNotFoundError{Path: path, Err: err}
		}
		return 0, &ParseError{Path: path, Err: err}
	}
	defer r.Close()

	s.logger.Debug("reading input", "in", path)
	for !s.full() && r.Next() {
		if err := s.write(path, r.Record()); err != nil {
			return n, err
		}
		n++
	}

	if err := r.Err(); err != nil {
		return n, &ParseError{Path: path, Record: n, Err: err}
	}

	return n, nil
}

// full returns whether the file limit has been reached
func (s *Splitter) full() bool {
	return s.limit > 0 && s.written >= s.limit
}

// write creates the file for a single record. The file is closed
// before returning, whether or not the write succeeded
func (s *Splitter) write(in string, rec fasta.Record) error {
	name, err := fileName(rec.ID)
	if err != nil {
		return &OutputWriteError{Path: s.dir, ID: rec.ID, Err: err}
	}

	// names differing only by case collide on case-insensitive file systems
	key := strings.ToLower(name)
	path := filepath.Join(s.dir, name)
	if prev, ok := s.seen[key]; ok {
		return &OutputWriteError{
			Path: path,
			ID:   rec.ID,
			Err:  fmt.Errorf("%w: already written from %s", ErrDuplicateIdentifier, prev),
		}
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if s.force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flag, 0666)
	if err != nil {
		return &OutputWriteError{Path: path, ID: rec.ID, Err: err}
	}

	// a partially written file is removed so it isn't mistaken for a finished one
	if err := fasta.Write(f, rec); err != nil {
		f.Close()
		os.Remove(path)
		return &OutputWriteError{Path: path, ID: rec.ID, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &OutputWriteError{Path: path, ID: rec.ID, Err: err}
	}

	s.seen[key] = in
	s.written++
	s.logger.Debug("wrote record", "id", rec.ID, "path", path, "length", len(rec.Seq))

	return nil
}
