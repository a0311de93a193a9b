// Package corpus loads the plaintext workload shared by every benchmark pass.
package corpus

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// TruncationDivisor bounds the workload: only the first lines/50 lines of
// the input file are kept.
const TruncationDivisor = 50

// IOError reports a corpus file that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read corpus %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Corpus is an immutable, ordered list of records.
type Corpus struct {
	records     [][]byte
	size        int64
	sourceLines int
}

// Load reads path line by line and keeps the first lines/50 of them.
// Line terminators are part of each record.
func Load(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return FromLines(lines), nil
}

// FromLines builds a corpus from already split lines, applying the same
// truncation as Load.
func FromLines(lines [][]byte) *Corpus {
	keep := lines[:len(lines)/TruncationDivisor]
	c := &Corpus{
		records:     keep,
		sourceLines: len(lines),
	}
	for _, r := range keep {
		c.size += int64(len(r))
	}
	return c
}

func readLines(r io.Reader) ([][]byte, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	var lines [][]byte
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			lines = append(lines, bytes.Clone(line))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Len is the number of records.
func (c *Corpus) Len() int { return len(c.records) }

// Records returns the records in file order. Callers must not modify them.
func (c *Corpus) Records() [][]byte { return c.records }

// Bytes is the total payload size of all records.
func (c *Corpus) Bytes() int64 { return c.size }

// SourceLines is the number of lines in the file before truncation.
func (c *Corpus) SourceLines() int { return c.sourceLines }
