package csvparser

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
)

// maxLineLength bounds a single input line. Longer lines stop the file with KindIO.
const maxLineLength = 1 << 20

// LineReader provides sequential access to the lines of one input file.
//
// USAGE:
//
//	r, err := Open(path)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	for r.Next() {
//	    line := r.Line()
//	    // Process the line...
//	}
//
//	if err := r.Err(); err != nil {
//	    return err
//	}
type LineReader struct {
	name    string
	src     io.ReadCloser
	scanner *bufio.Scanner
	line    string
	lineNum int
	err     error
	closed  bool
}

// Open opens an input file for sequential reading.
//
// RETURNS:
//   - A LineReader owning the file handle.
//   - An *ImportError of KindFileNotFound if the file does not exist, or
//     KindIO for any other open failure.
func Open(path string) (*LineReader, error) {
	file, err := os.Open(path)
	if err != nil {
		kind := KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = KindFileNotFound
		}
		return nil, &ImportError{Kind: kind, File: path, Err: err}
	}
	return NewLineReader(path, file), nil
}

// NewLineReader wraps an already opened source. The reader takes ownership of src.
func NewLineReader(name string, src io.ReadCloser) *LineReader {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &LineReader{
		name:    name,
		src:     src,
		scanner: scanner,
	}
}

// Next advances to the next line. It returns false at end of input or after a
// read error; check Err to tell them apart.
func (r *LineReader) Next() bool {
	if r.err != nil || r.closed {
		return false
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.err = &ImportError{Kind: KindIO, File: r.name, LineNumber: r.lineNum + 1, Err: err}
		}
		return false
	}
	r.lineNum++
	r.line = r.scanner.Text()
	return true
}

// Line returns the current line without its terminator.
func (r *LineReader) Line() string {
	return r.line
}

// LineNumber returns the current line number (1-based).
func (r *LineReader) LineNumber() int {
	return r.lineNum
}

// Name returns the name of the file being read.
func (r *LineReader) Name() string {
	return r.name
}

// Err returns the read error that stopped iteration, if any.
func (r *LineReader) Err() error {
	return r.err
}

// Close releases the underlying handle. Only the first call reaches the
// source; later calls return nil.
func (r *LineReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.src.Close(); err != nil {
		return &ImportError{Kind: KindClose, File: r.name, Err: err}
	}
	return nil
}
