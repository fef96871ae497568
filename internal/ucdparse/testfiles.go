package ucdparse

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// TestFile is a line scanner for UCD data and test files. It skips empty
// lines and comment lines and splits data lines into text and comment.
type TestFile struct {
	in      io.Closer
	scanner *bufio.Scanner
	lineno  int
	text    string
	comment string
}

// NewTestFile creates a line scanner reading from r.
func NewTestFile(r io.Reader) *TestFile {
	tf := &TestFile{scanner: bufio.NewScanner(r)}
	tf.scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	return tf
}

// OpenTestFile opens a file and creates a line scanner for it.
// Clients should call Close when done.
func OpenTestFile(filename string) (*TestFile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	tf := NewTestFile(f)
	tf.in = f
	return tf, nil
}

// Scan advances to the next data line. It returns false at the end of input
// or on a read error.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		tf.lineno++
		text := strings.TrimSpace(tf.scanner.Text())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		tf.text, tf.comment = text, ""
		if i := strings.IndexByte(text, '#'); i >= 0 {
			tf.text, tf.comment = strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
		}
		return true
	}
	return false
}

// Text returns the data part of the current line.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the comment part of the current line, without '#'.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// LineNo returns the line number of the current line, starting at 1.
func (tf *TestFile) LineNo() int {
	return tf.lineno
}

// Err returns the first read error, if any.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file, if the scanner has been created by OpenTestFile.
func (tf *TestFile) Close() error {
	if tf.in == nil {
		return nil
	}
	return tf.in.Close()
}
