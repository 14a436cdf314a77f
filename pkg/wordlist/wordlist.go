package wordlist

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
)

// MaxLineSize is the longest accepted candidate line in bytes.
const MaxLineSize = 1 << 20

// Source opens a word list for reading.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// Read returns one candidate per line of r. Line terminators ("\n" or "\r\n")
// are removed; everything else, including surrounding spaces, empty lines and
// a "\r" ending an unterminated last line, is kept verbatim.
func Read(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	sc.Split(scanLines)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d", ErrLineTooLong, len(lines)+1)
		}
		return nil, errors.Join(ErrFailedToRead, err)
	}
	return lines, nil
}

// scanLines splits on "\n" and drops a "\r" only when it precedes the "\n".
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, bytes.TrimSuffix(data[:i], []byte{'\r'}), nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// ReadFile reads the word list at path.
func ReadFile(path string) ([]string, error) {
	return Load(context.Background(), FileSource(path))
}

// Load opens src and reads all of its lines.
func Load(ctx context.Context, src Source) ([]string, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	lines, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	return lines, nil
}

// Seq adapts a loaded word list to the candidate sequence the dispatcher consumes.
func Seq(lines []string) iter.Seq[string] {
	return slices.Values(lines)
}

// FileSource reads a word list from the local file system.
type FileSource string

func (f FileSource) Open(context.Context) (io.ReadCloser, error) {
	file, err := os.Open(string(f))
	if err != nil {
		return nil, errors.Join(ErrFailedToOpen, err)
	}
	return file, nil
}

func (f FileSource) String() string {
	return string(f)
}

// ReaderSource reads a word list from an already open stream such as stdin.
// The stream is not closed.
type ReaderSource struct {
	Name   string
	Reader io.Reader
}

func (s ReaderSource) Open(context.Context) (io.ReadCloser, error) {
	if s.Reader == nil {
		return nil, ErrNilSource
	}
	return io.NopCloser(s.Reader), nil
}

func (s ReaderSource) String() string {
	if s.Name == "" {
		return "reader"
	}
	return s.Name
}
