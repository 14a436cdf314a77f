package potfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

const maxEntrySize = 2 << 20

// FileStore keeps entries in an append-only text file, one "token:secret"
// line per entry. It is safe for concurrent use within a process.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

// NewFileStore returns a store backed by the file at path. The file is
// created on the first Record.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Lookup scans the file for token. A missing file means nothing was recorded
// yet. When a token appears more than once the latest entry wins.
func (s *FileStore) Lookup(ctx context.Context, token string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, errors.Join(ErrFailedToRead, err)
	}
	defer f.Close()

	var (
		secret string
		found  bool
	)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxEntrySize)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		// Tokens never contain ':', secrets may.
		tok, sec, ok := strings.Cut(sc.Text(), ":")
		if ok && tok == token {
			secret, found = sec, true
		}
	}
	if err := sc.Err(); err != nil {
		return "", false, errors.Join(ErrFailedToRead, err)
	}

	return secret, found, nil
}

// Record appends a "token:secret" line to the file.
func (s *FileStore) Record(_ context.Context, token, secret string) error {
	if !validEntry(token, secret) {
		return ErrInvalidEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}

	if _, err := fmt.Fprintf(f, "%s:%s\n", token, secret); err != nil {
		_ = f.Close()
		return errors.Join(ErrFailedToWrite, err)
	}
	if err := f.Close(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}
