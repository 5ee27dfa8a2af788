// Package credential stores the backend session token on disk.
package credential

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/esportlab/elab/pkg/proto"
)

// Store reads and writes the session token. Implementations must tolerate
// concurrent reads from multiple processes.
type Store interface {
	// Token returns the stored token. It returns proto.ErrNoCredentials
	// when nothing is stored.
	Token() (string, error)
	// Write replaces the stored token.
	Write(token string) error
	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error
}

// FileStore keeps the token in a mode 0600 file under the data directory.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore returns a file-backed store rooted at the given data path.
func NewFileStore(dataPath string) *FileStore {
	return &FileStore{path: filepath.Join(dataPath, "token")}
}

// Token implements Store.
func (s *FileStore) Token() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", proto.ErrNoCredentials
	}
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", proto.ErrNoCredentials
	}
	return token, nil
}

// Write implements Store.
func (s *FileStore) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// Clear implements Store.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
