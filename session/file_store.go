package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	apperrors "github.com/jrsteele09/go-budget-client/internal/errors"
	"github.com/jrsteele09/go-budget-client/internal/utils"
)

const (
	sessionFilename = "session.json"
	lockTimeout     = 5 * time.Second
	lockRetryDelay  = 50 * time.Millisecond
)

var _ Store = (*FileStore)(nil)

// FileStore persists the tokens as JSON in a directory so they survive
// restarts. Writes are serialised across processes with a lock file and
// land atomically through a temp file rename. Reads always go to disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store backed by <dir>/session.json.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the session file location.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, sessionFilename)
}

func (s *FileStore) GetAccessToken() (*string, error) {
	tokens, err := s.read()
	if err != nil {
		return nil, err
	}
	return utils.NonEmptyPtr(tokens.AccessToken), nil
}

func (s *FileStore) GetRefreshToken() (*string, error) {
	tokens, err := s.read()
	if err != nil {
		return nil, err
	}
	return utils.NonEmptyPtr(tokens.RefreshToken), nil
}

func (s *FileStore) SetTokens(access, refresh string) error {
	return s.update(func(t *Tokens) {
		*t = Tokens{AccessToken: access, RefreshToken: refresh}
	})
}

func (s *FileStore) SetAccessToken(access string) error {
	return s.update(func(t *Tokens) {
		t.AccessToken = access
	})
}

func (s *FileStore) Clear() error {
	return s.update(func(t *Tokens) {
		*t = Tokens{}
	})
}

func (s *FileStore) read() (Tokens, error) {
	var tokens Tokens
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return tokens, nil
		}
		return tokens, fmt.Errorf("%w: read session file: %w", apperrors.ErrStorage, err)
	}
	if len(data) == 0 {
		return tokens, nil
	}
	if err := json.Unmarshal(data, &tokens); err != nil {
		return Tokens{}, fmt.Errorf("%w: decode session file: %w", apperrors.ErrStorage, err)
	}
	return tokens, nil
}

func (s *FileStore) update(fn func(*Tokens)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("%w: create session directory: %w", apperrors.ErrStorage, err)
	}

	fileLock := flock.New(s.Path() + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("%w: acquire lock: %w", apperrors.ErrStorage, err)
	}
	if !locked {
		return fmt.Errorf("%w: acquire lock: timeout after %v", apperrors.ErrStorage, lockTimeout)
	}
	defer fileLock.Unlock() //nolint:errcheck

	tokens, err := s.read()
	if err != nil {
		return err
	}
	fn(&tokens)
	return s.write(tokens)
}

func (s *FileStore) write(tokens Tokens) error {
	data, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("%w: encode session: %w", apperrors.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(s.dir, sessionFilename+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", apperrors.ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("%w: chmod temp file: %w", apperrors.ErrStorage, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("%w: write temp file: %w", apperrors.ErrStorage, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", apperrors.ErrStorage, err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		return fmt.Errorf("%w: replace session file: %w", apperrors.ErrStorage, err)
	}
	return nil
}
