package fsutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the directory lock.
var ErrLocked = errors.New("directory is locked by another run")

// DirLock is an exclusive advisory lock scoped to one target directory.
type DirLock struct {
	path string
	lock *flock.Flock
}

// LockPath derives the lock file location for target inside lockDir. The name
// is a hash of the absolute target path so the target itself is never
// written to.
func LockPath(lockDir, target string) (string, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolve lock target: %w", err)
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return filepath.Join(lockDir, "dir-"+hex.EncodeToString(sum[:8])+".lock"), nil
}

// TryLock acquires the lock for target without blocking. It returns ErrLocked
// when the lock is already held.
func TryLock(lockDir, target string) (*DirLock, error) {
	path, err := LockPath(lockDir, target)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", lockDir, err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, target)
	}
	return &DirLock{path: path, lock: fl}, nil
}

// Path returns the lock file path.
func (l *DirLock) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Unlock releases the lock. It is safe to call on a nil lock.
func (l *DirLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
