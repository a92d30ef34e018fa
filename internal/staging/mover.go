// Package staging owns the filesystem areas a file moves through on
// its way from pending to published or discarded. A file's presence in
// exactly one area is its state; the single atomic rename performed by
// the Mover is the only transition.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

type Mover struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMover() *Mover {
	return &Mover{locks: make(map[string]*sync.Mutex)}
}

func (m *Mover) lockFor(area string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[area]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[area] = lock
	}
	return lock
}

// WithLock serializes all mutations of one staging area. Publish and
// discard run their whole check-exists / submit / move sequence inside
// it so two requests can never race on the same source path.
func (m *Mover) WithLock(area string, fn func() error) error {
	lock := m.lockFor(area)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// Move renames fromDir/filename to toDir/filename. A missing source is
// reported as moved=false with no error: the file was already claimed
// by an earlier outcome and retries are harmless.
func (m *Mover) Move(filename, fromDir, toDir string) (bool, error) {
	if err := checkName(filename); err != nil {
		return false, err
	}

	sourcePath := filepath.Join(fromDir, filename)
	if !Exists(fromDir, filename) {
		return false, nil
	}

	if err := os.MkdirAll(toDir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", toDir, err)
	}

	destPath := filepath.Join(toDir, filename)
	if err := os.Rename(sourcePath, destPath); err != nil {
		return false, fmt.Errorf("failed to move %s: %w", filename, err)
	}

	return true, nil
}

// Exists reports whether filename is currently present in dir.
func Exists(dir, filename string) bool {
	if checkName(filename) != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(dir, filename))
	return err == nil
}

// EnsureDir creates a staging area if it does not exist yet.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// checkName rejects names that would escape the area directory.
func checkName(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return fmt.Errorf("invalid filename: %q", filename)
	}
	return nil
}
