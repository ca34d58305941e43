package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"
)

// ErrOutputLocked is returned when another run is already writing one of the
// requested outputs.
var ErrOutputLocked = errors.New("output is locked by another run")

// LockOutputs takes an exclusive advisory lock per output path. Lock files
// live in lockDir and are keyed by a hash of the absolute output path, so
// relative and absolute spellings of the same file collide. The returned
// function releases every lock.
func LockOutputs(lockDir string, paths ...string) (func(), error) {
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", lockDir, err)
	}

	keys := make([]string, 0, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve output path %q: %w", path, err)
		}
		keys = append(keys, abs)
	}
	// Fixed order keeps two runs with overlapping outputs from deadlocking.
	slices.Sort(keys)
	keys = slices.Compact(keys)

	held := make([]*flock.Flock, 0, len(keys))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			_ = held[i].Unlock()
		}
	}

	for _, key := range keys {
		lock := flock.New(filepath.Join(lockDir, lockName(key)))
		ok, err := lock.TryLock()
		if err != nil {
			release()
			return nil, fmt.Errorf("acquire lock for %s: %w", key, err)
		}
		if !ok {
			release()
			return nil, fmt.Errorf("%s: %w", key, ErrOutputLocked)
		}
		held = append(held, lock)
	}
	return release, nil
}

func lockName(absPath string) string {
	sum := sha256.Sum256([]byte(absPath))
	return hex.EncodeToString(sum[:8]) + ".lock"
}
