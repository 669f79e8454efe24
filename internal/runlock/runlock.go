// Package runlock serializes database-writing commands with a file lock,
// so two concurrent invocations cannot interleave writes to the same data
// directory.
package runlock

import (
	"fmt"

	"github.com/gofrs/flock"

	"tickermatch/internal/services"
)

// Lock guards a data directory. The zero value is not usable; call New.
type Lock struct {
	flock *flock.Flock
	path  string
}

// New creates a lock for the given lock file path. Nothing is acquired
// until Acquire is called.
func New(path string) *Lock {
	return &Lock{flock: flock.New(path), path: path}
}

// Acquire takes the lock without blocking. A held lock from another
// process is reported as a transient error, not waited on.
func (l *Lock) Acquire() error {
	ok, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", l.path, err)
	}
	if !ok {
		return services.Wrap(services.ErrTransient, "runlock", "acquire",
			fmt.Sprintf("another instance holds %s; retry when it finishes", l.path), nil)
	}
	return nil
}

// Release drops the lock. Safe to call when the lock was never acquired.
func (l *Lock) Release() error {
	return l.flock.Unlock()
}
