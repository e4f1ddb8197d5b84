// Package workdir scopes working-directory changes so the previous directory
// is restored on every exit path.
package workdir

import (
	"fmt"
	"os"
)

// In changes into dir, runs fn, and restores the previous working directory
// whether fn returns normally or with an error. A restore failure is only
// reported when fn itself succeeded.
func In(dir string, fn func() error) (err error) {
	restore, err := Push(dir)
	if err != nil {
		return err
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()
	return fn()
}

// Push changes into dir and returns a function restoring the directory that
// was current before the call. Callers typically defer the restore.
func Push(dir string) (func() error, error) {
	previous, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("workdir: getwd: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("workdir: chdir %s: %w", dir, err)
	}
	return func() error {
		if err := os.Chdir(previous); err != nil {
			return fmt.Errorf("workdir: restore %s: %w", previous, err)
		}
		return nil
	}, nil
}
