// Package applier performs the filesystem renames for Renamer.
package applier

import (
	"fmt"
	"os"
	"path/filepath"

	"renamer/internal/planner"
)

// RenameError represents a failed rename attempt for a single plan entry.
type RenameError struct {
	OldPath string
	NewPath string
	Err     error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.OldPath, e.NewPath, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// Result represents the outcome of one rename attempt. Err is nil on
// success and a *RenameError on failure.
type Result struct {
	OldName string
	NewName string
	Err     error
}

// Tally accumulates per-entry outcomes across an apply run.
type Tally struct {
	Succeeded int
	Failed    int
}

// Apply attempts every planned rename exactly once, in plan order. Each
// attempt is independent: a failure is recorded and reported, and the loop
// continues with the remaining entries. The destination is the original
// entry's parent directory joined with the new name.
//
// If report is non-nil it is invoked with each Result as it happens, before
// the next rename is attempted.
func Apply(plan []planner.Rename, report func(Result)) Tally {
	var tally Tally

	for _, r := range plan {
		newPath := filepath.Join(filepath.Dir(r.OldPath), r.NewName)

		result := Result{OldName: r.OldName, NewName: r.NewName}
		if err := os.Rename(r.OldPath, newPath); err != nil {
			result.Err = &RenameError{OldPath: r.OldPath, NewPath: newPath, Err: err}
			tally.Failed++
		} else {
			tally.Succeeded++
		}

		if report != nil {
			report(result)
		}
	}

	return tally
}
