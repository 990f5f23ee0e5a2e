// Package planner builds the rename plan for Renamer.
package planner

import (
	"unicode/utf8"

	"renamer/internal/scanner"
	"renamer/internal/transform"
)

// Rename represents one pending rename: the original name, the proposed new
// name and the full original path. A Rename always refers to exactly one
// filesystem object found in the initial scan.
type Rename struct {
	OldName string
	NewName string
	OldPath string
}

// Build applies the transform to every entry and collects the renames whose
// proposed name differs from the original. Entries whose names are not valid
// UTF-8 are skipped silently rather than failing the run. The plan preserves
// entry enumeration order and may be empty. Once built, the plan is never
// mutated: what is previewed is exactly what is attempted.
func Build(entries []scanner.Entry, t transform.Transform) []Rename {
	plan := make([]Rename, 0, len(entries))

	for _, entry := range entries {
		if !utf8.ValidString(entry.Name) {
			continue
		}

		newName := t.Apply(entry.Name)
		if newName == entry.Name {
			continue
		}

		plan = append(plan, Rename{
			OldName: entry.Name,
			NewName: newName,
			OldPath: entry.Path,
		})
	}

	return plan
}
