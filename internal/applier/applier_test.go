package applier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renamer/internal/planner"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	return path
}

func TestApplyRenamesEveryEntry(t *testing.T) {
	tmpDir := t.TempDir()
	plan := []planner.Rename{
		{OldName: "a.txt", NewName: "x.txt", OldPath: writeFile(t, tmpDir, "a.txt")},
		{OldName: "b.txt", NewName: "y.txt", OldPath: writeFile(t, tmpDir, "b.txt")},
	}

	tally := Apply(plan, nil)

	assert.Equal(t, Tally{Succeeded: 2, Failed: 0}, tally)
	assert.FileExists(t, filepath.Join(tmpDir, "x.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "y.txt"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "a.txt"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "b.txt"))
}

func TestApplyContinuesPastFailures(t *testing.T) {
	tmpDir := t.TempDir()

	// b.txt's rename source is missing, so that one attempt must fail
	// while the surrounding entries still get renamed.
	plan := []planner.Rename{
		{OldName: "a.txt", NewName: "a2.txt", OldPath: writeFile(t, tmpDir, "a.txt")},
		{OldName: "b.txt", NewName: "b2.txt", OldPath: filepath.Join(tmpDir, "b.txt")},
		{OldName: "c.txt", NewName: "c2.txt", OldPath: writeFile(t, tmpDir, "c.txt")},
	}

	var results []Result
	tally := Apply(plan, func(r Result) { results = append(results, r) })

	assert.Equal(t, Tally{Succeeded: 2, Failed: 1}, tally)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)

	assert.FileExists(t, filepath.Join(tmpDir, "a2.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "c2.txt"))
}

func TestApplyCollisionFailsOnlyThatEntry(t *testing.T) {
	tmpDir := t.TempDir()

	// "taken" already exists as a non-empty directory, so renaming b.txt
	// onto it must fail while the other entries proceed.
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "taken"), 0755))
	writeFile(t, filepath.Join(tmpDir, "taken"), "occupant.txt")

	plan := []planner.Rename{
		{OldName: "a.txt", NewName: "a2.txt", OldPath: writeFile(t, tmpDir, "a.txt")},
		{OldName: "b.txt", NewName: "taken", OldPath: writeFile(t, tmpDir, "b.txt")},
		{OldName: "c.txt", NewName: "c2.txt", OldPath: writeFile(t, tmpDir, "c.txt")},
	}

	tally := Apply(plan, nil)

	assert.Equal(t, Tally{Succeeded: 2, Failed: 1}, tally)
	assert.FileExists(t, filepath.Join(tmpDir, "a2.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "c2.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "b.txt"))
}

func TestApplyReportsRenameError(t *testing.T) {
	tmpDir := t.TempDir()
	plan := []planner.Rename{
		{OldName: "gone.txt", NewName: "new.txt", OldPath: filepath.Join(tmpDir, "gone.txt")},
	}

	var got Result
	tally := Apply(plan, func(r Result) { got = r })

	assert.Equal(t, Tally{Succeeded: 0, Failed: 1}, tally)

	var renameErr *RenameError
	require.ErrorAs(t, got.Err, &renameErr)
	assert.Equal(t, plan[0].OldPath, renameErr.OldPath)
	assert.Equal(t, filepath.Join(tmpDir, "new.txt"), renameErr.NewPath)
	assert.ErrorIs(t, got.Err, os.ErrNotExist)
}

func TestApplyDestinationInParentOfOriginal(t *testing.T) {
	tmpDir := t.TempDir()
	plan := []planner.Rename{
		{OldName: "deep.txt", NewName: "renamed.txt", OldPath: writeFile(t, tmpDir, "deep.txt")},
	}

	Apply(plan, nil)

	// The destination is the original's parent joined with the new name.
	assert.FileExists(t, filepath.Join(tmpDir, "renamed.txt"))
}

func TestApplyEmptyPlan(t *testing.T) {
	called := false
	tally := Apply(nil, func(Result) { called = true })

	assert.Equal(t, Tally{}, tally)
	assert.False(t, called)
}
