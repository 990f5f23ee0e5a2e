// Package orchestrator coordinates the batch rename workflow for Renamer.
package orchestrator

import (
	"errors"
	"io"

	"renamer/internal/applier"
	"renamer/internal/output"
	"renamer/internal/planner"
	"renamer/internal/prompt"
	"renamer/internal/scanner"
	"renamer/internal/transform"
)

// Options configures a single run.
type Options struct {
	Directory string              // Target directory (already defaulted by the CLI)
	Transform transform.Transform // The selected name transformation
	Input     io.Reader           // Confirmation input (os.Stdin in production)
	Out       *output.Output      // All run output goes through here
}

// Summary represents the overall result of a run.
type Summary struct {
	Scanned   int           // Entries found in the initial scan
	Planned   int           // Entries whose names would change
	Tally     applier.Tally // Apply outcomes; zero when nothing was applied
	Cancelled bool          // True when the user declined the confirmation
}

// Run executes one batch rename: scan the target directory, build the plan,
// preview and confirm, then apply. The flow is one-shot; no state is revisited
// and the directory is never rescanned between preview and apply.
//
// An error is returned only for fatal pre-plan failures (directory missing,
// not a directory, unreadable) and for input read failures. An empty plan,
// a declined confirmation and per-file rename failures all produce a nil
// error; per-file failures are reported inline and counted in the Tally.
func Run(opts Options) (*Summary, error) {
	entries, err := scanner.Scan(opts.Directory)
	if err != nil {
		return nil, err
	}

	opts.Out.Verbose("Target directory: %s", opts.Directory)
	opts.Out.Verbose("Command: %s", opts.Transform.Describe())
	opts.Out.Verbose("Found %d entries", len(entries))

	summary := &Summary{Scanned: len(entries)}

	plan := planner.Build(entries, opts.Transform)
	summary.Planned = len(plan)
	if len(plan) == 0 {
		opts.Out.Info("Nothing to change")
		return summary, nil
	}

	confirmer := prompt.NewConfirmer(opts.Input, opts.Out.Writer())
	confirmed, err := confirmer.Confirm(plan)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		summary.Cancelled = true
		opts.Out.Info("Operation cancelled")
		return summary, nil
	}

	summary.Tally = applier.Apply(plan, func(r applier.Result) {
		if r.Err != nil {
			opts.Out.Info("%s %s -> %s (error: %v)", opts.Out.Cross(), r.OldName, r.NewName, unwrapOS(r.Err))
			return
		}
		opts.Out.Verbose("%s %s -> %s", opts.Out.Tick(), r.OldName, r.NewName)
	})

	opts.Out.Info("\nDone! succeeded: %d, failed: %d",
		summary.Tally.Succeeded, summary.Tally.Failed)

	return summary, nil
}

// unwrapOS strips the RenameError wrapper so the per-file line shows the
// specific OS error text without repeating both paths.
func unwrapOS(err error) error {
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
