// Package main provides the CLI entry point for Renamer.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"renamer/internal/orchestrator"
	"renamer/internal/output"
	"renamer/internal/transform"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	directory string
	verbose   bool
)

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "renamer",
		Version: version,
		Short:   "Batch-rename files in a directory with preview and confirmation",
		Long: `renamer applies a text transformation to every file and subdirectory
name directly inside a target directory. It previews all proposed renames,
asks for confirmation, then applies them and reports per-file results.

Commands:
  remove         Delete a substring from each name
  replace        Replace a substring in each name
  add-prefix     Prepend a prefix to each name
  add-suffix     Insert a suffix before the extension of each name
  regex-replace  Replace regular-expression matches in each name

Examples:
  renamer remove " copy"
  renamer -d ~/Downloads replace "draft" "final"
  renamer add-prefix "2024-"
  renamer add-suffix "_v2"
  renamer regex-replace "^IMG_(\d+)" "photo_$1"

Nothing is renamed until you confirm the previewed changes. A rename that
fails (for example when the destination already exists) is reported and
counted; the remaining renames still run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&directory, "directory", "d", ".", "Target directory")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(
		buildRemoveCommand(),
		buildReplaceCommand(),
		buildAddPrefixCommand(),
		buildAddSuffixCommand(),
		buildRegexReplaceCommand(),
	)

	return cmd
}

func buildRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <pattern>",
		Short: "Delete every occurrence of a substring from each name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(transform.Remove{Pattern: args[0]})
		},
	}
}

func buildReplaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "replace <old> <new>",
		Short: "Replace every occurrence of a substring in each name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(transform.Replace{Old: args[0], New: args[1]})
		},
	}
}

func buildAddPrefixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-prefix <prefix>",
		Short: "Prepend a prefix to each name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(transform.AddPrefix{Prefix: args[0]})
		},
	}
}

func buildAddSuffixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-suffix <suffix>",
		Short: "Insert a suffix before the extension of each name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(transform.AddSuffix{Suffix: args[0]})
		},
	}
}

func buildRegexReplaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regex-replace <pattern> <replacement>",
		Short: "Replace regular-expression matches in each name",
		Long: `Replace every match of a regular expression in each name. The
replacement may reference capture groups with $1, $2 or ${name}. A pattern
that does not compile leaves all names unchanged.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(transform.RegexReplace{Pattern: args[0], Replacement: args[1]})
		},
	}
}

// run executes the workflow for the selected transform. Cancellation and
// per-file rename failures are reported on stdout and exit zero; only
// pre-plan failures (bad directory, unreadable directory, broken stdin)
// surface as errors and a non-zero exit.
func run(t transform.Transform) error {
	cfg := output.DefaultConfig()
	cfg.Verbose = verbose

	dir, err := filepath.Abs(directory)
	if err != nil {
		dir = directory
	}

	_, err = orchestrator.Run(orchestrator.Options{
		Directory: dir,
		Transform: t,
		Input:     os.Stdin,
		Out:       output.New(cfg),
	})
	return err
}

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
