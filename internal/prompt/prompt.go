// Package prompt handles the interactive confirmation gate for Renamer.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"renamer/internal/planner"
)

// Confirmer prompts the user to approve a rename plan.
type Confirmer struct {
	reader io.Reader
	writer io.Writer
}

// NewConfirmer creates a Confirmer with the given reader and writer.
// Use os.Stdin and os.Stdout for normal operation, or buffers for testing.
func NewConfirmer(reader io.Reader, writer io.Writer) *Confirmer {
	return &Confirmer{
		reader: reader,
		writer: writer,
	}
}

// Confirm previews every planned rename in plan order, then reads one line
// of input. It returns true only for an affirmative answer: the trimmed,
// case-insensitive input must equal "y" or "yes". Empty input, any other
// input and EOF all decline. Declining is not an error; the error return is
// reserved for read failures on the input stream.
//
// The read blocks until a line is available, with no timeout.
func (c *Confirmer) Confirm(plan []planner.Rename) (bool, error) {
	fmt.Fprintf(c.writer, "\nPreview changes (%d total):\n", len(plan))
	for _, r := range plan {
		fmt.Fprintf(c.writer, "  %s -> %s\n", r.OldName, r.NewName)
	}
	fmt.Fprintf(c.writer, "\nApply these changes? (y/N): ")

	scanner := bufio.NewScanner(c.reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("error reading input: %w", err)
		}
		// EOF, treat as declined
		return false, nil
	}

	input := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return input == "y" || input == "yes", nil
}
