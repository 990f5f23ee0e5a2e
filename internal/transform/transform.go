// Package transform provides the pure filename transformations for Renamer.
package transform

import (
	"fmt"
	"regexp"
	"strings"
)

// Transform maps an original filename to a proposed new filename.
// Implementations are pure: the same name and parameters always produce the
// same output, with no filesystem access and no side effects. Apply must
// return a string for any input, possibly identical to the input.
type Transform interface {
	Apply(name string) string
	// Describe returns a short human-readable description of the
	// transformation and its parameters, used in verbose output.
	Describe() string
}

// Remove deletes every non-overlapping occurrence of Pattern from the name,
// scanning left to right.
type Remove struct {
	Pattern string
}

func (t Remove) Apply(name string) string {
	return strings.ReplaceAll(name, t.Pattern, "")
}

func (t Remove) Describe() string {
	return fmt.Sprintf("remove %q", t.Pattern)
}

// Replace substitutes every non-overlapping occurrence of Old with New.
type Replace struct {
	Old string
	New string
}

func (t Replace) Apply(name string) string {
	return strings.ReplaceAll(name, t.Old, t.New)
}

func (t Replace) Describe() string {
	return fmt.Sprintf("replace %q -> %q", t.Old, t.New)
}

// AddPrefix concatenates Prefix before the full name, unconditionally.
type AddPrefix struct {
	Prefix string
}

func (t AddPrefix) Apply(name string) string {
	return t.Prefix + name
}

func (t AddPrefix) Describe() string {
	return fmt.Sprintf("add prefix %q", t.Prefix)
}

// AddSuffix inserts Suffix immediately before the last '.' in the name,
// or appends it when the name contains no dot.
//
// The last dot is always treated as the extension separator. Multi-dot names
// such as "archive.tar.gz" therefore get the suffix before ".gz" only, and a
// dotfile like ".bashrc" gets the suffix before the leading dot. This
// matches the historical behavior and is intentionally left as-is.
type AddSuffix struct {
	Suffix string
}

func (t AddSuffix) Apply(name string) string {
	dot := strings.LastIndex(name, ".")
	if dot < 0 {
		return name + t.Suffix
	}
	return name[:dot] + t.Suffix + name[dot:]
}

func (t AddSuffix) Describe() string {
	return fmt.Sprintf("add suffix %q", t.Suffix)
}

// RegexReplace replaces every non-overlapping match of Pattern with
// Replacement. Replacement may reference capture groups using Go's expansion
// syntax ($1, ${name}). A pattern that fails to compile leaves every name
// unchanged; this silent no-op on bad input is deliberate and must not be
// upgraded to an error.
type RegexReplace struct {
	Pattern     string
	Replacement string
}

func (t RegexReplace) Apply(name string) string {
	re, err := regexp.Compile(t.Pattern)
	if err != nil {
		return name
	}
	return re.ReplaceAllString(name, t.Replacement)
}

func (t RegexReplace) Describe() string {
	return fmt.Sprintf("regex replace %q -> %q", t.Pattern, t.Replacement)
}
