package transform

import (
	"fmt"
	"regexp"
	"strings"

	"catalog-sync/core/table"
)

// Policy selects how a mapped column is copied from source to canonical.
type Policy string

const (
	// PolicyPassthrough copies the value unchanged.
	PolicyPassthrough Policy = "passthrough"
	// PolicyZeroToNull copies a numeric value, replacing a literal 0 (and any
	// unparseable value) with null.
	PolicyZeroToNull Policy = "zero-to-null"
	// PolicyTruncate copies the value as text, hard-truncated to Entry.Limit
	// characters.
	PolicyTruncate Policy = "truncate"
	// PolicyItemNumber applies item-number display normalization.
	PolicyItemNumber Policy = "item-number"
)

// Entry declares one source-to-canonical column mapping.
type Entry struct {
	// Source is the column name in the supplier feed. A missing source column
	// is never an error; it yields an all-null canonical column.
	Source string
	// Target is the canonical column name.
	Target string
	// Policy selects the copy behavior.
	Policy Policy
	// Limit is the character limit for PolicyTruncate; ignored otherwise.
	Limit int
}

// validateMapping checks a dialect's mapping table at engine construction.
// It rejects duplicate targets, unknown policies, truncation without a limit,
// and targets outside the canonical column set.
func validateMapping(entries []Entry, columns []string) error {
	known := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		known[c] = struct{}{}
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Target == "" {
			return fmt.Errorf("mapping entry for source %q: %w", e.Source, ErrEmptyTarget)
		}
		if _, dup := seen[e.Target]; dup {
			return fmt.Errorf("target %q: %w", e.Target, ErrDuplicateTarget)
		}
		seen[e.Target] = struct{}{}

		if _, ok := known[e.Target]; !ok {
			return fmt.Errorf("target %q: %w", e.Target, ErrUnknownTarget)
		}

		switch e.Policy {
		case PolicyPassthrough, PolicyZeroToNull, PolicyItemNumber:
		case PolicyTruncate:
			if e.Limit <= 0 {
				return fmt.Errorf("target %q: truncate policy requires a positive limit", e.Target)
			}
		default:
			return fmt.Errorf("target %q policy %q: %w", e.Target, e.Policy, ErrUnknownPolicy)
		}
	}
	return nil
}

// applyPolicy produces the canonical value for one mapped cell.
func applyPolicy(e Entry, val any) any {
	switch e.Policy {
	case PolicyZeroToNull:
		f, ok := table.Float(val)
		if !ok || f == 0 {
			return nil
		}
		return f
	case PolicyTruncate:
		if table.IsNull(val) {
			return nil
		}
		return truncate(table.String(val), e.Limit)
	case PolicyItemNumber:
		return NormalizeItemNumber(val)
	default:
		if table.IsNull(val) {
			return nil
		}
		return val
	}
}

// truncate hard-cuts a string to limit characters, rune-safe.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

var (
	dimSeparator  = regexp.MustCompile(`\s*[Xx]\s*`)
	anyWhitespace = regexp.MustCompile(`\s+`)
)

// NormalizeItemNumber canonicalizes dimension formatting in an item number:
// any run of whitespace around an x/X separator collapses to a single " x ",
// remaining whitespace runs collapse to one space, and ends are trimmed.
// "12X14", "12 x 14" and "12   X  14" all normalize to "12 x 14".
// A null value normalizes to the empty string.
func NormalizeItemNumber(val any) string {
	if table.IsNull(val) {
		return ""
	}
	s := table.String(val)
	s = dimSeparator.ReplaceAllString(s, " x ")
	s = anyWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
