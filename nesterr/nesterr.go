// Package nesterr defines the typed error taxonomy the nesting pipeline
// reports (spec.md §7): sentinel values compared with errors.Is, following
// the teacher's Status-as-error pattern (detour/status.go) but as plain
// sentinels rather than a combinable bitfield, since these four kinds are
// mutually exclusive result classifications.
package nesterr

import "fmt"

// Kind classifies a nesting-pipeline failure.
type Kind error

var (
	// DegenerateInput: a polygon has fewer than 3 vertices or zero area.
	// The offending part is excluded from the run.
	DegenerateInput Kind = fmt.Errorf("degenerate input polygon")

	// BooleanOpFailed: the integer boolean engine rejected an operation.
	// The caller treats this as "no candidate placement" and continues.
	BooleanOpFailed Kind = fmt.Errorf("boolean operation failed")

	// NfpSanity: a computed NFP failed an area or closure check. The NFP
	// is treated as absent.
	NfpSanity Kind = fmt.Errorf("nfp sanity check failed")

	// NoBin: the coordinator was started without a configured bin.
	NoBin Kind = fmt.Errorf("no bin configured")
)

// Wrap annotates kind with context while remaining comparable via errors.Is.
func Wrap(kind Kind, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
