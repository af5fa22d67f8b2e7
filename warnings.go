package pptcheker

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while walking a document:
// a substituted default canvas, a skipped shape, and the like. Warnings are
// returned alongside results so the calling application decides whether to
// surface, aggregate or discard them; the core never prints.
type Warning struct {
	// SlideIndex is the 0-based slide the issue occurred on.
	SlideIndex int

	// ShapeID is the stable identifier of the affected shape, empty when the
	// issue is not tied to one shape.
	ShapeID string

	// Field names the attribute or processing stage involved, e.g.
	// "geometry" or "shape".
	Field string

	// Reason is a human-readable description.
	Reason string
}

// String renders the warning as a single log-friendly line.
func (w Warning) String() string {
	return fmt.Sprintf("slide %d, shape %q, %s: %s", w.SlideIndex+1, w.ShapeID, w.Field, w.Reason)
}

// FormatWarnings formats warnings as a single string for logging.
//
// Example:
//
//	blocks, warnings, err := pptcheker.New().Walk(doc)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pptcheker.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return strings.Join(lines, "; ")
}
