// Package pptcheker extracts and normalizes the visual styling of text in a
// slide deck and compresses it into a compact differential text encoding for
// rule checks and AI-based review.
//
// Basic usage:
//
//	blocks, warnings, err := pptcheker.New().WalkFile("deck.pptx")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pptcheker.FormatWarnings(warnings))
//	}
//
// With options:
//
//	blocks, _, err := pptcheker.New().
//	    WithScope(style.ScopeFullChain).
//	    WithLogger(logger).
//	    Walk(doc)
//
// Each block carries the shape's stable identifier, its position as
// percentages of the slide, the title flag, the merged runs with their fully
// resolved styles, and the differential encoding of the text. Rule engines
// read the merged runs directly; the encoded string is for humans and LLMs.
//
// For callers with their own document reader, the lower-level model, style
// and serializer packages are also available.
package pptcheker

import "github.com/datanger/PPTCheker/model"

// ExtractBlocks walks a .pptx file with default options.
//
// Example:
//
//	blocks, warnings, err := pptcheker.ExtractBlocks("deck.pptx")
func ExtractBlocks(path string) ([][]model.SerializedBlock, []Warning, error) {
	return New().WalkFile(path)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
