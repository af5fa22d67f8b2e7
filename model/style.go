package model

// Family values that are not real font names. FamilyUnknown means no family
// could be resolved at any consulted level; FamilyOther means a name was
// present but matched no recognized family.
const (
	FamilyUnknown = "unknown"
	FamilyOther   = "other"
)

// DefaultFontSize is the fallback size in points when neither the run nor the
// paragraph specifies one.
const DefaultFontSize = 18.0

// EffectiveStyle is the fully resolved seven-attribute style record for a
// run. Every field is always populated; it is never persisted on the Run and
// is recomputed on each pass.
type EffectiveStyle struct {
	Family    string
	Size      float64
	Color     NormalizedColor
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
}

// NormalizedColor is a canonical color: the exact 6-hex-digit value plus the
// nearest color from the fixed 9-name palette. The named approximation is
// deliberately coarse; it exists for human and LLM readability, not fidelity.
type NormalizedColor struct {
	Hex  string // "#RRGGBB", uppercase
	Name string // one of the palette names, e.g. "black"
}

// Black is the fallback color when no level specifies one.
var Black = NormalizedColor{Hex: "#000000", Name: "black"}

// DefaultStyle returns the record used when no attribute is specified at any
// consulted level.
func DefaultStyle() EffectiveStyle {
	return EffectiveStyle{
		Family: FamilyUnknown,
		Size:   DefaultFontSize,
		Color:  Black,
	}
}

// MergedRun is a maximal sequence of adjacent runs sharing one EffectiveStyle
// within a single paragraph. Text concatenation across a shape's MergedRuns
// reproduces the original run text exactly.
type MergedRun struct {
	Text      string
	Style     EffectiveStyle
	Paragraph int
}

// SerializedBlock is the per-shape output of a walk: the differential text
// encoding plus everything a downstream consumer needs to act on it. The
// encoded Text is a one-way diagnostic/LLM-input format; rule engines should
// read Runs directly instead of re-parsing it.
type SerializedBlock struct {
	ShapeID    string
	SlideIndex int
	Text       string
	Position   RectPercent
	IsTitle    bool
	Runs       []MergedRun
}
