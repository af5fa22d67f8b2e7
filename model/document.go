package model

// Document is the root of a parsed slide deck. It owns its slides and is
// read-only once constructed by a reader.
type Document struct {
	Slides []*Slide

	// SlideWidth and SlideHeight are the nominal slide dimensions in EMUs,
	// taken from the presentation defaults. Individual slides that cannot
	// discover their own dimensions fall back to these.
	SlideWidth  float64
	SlideHeight float64

	// Theme carries the document theme's font scheme. It is consulted only
	// by the full-chain resolution scope, never by default.
	Theme ThemeFonts
}

// Slide is an ordered list of shapes plus the slide's own dimensions in EMUs.
// Width and Height are zero when the reader could not discover them.
type Slide struct {
	Index  int
	Shapes []*Shape
	Width  float64
	Height float64
}

// Shape is a text-bearing element on a slide. The position rectangle is in
// native units (EMUs); percentage-normalized geometry is derived per walk and
// lives on the SerializedBlock, not here.
type Shape struct {
	// ID is a stable identifier for mapping results back to the shape.
	ID         string
	Rect       Rect
	IsTitle    bool
	Paragraphs []*Paragraph

	// Defaults holds shape-level list-style run properties. They are outside
	// the default resolution scope and consulted only by the full-chain
	// variant.
	Defaults RunProps

	// Slide is a non-owning back-reference.
	Slide *Slide
}

// Paragraph is an ordered sequence of runs sharing optional paragraph-level
// style defaults.
type Paragraph struct {
	// Index is the paragraph's position within its shape.
	Index    int
	Runs     []*Run
	Defaults RunProps
}

// Run is the smallest unit of styled text. Props holds explicit run-level
// overrides; every field may be absent.
type Run struct {
	Text  string
	Props RunProps
}

// RunProps carries raw, possibly-absent style attributes for a run or a
// paragraph default. Pointer fields distinguish "explicitly false/zero" from
// "not specified".
type RunProps struct {
	// FontEastAsia and FontLatin are raw family names. Either may be a theme
	// placeholder reference such as "+mn-ea"; those are never literal names
	// and resolution treats them as unresolved.
	FontEastAsia string
	FontLatin    string

	// Size is the font size in points.
	Size *float64

	Color     *ColorRef
	Bold      *bool
	Italic    *bool
	Underline *bool
	Strike    *bool
}

// ColorRef is a raw color reference: either an explicit sRGB value or a theme
// slot name, optionally with a brightness adjustment in [-1, 1].
type ColorRef struct {
	// RGB is a 6-hex-digit value, with or without a leading '#', when the
	// color is explicit.
	RGB string

	// ThemeSlot names a theme color role ("tx1", "accent3", ...) when the
	// color is theme-linked.
	ThemeSlot string

	// Brightness tints toward white (positive) or shades toward black
	// (negative).
	Brightness float64
}

// ThemeFonts is the document theme's font scheme snapshot.
type ThemeFonts struct {
	MajorLatin    string
	MajorEastAsia string
	MinorLatin    string
	MinorEastAsia string
}

// Rect is a position rectangle in native units (EMUs), relative to the
// container's top-left corner.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// RectPercent is a position rectangle expressed as percentages of the
// containing slide, relative to its top-left corner. Values are deliberately
// unclamped: a shape overflowing the slide yields values outside [0, 100].
type RectPercent struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// HasText reports whether any run in the shape carries text.
func (s *Shape) HasText() bool {
	for _, p := range s.Paragraphs {
		for _, r := range p.Runs {
			if r.Text != "" {
				return true
			}
		}
	}
	return false
}
