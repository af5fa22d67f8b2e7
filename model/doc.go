// Package model provides the intermediate representation (IR) for slide-deck
// text and styling.
//
// The package defines two families of types:
//
//   - The input tree: Document, Slide, Shape, Paragraph and Run. These are
//     produced once per parse pass by a document reader (for example the pptx
//     package) and are treated as read-only by everything downstream. Any of
//     the seven style attributes may be absent on a Run or Paragraph; absence
//     is expressed with nil pointers and empty strings, never sentinel values.
//
//   - Derived values: EffectiveStyle, NormalizedColor, MergedRun and
//     SerializedBlock. These are recomputed fresh on every walk and carry no
//     identity beyond it.
//
// An EffectiveStyle is always fully populated: family defaults to
// FamilyUnknown, size to DefaultFontSize, color to black and the boolean
// attributes to false. DefaultStyle returns that record.
package model
