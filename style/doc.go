// Package style computes the effective visual styling of text runs.
//
// It contains the four leaf components of the extraction pipeline:
//
//   - Color normalization: NormalizeColor converts an explicit or theme-linked
//     color reference (with optional brightness adjustment) into a canonical
//     hex value plus the nearest color from a fixed 9-name palette.
//
//   - Geometry normalization: NormalizeRect converts a native-unit rectangle
//     into unclamped percentages of the containing slide, with ContainerDims
//     probing for the slide's dimensions.
//
//   - Family canonicalization: CanonicalFamily maps raw font names onto a
//     small closed set of recognized families, or "other".
//
//   - Attribute resolution: a Resolver computes the seven effective style
//     attributes for a run. The default scope consults exactly two levels,
//     the run and its paragraph; anything unresolved there takes its defined
//     default instead of being guessed from broader context. The wider
//     fallback chain survives as an explicit, opt-in ScopeFullChain.
//
// Everything in this package is pure and total: no I/O, no errors, always a
// fully populated result.
package style
