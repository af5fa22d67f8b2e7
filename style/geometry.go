package style

import (
	"math"

	"github.com/datanger/PPTCheker/model"
)

// Default canvas dimensions in EMUs: a 16:9 slide, substituted when every
// container-dimension probe fails.
const (
	DefaultCanvasWidth  = 12192000.0
	DefaultCanvasHeight = 6858000.0
)

// ContainerDims discovers the dimensions of the slide containing a shape.
// Probes run in priority order: the slide itself, then the document-level
// defaults, then the fixed default canvas. The boolean is false only when the
// default canvas was substituted, which callers surface as a diagnostic.
func ContainerDims(slide *model.Slide, doc *model.Document) (width, height float64, ok bool) {
	if slide != nil && slide.Width > 0 && slide.Height > 0 {
		return slide.Width, slide.Height, true
	}
	if doc != nil && doc.SlideWidth > 0 && doc.SlideHeight > 0 {
		return doc.SlideWidth, doc.SlideHeight, true
	}
	return DefaultCanvasWidth, DefaultCanvasHeight, false
}

// NormalizeRect converts a native-unit rectangle into percentages of the
// container, rounded to two decimals, relative to the container's top-left.
// Values are not clamped: overflowing shapes yield values outside [0, 100],
// which downstream consumers treat as a signal rather than an error.
func NormalizeRect(r model.Rect, containerWidth, containerHeight float64) model.RectPercent {
	return model.RectPercent{
		Left:   percentOf(r.Left, containerWidth),
		Top:    percentOf(r.Top, containerHeight),
		Width:  percentOf(r.Width, containerWidth),
		Height: percentOf(r.Height, containerHeight),
	}
}

func percentOf(v, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(v/total*100*100) / 100
}
