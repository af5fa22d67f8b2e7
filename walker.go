package pptcheker

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/datanger/PPTCheker/model"
	"github.com/datanger/PPTCheker/pptx"
	"github.com/datanger/PPTCheker/serializer"
	"github.com/datanger/PPTCheker/style"
)

// Walker orchestrates the extraction pipeline across a document: geometry
// normalization, per-run attribute resolution, family canonicalization, run
// merging and differential serialization, shape by shape.
//
// Each configuration method returns a new Walker instance, making it safe for
// concurrent use and allowing method chaining. The walk itself never mutates
// the input tree, so a caller may also run one Walker over disjoint slides
// concurrently.
type Walker struct {
	options WalkOptions
}

// New returns a Walker with default options.
//
// Example:
//
//	blocks, warnings, err := pptcheker.New().Walk(doc)
func New() *Walker {
	return &Walker{options: defaultWalkOptions()}
}

// clone returns a copy so configuration methods stay immutable.
func (w *Walker) clone() *Walker {
	return &Walker{options: w.options.clone()}
}

// WithScope selects the attribute resolution scope.
func (w *Walker) WithScope(scope style.Scope) *Walker {
	nw := w.clone()
	nw.options.scope = scope
	return nw
}

// WithInitialLabel overrides the label on the serializer's baseline marker.
func (w *Walker) WithInitialLabel(label string) *Walker {
	nw := w.clone()
	nw.options.initialLabel = label
	return nw
}

// WithLogger mirrors walk warnings to the given logger at Warn level. The
// default is a no-op logger.
func (w *Walker) WithLogger(logger *zap.Logger) *Walker {
	nw := w.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	nw.options.logger = logger
	return nw
}

// Walk processes every shape with text on every slide and returns the
// serialized blocks in slide-major, then shape-major order. Slides keep a
// (possibly empty) entry each, so blocks[i] always corresponds to
// doc.Slides[i].
//
// Failures are contained at the shape: a shape that cannot be processed is
// skipped with a warning and the walk continues. Only a nil document is an
// error.
func (w *Walker) Walk(doc *model.Document) ([][]model.SerializedBlock, []Warning, error) {
	if doc == nil {
		return nil, nil, fmt.Errorf("walking document: nil document")
	}

	blocks := make([][]model.SerializedBlock, 0, len(doc.Slides))
	var warnings []Warning

	for _, slide := range doc.Slides {
		slideBlocks := make([]model.SerializedBlock, 0, len(slide.Shapes))
		for _, shape := range slide.Shapes {
			block, warns := w.processShape(doc, slide, shape)
			warnings = append(warnings, warns...)
			if block != nil {
				slideBlocks = append(slideBlocks, *block)
			}
		}
		blocks = append(blocks, slideBlocks)
	}

	for _, warn := range warnings {
		w.options.logger.Warn("walk diagnostic",
			zap.Int("slide", warn.SlideIndex),
			zap.String("shape", warn.ShapeID),
			zap.String("field", warn.Field),
			zap.String("reason", warn.Reason),
		)
	}

	return blocks, warnings, nil
}

// WalkFile opens a .pptx file, builds the document tree and walks it.
//
// Example:
//
//	blocks, warnings, err := pptcheker.New().WalkFile("deck.pptx")
func (w *Walker) WalkFile(path string) ([][]model.SerializedBlock, []Warning, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return w.Walk(doc)
}

// processShape runs the full pipeline for one shape. A panic anywhere in the
// pipeline is converted into a warning and a nil block, so one malformed
// shape never aborts the walk.
func (w *Walker) processShape(doc *model.Document, slide *model.Slide, shape *model.Shape) (block *model.SerializedBlock, warns []Warning) {
	defer func() {
		if r := recover(); r != nil {
			block = nil
			warns = append(warns, Warning{
				SlideIndex: slide.Index,
				ShapeID:    shape.ID,
				Field:      "shape",
				Reason:     fmt.Sprintf("processing failed, shape skipped: %v", r),
			})
		}
	}()

	// The text check runs under the same recover as the rest of the
	// pipeline: a malformed run must not abort the walk here either.
	if !shape.HasText() {
		// Images and graphics belong to a different collaborator.
		return nil, nil
	}

	width, height, ok := style.ContainerDims(slide, doc)
	if !ok {
		warns = append(warns, Warning{
			SlideIndex: slide.Index,
			ShapeID:    shape.ID,
			Field:      "geometry",
			Reason:     "container dimensions unavailable, default 16:9 canvas substituted",
		})
	}
	position := style.NormalizeRect(shape.Rect, width, height)

	resolver := style.Resolver{
		Scope:         w.options.scope,
		ShapeDefaults: &shape.Defaults,
		Theme:         &doc.Theme,
	}

	cells := w.resolveRuns(resolver, shape)
	merged := serializer.MergeRuns(cells)

	return &model.SerializedBlock{
		ShapeID:    shape.ID,
		SlideIndex: slide.Index,
		Text:       serializer.Serialize(merged, w.options.initialLabel),
		Position:   position,
		IsTitle:    shape.IsTitle,
		Runs:       merged,
	}, warns
}

// resolveRuns resolves each run in document order into a single-run cell and
// inserts a newline cell at every paragraph boundary, so paragraph breaks
// surface as line-break markers in the serialized output.
//
// Separators adopt a neighboring cell's style and paragraph so they merge
// instead of producing a change marker: the preceding cell's when one exists,
// otherwise the first resolved cell's (separators before any resolved run,
// from empty leading paragraphs, are held back until that cell appears).
func (w *Walker) resolveRuns(resolver style.Resolver, shape *model.Shape) []model.MergedRun {
	var cells []model.MergedRun
	leadingSeps := 0

	for i, para := range shape.Paragraphs {
		for _, run := range para.Runs {
			resolved := resolver.Resolve(run, para)
			for ; leadingSeps > 0; leadingSeps-- {
				cells = append(cells, model.MergedRun{Text: "\n", Style: resolved, Paragraph: para.Index})
			}
			cells = append(cells, model.MergedRun{
				Text:      run.Text,
				Style:     resolved,
				Paragraph: para.Index,
			})
		}
		if i < len(shape.Paragraphs)-1 {
			if n := len(cells); n > 0 {
				cells = append(cells, model.MergedRun{
					Text:      "\n",
					Style:     cells[n-1].Style,
					Paragraph: cells[n-1].Paragraph,
				})
			} else {
				leadingSeps++
			}
		}
	}
	return cells
}
