// Package pptx provides PPTX (Office Open XML Presentation) document parsing.
package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/datanger/PPTCheker/model"
)

// Reader provides access to PPTX document content.
type Reader struct {
	zipReader    *zip.ReadCloser
	presentation *presentationXML
	doc          *model.Document
}

// Open opens a PPTX file for reading and parses its slides, theme and
// presentation-level properties.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr}

	// Validate required files exist
	if err := r.validate(); err != nil {
		zr.Close()
		return nil, err
	}

	if err := r.parsePresentation(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	if err := r.buildDocument(); err != nil {
		zr.Close()
		return nil, err
	}

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// Document returns the parsed presentation as a document tree.
func (r *Reader) Document() (*model.Document, error) {
	if r.doc == nil {
		return nil, fmt.Errorf("document not parsed")
	}
	return r.doc, nil
}

// SlideCount returns the number of slides that parsed successfully.
func (r *Reader) SlideCount() int {
	if r.doc == nil {
		return 0
	}
	return len(r.doc.Slides)
}

// validate checks that required PPTX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"ppt/presentation.xml",
	}

	fileMap := make(map[string]bool)
	for _, f := range r.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	// Check for at least one slide
	hasSlide := false
	for name := range fileMap {
		if strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml") {
			hasSlide = true
			break
		}
	}
	if !hasSlide {
		return fmt.Errorf("no slides found in presentation")
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// decodeXML unmarshals an XML part. Slide parts occasionally declare
// non-UTF-8 encodings, so the decoder routes through charset detection.
func decodeXML(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}

// parsePresentation parses the main presentation file.
func (r *Reader) parsePresentation() error {
	data, err := r.getFileContent("ppt/presentation.xml")
	if err != nil {
		return err
	}

	r.presentation = &presentationXML{}
	return decodeXML(data, r.presentation)
}

// buildDocument assembles the document tree from the archive parts.
func (r *Reader) buildDocument() error {
	doc := &model.Document{}

	if r.presentation.SlideSz != nil {
		doc.SlideWidth = float64(r.presentation.SlideSz.Cx)
		doc.SlideHeight = float64(r.presentation.SlideSz.Cy)
	}

	r.parseTheme(doc)

	if err := r.parseSlides(doc); err != nil {
		return err
	}

	r.doc = doc
	return nil
}

// parseTheme reads the first theme part's font scheme. A missing or broken
// theme leaves the document's theme fonts empty.
func (r *Reader) parseTheme(doc *model.Document) {
	data, err := r.getFileContent("ppt/theme/theme1.xml")
	if err != nil {
		return
	}

	var theme themeXML
	if err := decodeXML(data, &theme); err != nil {
		return
	}

	fs := theme.ThemeElements.FontScheme
	doc.Theme = model.ThemeFonts{
		MajorLatin:    fs.MajorFont.Latin.Typeface,
		MajorEastAsia: fs.MajorFont.EA.Typeface,
		MinorLatin:    fs.MinorFont.Latin.Typeface,
		MinorEastAsia: fs.MinorFont.EA.Typeface,
	}
}

// parseSlides parses all slide files in presentation order.
func (r *Reader) parseSlides(doc *model.Document) error {
	slideFiles := make([]string, 0)
	for _, f := range r.zipReader.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			// Exclude relationship files
			if !strings.Contains(f.Name, "_rels") {
				slideFiles = append(slideFiles, f.Name)
			}
		}
	}

	// Sort slides by number
	sort.Slice(slideFiles, func(i, j int) bool {
		return extractSlideNumber(slideFiles[i]) < extractSlideNumber(slideFiles[j])
	})

	for _, slidePath := range slideFiles {
		slide, err := r.parseSlide(slidePath, len(doc.Slides))
		if err != nil {
			continue // Skip slides that fail to parse
		}
		doc.Slides = append(doc.Slides, slide)
	}

	if len(doc.Slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}

	return nil
}

// extractSlideNumber extracts the slide number from a path like "ppt/slides/slide1.xml"
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// parseSlide parses a single slide file into a slide node.
func (r *Reader) parseSlide(slidePath string, index int) (*model.Slide, error) {
	data, err := r.getFileContent(slidePath)
	if err != nil {
		return nil, err
	}

	var sx slideXML
	if err := decodeXML(data, &sx); err != nil {
		return nil, err
	}

	slide := &model.Slide{Index: index}

	shapes := collectShapes(&sx.CSld.SpTree)
	for i, sp := range shapes {
		shape := convertShape(sp, i+1)
		if shape == nil {
			continue
		}
		shape.Slide = slide
		slide.Shapes = append(slide.Shapes, shape)
	}

	// Walk order is visual: top edge first, then left edge.
	sort.SliceStable(slide.Shapes, func(i, j int) bool {
		a, b := slide.Shapes[i].Rect, slide.Shapes[j].Rect
		if a.Top != b.Top {
			return a.Top < b.Top
		}
		return a.Left < b.Left
	})

	return slide, nil
}

// collectShapes flattens the shape tree, recursing into groups.
func collectShapes(tree *spTreeXML) []*spXML {
	shapes := make([]*spXML, 0, len(tree.Sp))
	for i := range tree.Sp {
		shapes = append(shapes, &tree.Sp[i])
	}
	for i := range tree.GrpSp {
		shapes = append(shapes, collectGroup(&tree.GrpSp[i])...)
	}
	return shapes
}

func collectGroup(grp *grpSpXML) []*spXML {
	shapes := make([]*spXML, 0, len(grp.Sp))
	for i := range grp.Sp {
		shapes = append(shapes, &grp.Sp[i])
	}
	for i := range grp.GrpSp {
		shapes = append(shapes, collectGroup(&grp.GrpSp[i])...)
	}
	return shapes
}

// convertShape converts a parsed shape element to a shape node. Shapes
// without a text body are dropped; the walker has nothing to do with them.
func convertShape(sp *spXML, ordinal int) *model.Shape {
	if sp.TxBody == nil {
		return nil
	}

	shape := &model.Shape{
		ID: sp.NvSpPr.CNvPr.Name,
	}
	if shape.ID == "" {
		shape.ID = fmt.Sprintf("shape-%d", ordinal)
	}

	if sp.NvSpPr.NvPr.Ph != nil {
		shape.IsTitle = isTitlePlaceholder(sp.NvSpPr.NvPr.Ph.Type)
	}

	if sp.SpPr.Xfrm != nil {
		shape.Rect = model.Rect{
			Left:   float64(sp.SpPr.Xfrm.Off.X),
			Top:    float64(sp.SpPr.Xfrm.Off.Y),
			Width:  float64(sp.SpPr.Xfrm.Ext.Cx),
			Height: float64(sp.SpPr.Xfrm.Ext.Cy),
		}
	}

	if sp.TxBody.LstStyle != nil && sp.TxBody.LstStyle.Lvl1PPr != nil {
		shape.Defaults = convertRunProps(sp.TxBody.LstStyle.Lvl1PPr.DefRPr)
	}

	for i := range sp.TxBody.P {
		shape.Paragraphs = append(shape.Paragraphs, convertParagraph(&sp.TxBody.P[i], i))
	}

	return shape
}

// convertParagraph converts a paragraph element, carrying its own defaults.
func convertParagraph(p *pXML, index int) *model.Paragraph {
	para := &model.Paragraph{Index: index}

	if p.PPr != nil {
		para.Defaults = convertRunProps(p.PPr.DefRPr)
	}

	for i := range p.Runs {
		rx := &p.Runs[i]
		para.Runs = append(para.Runs, &model.Run{
			Text:  rx.T,
			Props: convertRunProps(rx.RPr),
		})
	}

	return para
}

// convertRunProps maps parsed character properties onto the tri-state run
// properties the resolver consumes. Absent attributes stay nil so fallback
// can see through them.
func convertRunProps(rPr *rPrXML) model.RunProps {
	var props model.RunProps
	if rPr == nil {
		return props
	}

	if rPr.EA != nil {
		props.FontEastAsia = rPr.EA.Typeface
	}
	if rPr.Latin != nil {
		props.FontLatin = rPr.Latin.Typeface
	}

	if rPr.Sz > 0 {
		sz := float64(rPr.Sz) / 100
		props.Size = &sz
	}

	props.Color = convertColor(rPr.SolidFill)
	props.Bold = parseFlag(rPr.B)
	props.Italic = parseFlag(rPr.I)
	props.Underline = convertUnderline(rPr.U)
	props.Strike = convertStrike(rPr.Strike)

	return props
}

// convertColor maps a solid fill to a color reference. Explicit sRGB values
// win over scheme references when both appear.
func convertColor(fill *solidFillXML) *model.ColorRef {
	if fill == nil {
		return nil
	}

	if fill.SrgbClr != nil {
		return &model.ColorRef{
			RGB:        "#" + strings.ToUpper(fill.SrgbClr.Val),
			Brightness: luminance(fill.SrgbClr),
		}
	}
	if fill.SchemeClr != nil {
		return &model.ColorRef{
			ThemeSlot:  fill.SchemeClr.Val,
			Brightness: luminance(fill.SchemeClr),
		}
	}
	return nil
}

// luminance derives a [-1, 1] brightness from lumMod/lumOff. A lumOff is a
// tint of that fraction; a lumMod under 100% is a shade by the shortfall.
func luminance(c *colorValXML) float64 {
	if c.LumOff != nil && c.LumOff.Val > 0 {
		return float64(c.LumOff.Val) / 100000
	}
	if c.LumMod != nil && c.LumMod.Val > 0 && c.LumMod.Val < 100000 {
		return float64(c.LumMod.Val)/100000 - 1
	}
	return 0
}

// convertUnderline maps the underline attribute: absent stays unset, "none"
// is an explicit off, any style value is on.
func convertUnderline(u string) *bool {
	switch u {
	case "":
		return nil
	case "none":
		v := false
		return &v
	default:
		v := true
		return &v
	}
}

// convertStrike maps the strike attribute the same way.
func convertStrike(s string) *bool {
	switch s {
	case "":
		return nil
	case "noStrike":
		v := false
		return &v
	default:
		v := true
		return &v
	}
}
