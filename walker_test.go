package pptcheker

import (
	"archive/zip"
	"os"
	"strings"
	"testing"

	"github.com/datanger/PPTCheker/model"
	"github.com/datanger/PPTCheker/style"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

// textShape builds a shape with one run per given text, all unstyled.
func textShape(id string, texts ...string) *model.Shape {
	shape := &model.Shape{ID: id}
	for i, text := range texts {
		shape.Paragraphs = append(shape.Paragraphs, &model.Paragraph{
			Index: i,
			Runs:  []*model.Run{{Text: text}},
		})
	}
	return shape
}

// testDocument builds a two-slide document with discoverable dimensions.
func testDocument() *model.Document {
	doc := &model.Document{
		SlideWidth:  12192000,
		SlideHeight: 6858000,
	}

	title := textShape("Title 1", "Quarterly Review")
	title.IsTitle = true
	title.Rect = model.Rect{Left: 457200, Top: 274638, Width: 8229600, Height: 1143000}

	body := textShape("Content 1", "First point", "Second point")
	body.Rect = model.Rect{Left: 457200, Top: 1600200, Width: 8229600, Height: 4525963}

	slide1 := &model.Slide{Index: 0, Shapes: []*model.Shape{title, body}}
	title.Slide = slide1
	body.Slide = slide1

	closing := textShape("Closing", "Thanks")
	slide2 := &model.Slide{Index: 1, Shapes: []*model.Shape{closing}}
	closing.Slide = slide2

	doc.Slides = []*model.Slide{slide1, slide2}
	return doc
}

func TestWalk_NilDocument(t *testing.T) {
	_, _, err := New().Walk(nil)
	if err == nil {
		t.Fatal("Walk(nil) expected error")
	}
}

func TestWalk_Basic(t *testing.T) {
	doc := testDocument()

	blocks, warnings, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", FormatWarnings(warnings))
	}

	if len(blocks) != 2 {
		t.Fatalf("got %d slide entries, want 2", len(blocks))
	}
	if len(blocks[0]) != 2 || len(blocks[1]) != 1 {
		t.Fatalf("got %d+%d blocks, want 2+1", len(blocks[0]), len(blocks[1]))
	}

	titleBlock := blocks[0][0]
	if titleBlock.ShapeID != "Title 1" || titleBlock.SlideIndex != 0 {
		t.Errorf("title block identity = (%q, %d), want (Title 1, 0)", titleBlock.ShapeID, titleBlock.SlideIndex)
	}
	if !titleBlock.IsTitle {
		t.Error("title block should carry the title flag")
	}
	if !strings.HasPrefix(titleBlock.Text, "【base-style: ") {
		t.Errorf("block text should open with the baseline marker, got %q", titleBlock.Text)
	}
	if !strings.HasSuffix(titleBlock.Text, "Quarterly Review") {
		t.Errorf("block text should end with the run text, got %q", titleBlock.Text)
	}
	if len(titleBlock.Runs) == 0 {
		t.Error("block should expose its merged runs")
	}

	if blocks[1][0].SlideIndex != 1 {
		t.Errorf("second slide block has SlideIndex %d, want 1", blocks[1][0].SlideIndex)
	}
}

func TestWalk_Position(t *testing.T) {
	doc := testDocument()

	blocks, _, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	pos := blocks[0][0].Position
	// 457200 / 12192000 = 3.75%, 274638 / 6858000 rounds to 4.0%.
	if pos.Left != 3.75 {
		t.Errorf("Position.Left = %v, want 3.75", pos.Left)
	}
	if pos.Top != 4.0 {
		t.Errorf("Position.Top = %v, want 4.0", pos.Top)
	}
}

func TestWalk_SkipsTextlessShapes(t *testing.T) {
	doc := testDocument()
	doc.Slides[1].Shapes = []*model.Shape{
		{ID: "Empty", Slide: doc.Slides[1]},
	}

	blocks, _, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d slide entries, want 2", len(blocks))
	}
	if len(blocks[1]) != 0 {
		t.Errorf("textless shape should produce no block, got %d", len(blocks[1]))
	}
}

func TestWalk_ParagraphBreak(t *testing.T) {
	doc := testDocument()

	blocks, _, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	body := blocks[0][1]
	if !strings.Contains(body.Text, "First point【br】Second point") {
		t.Errorf("paragraph boundary should serialize as a break marker, got %q", body.Text)
	}
	if n := strings.Count(body.Text, "【base-style:"); n != 1 {
		t.Errorf("got %d baseline markers, want 1", n)
	}
	if strings.Contains(body.Text, "【style-change:") {
		t.Errorf("uniform styling should produce no change markers, got %q", body.Text)
	}
}

func TestWalk_StyledRuns(t *testing.T) {
	doc := testDocument()
	styled := &model.Shape{
		ID: "Styled",
		Paragraphs: []*model.Paragraph{{
			Runs: []*model.Run{
				{
					Text: "你好",
					Props: model.RunProps{
						FontEastAsia: "宋体",
						Size:         floatPtr(24),
						Color:        &model.ColorRef{RGB: "#FF0000"},
						Bold:         boolPtr(true),
					},
				},
				{Text: "world"},
			},
		}},
	}
	doc.Slides[1].Shapes = []*model.Shape{styled}

	blocks, _, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	got := blocks[1][0].Text
	want := "【base-style: family{宋体} size{24} color{#FF0000} bold{true} italic{false} underline{false} strike{false}】你好" +
		"【style-change: family{unknown} size{18} color{#000000} bold{false}】world"
	if got != want {
		t.Errorf("serialized text:\n got %q\nwant %q", got, want)
	}
}

func TestWalk_ShapeFailureContained(t *testing.T) {
	doc := testDocument()
	// A nil run after a textual one passes the text check, then blows up
	// mid-pipeline. The walk must keep the slide's other shapes.
	broken := &model.Shape{
		ID: "Broken",
		Paragraphs: []*model.Paragraph{
			{Index: 0, Runs: []*model.Run{{Text: "ok"}}},
			{Index: 1, Runs: []*model.Run{nil}},
		},
	}
	doc.Slides[0].Shapes = append([]*model.Shape{broken}, doc.Slides[0].Shapes...)

	blocks, warnings, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	if len(blocks[0]) != 2 {
		t.Fatalf("got %d blocks on slide 0, want the 2 healthy ones", len(blocks[0]))
	}
	for _, b := range blocks[0] {
		if b.ShapeID == "Broken" {
			t.Error("broken shape should not produce a block")
		}
	}

	found := false
	for _, w := range warnings {
		if w.ShapeID == "Broken" && w.Field == "shape" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a shape warning for the broken shape, got %v", warnings)
	}
}

func TestWalk_NilRunInFirstPosition(t *testing.T) {
	doc := testDocument()
	// With the nil run first, even the has-text check blows up. The walk
	// must treat that like any other per-shape failure.
	broken := &model.Shape{
		ID: "Broken",
		Paragraphs: []*model.Paragraph{
			{Index: 0, Runs: []*model.Run{nil, {Text: "ok"}}},
		},
	}
	doc.Slides[0].Shapes = append([]*model.Shape{broken}, doc.Slides[0].Shapes...)

	blocks, warnings, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	if len(blocks[0]) != 2 {
		t.Fatalf("got %d blocks on slide 0, want the 2 healthy ones", len(blocks[0]))
	}

	found := false
	for _, w := range warnings {
		if w.ShapeID == "Broken" && w.Field == "shape" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a shape warning for the broken shape, got %v", warnings)
	}
}

func TestWalk_EmptyLeadingParagraph(t *testing.T) {
	doc := testDocument()
	shape := &model.Shape{
		ID: "Leading",
		Paragraphs: []*model.Paragraph{
			{Index: 0},
			{Index: 1, Runs: []*model.Run{{
				Text:  "正文",
				Props: model.RunProps{FontEastAsia: "宋体"},
			}}},
		},
	}
	doc.Slides[1].Shapes = []*model.Shape{shape}

	blocks, _, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	// The leading break adopts the styled text's attributes, so the only
	// markers are the baseline and the break itself.
	got := blocks[1][0].Text
	want := "【base-style: family{宋体} size{18} color{#000000} bold{false} italic{false} underline{false} strike{false}】【br】正文"
	if got != want {
		t.Errorf("serialized text:\n got %q\nwant %q", got, want)
	}
	if strings.Contains(got, "【style-change:") {
		t.Errorf("empty leading paragraph fabricated a change marker: %q", got)
	}
}

func TestWalk_GeometryFallback(t *testing.T) {
	doc := testDocument()
	doc.SlideWidth = 0
	doc.SlideHeight = 0

	shape := textShape("Half", "x")
	shape.Rect = model.Rect{Left: 6096000, Top: 3429000, Width: 6096000, Height: 3429000}
	doc.Slides = []*model.Slide{{Index: 0, Shapes: []*model.Shape{shape}}}

	blocks, warnings, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	found := false
	for _, w := range warnings {
		if w.Field == "geometry" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a geometry warning, got %v", warnings)
	}

	// Percentages against the substituted default 16:9 canvas.
	pos := blocks[0][0].Position
	if pos.Left != 50 || pos.Top != 50 || pos.Width != 50 || pos.Height != 50 {
		t.Errorf("Position = %+v, want 50%% all around", pos)
	}
}

func TestWalker_WithInitialLabel(t *testing.T) {
	doc := testDocument()

	base := New()
	custom := base.WithInitialLabel("样式")

	if base.options.initialLabel != "base-style" {
		t.Errorf("WithInitialLabel mutated the receiver: %q", base.options.initialLabel)
	}

	blocks, _, err := custom.Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if !strings.HasPrefix(blocks[0][0].Text, "【样式: ") {
		t.Errorf("custom label not applied, got %q", blocks[0][0].Text)
	}
}

func TestWalker_WithScope(t *testing.T) {
	doc := testDocument()
	shape := textShape("Scoped", "text")
	shape.Defaults = model.RunProps{FontEastAsia: "楷体"}
	doc.Slides = []*model.Slide{{Index: 0, Shapes: []*model.Shape{shape}}}

	narrow, _, err := New().Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if got := narrow[0][0].Runs[0].Style.Family; got != model.FamilyUnknown {
		t.Errorf("narrow scope family = %q, want %q", got, model.FamilyUnknown)
	}

	full, _, err := New().WithScope(style.ScopeFullChain).Walk(doc)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if got := full[0][0].Runs[0].Style.Family; got != "楷体" {
		t.Errorf("full-chain family = %q, want 楷体", got)
	}
}

func TestWalkFile_NotFound(t *testing.T) {
	_, _, err := New().WalkFile("/nonexistent/deck.pptx")
	if err == nil {
		t.Fatal("WalkFile() expected error for missing file")
	}
}

// ============================================================================
// End-to-end: real (synthetic) .pptx through the whole pipeline
// ============================================================================

func writeZipEntry(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// createSmallPPTX creates a one-slide deck with a single styled run.
func createSmallPPTX(t *testing.T) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-e2e-*.pptx")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tmpFile.Close()

	f, err := os.Create(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	writeZipEntry(t, zw, "[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
  <Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
</Types>`)

	writeZipEntry(t, zw, "ppt/presentation.xml", `<?xml version="1.0" encoding="UTF-8"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:sldSz cx="12192000" cy="6858000"/>
</p:presentation>`)

	writeZipEntry(t, zw, "ppt/slides/slide1.xml", `<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="2" name="Greeting"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="3048000" y="1714500"/>
            <a:ext cx="6096000" cy="3429000"/>
          </a:xfrm>
        </p:spPr>
        <p:txBody>
          <a:bodyPr/>
          <a:p>
            <a:r>
              <a:rPr lang="zh-CN" sz="2400" b="1">
                <a:solidFill>
                  <a:srgbClr val="FF0000"/>
                </a:solidFill>
                <a:ea typeface="宋体"/>
              </a:rPr>
              <a:t>你好</a:t>
            </a:r>
          </a:p>
        </p:txBody>
      </p:sp>
    </p:spTree>
  </p:cSld>
</p:sld>`)

	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}

	return tmpFile.Name()
}

func TestWalkFile_EndToEnd(t *testing.T) {
	path := createSmallPPTX(t)
	defer os.Remove(path)

	blocks, warnings, err := New().WalkFile(path)
	if err != nil {
		t.Fatalf("WalkFile() failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", FormatWarnings(warnings))
	}

	if len(blocks) != 1 || len(blocks[0]) != 1 {
		t.Fatalf("got %d/%d blocks, want one block on one slide", len(blocks), len(blocks[0]))
	}

	block := blocks[0][0]
	if block.ShapeID != "Greeting" {
		t.Errorf("ShapeID = %q, want Greeting", block.ShapeID)
	}

	want := "【base-style: family{宋体} size{24} color{#FF0000} bold{true} italic{false} underline{false} strike{false}】你好"
	if block.Text != want {
		t.Errorf("serialized text:\n got %q\nwant %q", block.Text, want)
	}

	// 3048000/12192000 = 25%, 1714500/6858000 = 25%.
	if block.Position.Left != 25 || block.Position.Top != 25 {
		t.Errorf("Position = %+v, want 25%% offsets", block.Position)
	}
}

func TestExtractBlocks(t *testing.T) {
	path := createSmallPPTX(t)
	defer os.Remove(path)

	blocks, _, err := ExtractBlocks(path)
	if err != nil {
		t.Fatalf("ExtractBlocks() failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d slide entries, want 1", len(blocks))
	}
}

func TestWarning_String(t *testing.T) {
	w := Warning{SlideIndex: 2, ShapeID: "Body", Field: "geometry", Reason: "no dimensions"}
	got := w.String()
	want := `slide 3, shape "Body", geometry: no dimensions`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFormatWarnings(t *testing.T) {
	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}

	warnings := []Warning{
		{SlideIndex: 0, ShapeID: "A", Field: "shape", Reason: "skipped"},
		{SlideIndex: 1, ShapeID: "B", Field: "geometry", Reason: "fallback"},
	}
	got := FormatWarnings(warnings)
	if !strings.Contains(got, "; ") {
		t.Errorf("FormatWarnings should join with semicolons, got %q", got)
	}
	if !strings.Contains(got, `shape "A"`) || !strings.Contains(got, `shape "B"`) {
		t.Errorf("FormatWarnings missing entries: %q", got)
	}
}
