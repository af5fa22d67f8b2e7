// Package pptx provides PPTX (Office Open XML Presentation) document parsing.
package pptx

import (
	"encoding/xml"
	"strings"
)

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName xml.Name    `xml:"presentation"`
	SlideSz *slideSzXML `xml:"sldSz"`
}

type slideSzXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// slideXML represents a ppt/slides/slide*.xml file structure.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

// spTreeXML represents the shape tree containing all shapes on a slide.
type spTreeXML struct {
	Sp    []spXML    `xml:"sp"`    // Regular shapes
	GrpSp []grpSpXML `xml:"grpSp"` // Grouped shapes
}

// grpSpXML represents a group of shapes.
type grpSpXML struct {
	Sp    []spXML    `xml:"sp"`
	GrpSp []grpSpXML `xml:"grpSp"` // Nested groups
}

// spXML represents a shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
	NvPr  nvPrXML  `xml:"nvPr"`
}

type cNvPrXML struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"` // Placeholder info
}

type phXML struct {
	Type string `xml:"type,attr"` // title, body, subTitle, ctrTitle, etc.
	Idx  int    `xml:"idx,attr"`
}

type spPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

type xfrmXML struct {
	Off offXML `xml:"off"`
	Ext extXML `xml:"ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"` // X position in EMUs
	Y int64 `xml:"y,attr"` // Y position in EMUs
}

type extXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// txBodyXML represents text body content.
type txBodyXML struct {
	LstStyle *lstStyleXML `xml:"lstStyle"`
	P        []pXML       `xml:"p"` // Paragraphs
}

// lstStyleXML carries the shape's own list-style defaults. Only the first
// level matters for run styling.
type lstStyleXML struct {
	Lvl1PPr *pPrXML `xml:"lvl1pPr"`
}

// pXML represents a paragraph. Runs and line breaks interleave in the
// source, and encoding/xml collects repeated elements per tag, losing the
// order. The custom unmarshaler below folds breaks into the run stream
// instead: a <a:br/> appends a newline to the preceding run's text.
type pXML struct {
	PPr  *pPrXML
	Runs []rXML
}

func (p *pXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				p.PPr = &pPrXML{}
				if err := d.DecodeElement(p.PPr, &t); err != nil {
					return err
				}
			case "r", "fld":
				var run rXML
				if err := d.DecodeElement(&run, &t); err != nil {
					return err
				}
				p.Runs = append(p.Runs, run)
			case "br":
				if err := d.Skip(); err != nil {
					return err
				}
				if n := len(p.Runs); n > 0 {
					p.Runs[n-1].T += "\n"
				} else {
					p.Runs = append(p.Runs, rXML{T: "\n"})
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

type pPrXML struct {
	Lvl    int     `xml:"lvl,attr"`
	DefRPr *rPrXML `xml:"defRPr"` // Default run properties for this level
}

// rXML represents a text run (or a field, which carries the same shape).
type rXML struct {
	RPr *rPrXML `xml:"rPr"`
	T   string  `xml:"t"`
}

// rPrXML carries run-level character properties. The same element shape
// appears as rPr, defRPr and endParaRPr.
type rPrXML struct {
	Sz        int           `xml:"sz,attr"`     // Font size in hundredths of a point (0 = absent)
	B         string        `xml:"b,attr"`      // Bold ("1"/"0"/"true"/"false", "" = absent)
	I         string        `xml:"i,attr"`      // Italic
	U         string        `xml:"u,attr"`      // Underline type ("none" = explicitly off)
	Strike    string        `xml:"strike,attr"` // noStrike, sngStrike, dblStrike
	Latin     *typefaceXML  `xml:"latin"`
	EA        *typefaceXML  `xml:"ea"`
	SolidFill *solidFillXML `xml:"solidFill"`
}

type typefaceXML struct {
	Typeface string `xml:"typeface,attr"`
}

type solidFillXML struct {
	SrgbClr   *colorValXML `xml:"srgbClr"`
	SchemeClr *colorValXML `xml:"schemeClr"`
}

// colorValXML covers both srgbClr (val is 6 hex digits) and schemeClr (val
// is a theme slot like "accent1"). lumMod/lumOff carry luminance adjustments
// in thousandths of a percent.
type colorValXML struct {
	Val    string     `xml:"val,attr"`
	LumMod *valPctXML `xml:"lumMod"`
	LumOff *valPctXML `xml:"lumOff"`
}

type valPctXML struct {
	Val int64 `xml:"val,attr"` // 100000 = 100%
}

// themeXML represents the parts of ppt/theme/theme1.xml the reader needs:
// the font scheme's major/minor latin and east-asian typefaces.
type themeXML struct {
	XMLName       xml.Name         `xml:"theme"`
	ThemeElements themeElementsXML `xml:"themeElements"`
}

type themeElementsXML struct {
	FontScheme fontSchemeXML `xml:"fontScheme"`
}

type fontSchemeXML struct {
	MajorFont fontGroupXML `xml:"majorFont"`
	MinorFont fontGroupXML `xml:"minorFont"`
}

type fontGroupXML struct {
	Latin typefaceXML `xml:"latin"`
	EA    typefaceXML `xml:"ea"`
}

// isTitlePlaceholder reports whether the placeholder type marks the shape as
// a slide title.
func isTitlePlaceholder(phType string) bool {
	switch phType {
	case "title", "ctrTitle", "subTitle", "vertTitle":
		return true
	}
	return false
}

// parseFlag converts an OOXML boolean attribute to a tri-state flag.
func parseFlag(s string) *bool {
	switch strings.ToLower(s) {
	case "1", "true", "on":
		v := true
		return &v
	case "0", "false", "off":
		v := false
		return &v
	}
	return nil
}
