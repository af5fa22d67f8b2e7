package serializer

import (
	"strconv"
	"strings"

	"github.com/datanger/PPTCheker/model"
)

// DefaultInitialLabel tags the baseline marker when the caller does not
// supply its own label.
const DefaultInitialLabel = "base-style"

// changeLabel tags markers that list only the attributes differing from the
// baseline.
const changeLabel = "style-change"

// breakMarker replaces a newline in run text.
const breakMarker = "【br】"

// attrKeys is the fixed emission order for attribute key/value pairs.
var attrKeys = [...]string{"family", "size", "color", "bold", "italic", "underline", "strike"}

// Serialize encodes merged runs as the differential marker string.
//
// The baseline is the style of the first merged run whose text is not pure
// whitespace, emitted once in full under the initial label before any text.
// Every subsequent run whose style differs from the baseline gets a marker
// listing only the differing attributes, immediately before its text; runs
// identical to the baseline get no marker at all. Empty input produces a
// single initial marker carrying the unset-normalized defaults.
//
// Identical input always yields byte-identical output.
func Serialize(runs []model.MergedRun, initialLabel string) string {
	if initialLabel == "" {
		initialLabel = DefaultInitialLabel
	}

	baseline := baselineStyle(runs)
	var b strings.Builder
	b.WriteString(fullMarker(baseline, initialLabel))

	for _, r := range runs {
		if r.Text == "" {
			// Nothing to attach a marker to; markers never appear
			// back-to-back without intervening text.
			continue
		}
		if r.Style != baseline {
			b.WriteString(changeMarker(baseline, r.Style))
		}
		writeTextWithBreaks(&b, r.Text)
	}
	return b.String()
}

// baselineStyle picks the style of the first non-whitespace run; with no such
// run (or no runs at all) the defaults serve as baseline.
func baselineStyle(runs []model.MergedRun) model.EffectiveStyle {
	for _, r := range runs {
		if strings.TrimSpace(r.Text) != "" {
			return r.Style
		}
	}
	return model.DefaultStyle()
}

// fullMarker emits all seven attributes under the given label.
func fullMarker(s model.EffectiveStyle, label string) string {
	parts := make([]string, 0, len(attrKeys))
	for _, k := range attrKeys {
		parts = append(parts, k+"{"+attrValue(s, k)+"}")
	}
	return "【" + label + ": " + strings.Join(parts, " ") + "】"
}

// changeMarker emits only the attributes of curr that differ from base, in
// fixed key order. Styles are compared attribute-wise so the marker never
// repeats an unchanged value.
func changeMarker(base, curr model.EffectiveStyle) string {
	var parts []string
	for _, k := range attrKeys {
		if bv, cv := attrValue(base, k), attrValue(curr, k); bv != cv {
			parts = append(parts, k+"{"+cv+"}")
		}
	}
	return "【" + changeLabel + ": " + strings.Join(parts, " ") + "】"
}

func attrValue(s model.EffectiveStyle, key string) string {
	switch key {
	case "family":
		return s.Family
	case "size":
		return strconv.FormatFloat(s.Size, 'f', -1, 64)
	case "color":
		return s.Color.Hex
	case "bold":
		return strconv.FormatBool(s.Bold)
	case "italic":
		return strconv.FormatBool(s.Italic)
	case "underline":
		return strconv.FormatBool(s.Underline)
	case "strike":
		return strconv.FormatBool(s.Strike)
	}
	return ""
}

// writeTextWithBreaks copies run text, replacing each newline with the break
// marker. Literal spaces directly after a newline become a single indent
// marker carrying their count; the spaces themselves are consumed.
func writeTextWithBreaks(b *strings.Builder, text string) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString(breakMarker)
			indent := 0
			for indent < len(line) && line[indent] == ' ' {
				indent++
			}
			if indent > 0 {
				b.WriteString("【indent{")
				b.WriteString(strconv.Itoa(indent))
				b.WriteString("}】")
				line = line[indent:]
			}
		}
		b.WriteString(line)
	}
}
