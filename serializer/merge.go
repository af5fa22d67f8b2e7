package serializer

import "github.com/datanger/PPTCheker/model"

// MergeRuns collapses adjacent runs whose effective styles are exactly equal
// (all seven attributes, post-normalization) and that belong to the same
// paragraph. Input order is preserved and the concatenation of the output
// texts reproduces the concatenation of the input texts byte for byte.
//
// Callers hand in one single-run MergedRun per resolved run; the result is
// never longer than the input.
func MergeRuns(runs []model.MergedRun) []model.MergedRun {
	if len(runs) == 0 {
		return nil
	}

	merged := make([]model.MergedRun, 0, len(runs))
	for _, r := range runs {
		if n := len(merged); n > 0 &&
			merged[n-1].Style == r.Style &&
			merged[n-1].Paragraph == r.Paragraph {
			merged[n-1].Text += r.Text
			continue
		}
		merged = append(merged, r)
	}
	return merged
}
