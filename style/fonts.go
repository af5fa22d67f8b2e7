package style

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/datanger/PPTCheker/model"
)

// The recognized font families. Raw names are matched against per-family
// alias sets after normalization; anything else canonicalizes to
// model.FamilyOther.
const (
	FamilySimSun = "宋体"
	FamilyYaHei  = "微软雅黑"
	FamilyKaiTi  = "楷体"
	FamilyMeiryo = "Meiryo UI"
	FamilyTimes  = "Times New Roman"
)

// exact alias matches, keyed by folded form (lowercase, no spaces).
var familyAliases = map[string]string{
	"宋体":                FamilySimSun,
	"simsun":            FamilySimSun,
	"微软雅黑":              FamilyYaHei,
	"microsoftyahei":    FamilyYaHei,
	"msyahei":           FamilyYaHei,
	"yahei":             FamilyYaHei,
	"楷体":                FamilyKaiTi,
	"kaiti":             FamilyKaiTi,
	"kaitisc":           FamilyKaiTi,
	"stkaiti":           FamilyKaiTi,
	"meiryoui":          FamilyMeiryo,
	"meiryo":            FamilyMeiryo,
	"timesnewroman":     FamilyTimes,
	"timenewroman":      FamilyTimes,
	"timesnewromanpsmt": FamilyTimes,
}

// cosmeticSuffixes are weight/style markers and regional-standard suffixes
// stripped (repeatedly) from the folded name before alias matching.
var cosmeticSuffixes = []string{
	"-gb2312", "_gb2312", "gb2312",
	"bold", "semibold", "light", "regular", "italic", "medium",
}

// CanonicalFamily maps a raw font family name onto the recognized set.
//
// An empty (or whitespace-only) name means no name was found at all and
// yields model.FamilyUnknown. A non-empty name that matches no alias set
// yields model.FamilyOther; theme placeholder references ("+mn-ea" and
// friends) are never literal names, so they land there too. The function is
// idempotent: canonical outputs map to themselves.
func CanonicalFamily(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" || name == model.FamilyUnknown {
		return model.FamilyUnknown
	}
	if strings.HasPrefix(name, "+") {
		return model.FamilyOther
	}

	folded := foldName(name)

	// Substring families first: vendor variants like "新宋体" or
	// "Meiryo UI Bold" still carry the base name.
	if strings.Contains(folded, "宋体") || strings.Contains(folded, "simsun") {
		return FamilySimSun
	}
	if strings.Contains(folded, "meiryo") {
		return FamilyMeiryo
	}

	if fam, ok := familyAliases[folded]; ok {
		return fam
	}
	if fam, ok := familyAliases[stripCosmeticSuffixes(folded)]; ok {
		return fam
	}

	return model.FamilyOther
}

// foldName normalizes width variants (full-width Latin, half-width kana),
// lowercases, and removes all spaces.
func foldName(name string) string {
	folded := width.Fold.String(name)
	folded = strings.ToLower(folded)
	return strings.ReplaceAll(folded, " ", "")
}

func stripCosmeticSuffixes(name string) string {
	for changed := true; changed; {
		changed = false
		for _, suffix := range cosmeticSuffixes {
			if trimmed := strings.TrimSuffix(name, suffix); trimmed != name && trimmed != "" {
				name = strings.TrimSuffix(trimmed, "-")
				changed = true
			}
		}
	}
	return name
}
