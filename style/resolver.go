package style

import (
	"strings"

	"github.com/datanger/PPTCheker/model"
)

// Scope selects how far attribute resolution is allowed to look for a value.
type Scope int

const (
	// ScopeRunParagraphOnly consults exactly two levels: the run's explicit
	// overrides and its paragraph's defaults. This is the default and the
	// conservative choice: broader fallback produced confident-looking but
	// wrong answers often enough that it is opt-in only.
	ScopeRunParagraphOnly Scope = iota

	// ScopeFullChain additionally consults shape-level list-style defaults
	// and the document theme's font scheme. It is a separate strategy, never
	// blended into the default.
	ScopeFullChain
)

// Resolver computes the effective style of runs. The zero value resolves with
// ScopeRunParagraphOnly; ShapeDefaults and Theme are only consulted under
// ScopeFullChain.
type Resolver struct {
	Scope         Scope
	ShapeDefaults *model.RunProps
	Theme         *model.ThemeFonts
}

// Resolve computes the fully populated EffectiveStyle for a run. It is pure
// and total: nil inputs behave like levels with nothing specified, and every
// attribute that stays unresolved takes its defined default (family
// "unknown", size 18pt, black, booleans false) rather than raising an error.
func (r Resolver) Resolve(run *model.Run, para *model.Paragraph) model.EffectiveStyle {
	var runProps, paraProps, shapeProps model.RunProps
	if run != nil {
		runProps = run.Props
	}
	if para != nil {
		paraProps = para.Defaults
	}
	if r.Scope == ScopeFullChain && r.ShapeDefaults != nil {
		shapeProps = *r.ShapeDefaults
	}

	return model.EffectiveStyle{
		Family:    r.resolveFamily(runProps, paraProps, shapeProps),
		Size:      resolveSize(runProps.Size, paraProps.Size, shapeProps.Size),
		Color:     resolveColor(runProps.Color, paraProps.Color, shapeProps.Color),
		Bold:      resolveBool(runProps.Bold, paraProps.Bold, shapeProps.Bold),
		Italic:    resolveBool(runProps.Italic, paraProps.Italic, shapeProps.Italic),
		Underline: resolveBool(runProps.Underline, paraProps.Underline, shapeProps.Underline),
		Strike:    resolveBool(runProps.Strike, paraProps.Strike, shapeProps.Strike),
	}
}

// resolveFamily picks the first literal family name in fallback order and
// canonicalizes it. Theme placeholder references ("+mn-ea" etc.) are
// indirect, not literal, and are skipped without guessing; if no level yields
// a literal name the family is "unknown".
func (r Resolver) resolveFamily(run, para, shape model.RunProps) string {
	name := literalFamily(run)
	if name == "" {
		name = literalFamily(para)
	}
	if name == "" && r.Scope == ScopeFullChain {
		name = literalFamily(shape)
		if name == "" && r.Theme != nil {
			name = firstLiteral(
				r.Theme.MajorEastAsia,
				r.Theme.MajorLatin,
				r.Theme.MinorEastAsia,
				r.Theme.MinorLatin,
			)
		}
	}
	if name == "" {
		return model.FamilyUnknown
	}
	return CanonicalFamily(name)
}

// literalFamily prefers the east-Asian-script field over the Latin field when
// both are present.
func literalFamily(p model.RunProps) string {
	return firstLiteral(p.FontEastAsia, p.FontLatin)
}

func firstLiteral(names ...string) string {
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" && !strings.HasPrefix(n, "+") {
			return n
		}
	}
	return ""
}

func resolveSize(sizes ...*float64) float64 {
	for _, s := range sizes {
		if s != nil && *s > 0 {
			return *s
		}
	}
	return model.DefaultFontSize
}

func resolveColor(refs ...*model.ColorRef) model.NormalizedColor {
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if c, ok := NormalizeColor(*ref); ok {
			return c
		}
	}
	return model.Black
}

func resolveBool(values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return false
}
