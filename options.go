package pptcheker

import (
	"go.uber.org/zap"

	"github.com/datanger/PPTCheker/serializer"
	"github.com/datanger/PPTCheker/style"
)

// WalkOptions holds configuration for a document walk.
type WalkOptions struct {
	// Attribute resolution scope. The narrow run/paragraph-only scope is the
	// default; the full chain is strictly opt-in.
	scope style.Scope

	// Label for the serializer's baseline marker.
	initialLabel string

	// Logger mirrors warnings; never used for results.
	logger *zap.Logger
}

// defaultWalkOptions returns the default walk configuration.
func defaultWalkOptions() WalkOptions {
	return WalkOptions{
		scope:        style.ScopeRunParagraphOnly,
		initialLabel: serializer.DefaultInitialLabel,
		logger:       zap.NewNop(),
	}
}

// clone creates a copy of WalkOptions.
func (o WalkOptions) clone() WalkOptions {
	return WalkOptions{
		scope:        o.scope,
		initialLabel: o.initialLabel,
		logger:       o.logger,
	}
}
