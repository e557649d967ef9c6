// Package guard provides the Pulse Guard stub. Real motion and calendar
// integrations are platform services; this adapter only maps strictness
// levels to nudge intervals.
package guard

import (
	"time"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/ports"
)

// Stub implements ports.DistractionGuard without any sensor input.
type Stub struct{}

// NewStub creates a sensorless guard.
func NewStub() *Stub {
	return &Stub{}
}

// Ensure Stub implements ports.DistractionGuard.
var _ ports.DistractionGuard = (*Stub)(nil)

// NudgeInterval maps the strictness level to how often the timer prompts
// a focus check.
func (g *Stub) NudgeInterval(level domain.DistractionLevel) time.Duration {
	switch level {
	case domain.DistractionStrict:
		return 5 * time.Minute
	case domain.DistractionRelaxed:
		return 20 * time.Minute
	default:
		return 10 * time.Minute
	}
}
