package ports

import (
	"time"

	"github.com/focuspulse/pulse/internal/domain"
)

// DistractionGuard is the Pulse Guard port: a distraction-detection
// collaborator scaled by strictness level. Real sensor integrations
// (motion, calendar) are out of core scope; adapters may stub them.
type DistractionGuard interface {
	// NudgeInterval returns how often the guard prompts a focus check
	// at the given strictness level.
	NudgeInterval(level domain.DistractionLevel) time.Duration
}
