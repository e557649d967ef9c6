// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/focuspulse/pulse/internal/config"
	"github.com/focuspulse/pulse/internal/domain"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// NotifySessionComplete displays a notification when a session completes.
func (n *Notifier) NotifySessionComplete(sessionType domain.SessionType, duration string) error {
	if sessionType.IsFocus() {
		return n.Notify("Focus complete!", fmt.Sprintf("Great job! You stayed focused for %s.", duration))
	}
	return n.Notify("Break over!", fmt.Sprintf("Your %s is complete. Ready to focus?", sessionType.Label()))
}

// NotifyGuardNudge displays a Pulse Guard focus check.
func (n *Notifier) NotifyGuardNudge() error {
	return n.Notify("Pulse Guard", "Still on task? Log a distraction if not.")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
