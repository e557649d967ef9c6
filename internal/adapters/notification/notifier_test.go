package notification

import (
	"testing"

	"github.com/focuspulse/pulse/internal/config"
	"github.com/focuspulse/pulse/internal/domain"
)

func TestIsEnabled(t *testing.T) {
	t.Run("nil config disables", func(t *testing.T) {
		if New(nil).IsEnabled() {
			t.Error("IsEnabled() = true, want false for nil config")
		}
	})

	t.Run("disabled config disables", func(t *testing.T) {
		n := New(&config.NotificationConfig{Enabled: false})
		if n.IsEnabled() {
			t.Error("IsEnabled() = true, want false")
		}
	})

	t.Run("enabled config enables", func(t *testing.T) {
		n := New(&config.NotificationConfig{Enabled: true})
		if !n.IsEnabled() {
			t.Error("IsEnabled() = false, want true")
		}
	})
}

func TestNotifyDisabledIsNoOp(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: false})

	if err := n.Notify("title", "message"); err != nil {
		t.Errorf("Notify() error = %v, want nil when disabled", err)
	}
	if err := n.NotifySessionComplete(domain.SessionTypeFocus, "25m"); err != nil {
		t.Errorf("NotifySessionComplete() error = %v, want nil when disabled", err)
	}
	if err := n.NotifyGuardNudge(); err != nil {
		t.Errorf("NotifyGuardNudge() error = %v, want nil when disabled", err)
	}
}
