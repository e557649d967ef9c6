package cmd

import (
	"testing"
	"time"
)

func TestRootCmd(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd should not be nil")
	}
	if rootCmd.Use != "pulse" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "pulse")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("db") == nil {
		t.Error("--db flag should be registered")
	}
	if rootCmd.PersistentFlags().Lookup("json") == nil {
		t.Error("--json flag should be registered")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{
		"start", "break", "pause", "resume", "stop", "status",
		"review", "task", "stats", "insights", "achievements",
		"plan", "config", "export", "mcp",
	}

	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[sub.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("subcommand %q should be registered", name)
		}
	}
}

func TestFormatCmdDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"zero", 0, "00:00"},
		{"seconds only", 42 * time.Second, "00:42"},
		{"minutes and seconds", 25*time.Minute + 30*time.Second, "25:30"},
		{"over an hour", 90 * time.Minute, "90:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCmdDuration(tt.duration); got != tt.want {
				t.Errorf("formatCmdDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(25 * time.Minute); got != "25 min" {
		t.Errorf("formatMinutes(25m) = %q, want %q", got, "25 min")
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0.5, "30m"},
		{1.0, "1.0h"},
		{2.25, "2.2h"},
	}

	for _, tt := range tests {
		if got := formatHours(tt.hours); got != tt.want {
			t.Errorf("formatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
