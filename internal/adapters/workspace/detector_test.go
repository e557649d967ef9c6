package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestNewDetector(t *testing.T) {
	d := NewDetector()
	if d == nil {
		t.Fatal("NewDetector() returned nil")
	}
}

func TestDetector_IsAvailable(t *testing.T) {
	d := NewDetector()

	// This may be true or false depending on where the test runs.
	// We just verify it doesn't panic.
	_ = d.IsAvailable()
}

func TestDetector_Detect(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pulse-workspace-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	testFile := filepath.Join(tmpDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("test content"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}
	if _, err := worktree.Add("test.txt"); err != nil {
		t.Fatalf("Failed to add file: %v", err)
	}
	if _, err := worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
		},
	}); err != nil {
		t.Fatalf("Failed to create commit: %v", err)
	}

	d := NewDetector()
	ctx := context.Background()

	info, err := d.Detect(ctx, tmpDir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if info == nil {
		t.Fatal("Detect() returned nil info")
	}
	if info.Branch == "" {
		t.Error("Detect() should resolve a branch name")
	}
	// Without a remote the directory name is the repository name.
	if info.Repository != filepath.Base(tmpDir) {
		t.Errorf("Repository = %q, want %q", info.Repository, filepath.Base(tmpDir))
	}

	tags := info.ContextTags()
	if len(tags) != 2 {
		t.Fatalf("ContextTags() = %v, want repo and branch tags", tags)
	}
}

func TestDetector_Detect_WithRemote(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pulse-workspace-remote-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	repo, err := git.PlainInit(tmpDir, false)
	if err != nil {
		t.Fatalf("Failed to init git repo: %v", err)
	}

	if _, err := repo.CreateRemote(&config.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:focuspulse/pulse.git"},
	}); err != nil {
		t.Fatalf("Failed to create remote: %v", err)
	}

	info, err := NewDetector().Detect(context.Background(), tmpDir)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if info.Repository != "pulse" {
		t.Errorf("Repository = %q, want %q", info.Repository, "pulse")
	}
}

func TestDetector_Detect_NotARepo(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "pulse-workspace-plain-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if _, err := NewDetector().Detect(context.Background(), tmpDir); err == nil {
		t.Error("Detect() on a plain directory should fail")
	}
}

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"git@github.com:focuspulse/pulse.git", "pulse"},
		{"https://github.com/focuspulse/pulse.git", "pulse"},
		{"https://github.com/focuspulse/pulse", "pulse"},
		{"weird-url", "weird-url"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := repoNameFromURL(tt.url); got != tt.want {
				t.Errorf("repoNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
