// Package workspace detects repository context using go-git, so focus
// sessions started inside a repository are tagged with where the work
// happened.
package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/focuspulse/pulse/internal/ports"
)

// Detector implements the ports.WorkspaceDetector interface using go-git.
type Detector struct{}

// NewDetector creates a new workspace detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Ensure Detector implements ports.WorkspaceDetector.
var _ ports.WorkspaceDetector = (*Detector)(nil)

// Detect scans the working directory for repository context.
func (d *Detector) Detect(ctx context.Context, workingDir string) (*ports.WorkspaceInfo, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repoPath, err := findRepo(workingDir)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %w", err)
	}

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	info := &ports.WorkspaceInfo{}

	head, err := repo.Head()
	if err == nil {
		branch := head.Name().Short()
		if branch == "HEAD" {
			branch = "detached"
		}
		info.Branch = branch
	}

	remotes, err := repo.Remotes()
	if err == nil && len(remotes) > 0 {
		urls := remotes[0].Config().URLs
		if len(urls) > 0 {
			info.Repository = repoNameFromURL(urls[0])
		}
	}
	if info.Repository == "" {
		info.Repository = filepath.Base(repoPath)
	}

	return info, nil
}

// IsAvailable checks whether the current directory sits inside a repository.
func (d *Detector) IsAvailable() bool {
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}
	_, err = findRepo(cwd)
	return err == nil
}

// findRepo traverses up the directory tree to find a .git entry.
func findRepo(startPath string) (string, error) {
	currentPath := startPath
	for {
		gitPath := filepath.Join(currentPath, ".git")
		info, err := os.Stat(gitPath)
		if err == nil && info.IsDir() {
			return currentPath, nil
		}
		if err == nil && !info.IsDir() {
			// Worktree reference file
			content, err := os.ReadFile(gitPath)
			if err == nil && strings.HasPrefix(string(content), "gitdir: ") {
				return currentPath, nil
			}
		}

		parent := filepath.Dir(currentPath)
		if parent == currentPath {
			break
		}
		currentPath = parent
	}
	return "", fmt.Errorf("no .git directory found")
}

// repoNameFromURL extracts the repository name from a remote URL.
func repoNameFromURL(url string) string {
	if strings.HasPrefix(url, "git@") {
		parts := strings.Split(url, ":")
		if len(parts) >= 2 {
			path := strings.TrimSuffix(parts[len(parts)-1], ".git")
			if idx := strings.LastIndex(path, "/"); idx >= 0 {
				return path[idx+1:]
			}
			return path
		}
	}
	if strings.HasPrefix(url, "http") {
		parts := strings.Split(strings.TrimSuffix(url, ".git"), "/")
		if len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}
	return url
}
