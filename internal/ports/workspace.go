package ports

import "context"

// WorkspaceInfo describes the repository context a session starts in.
type WorkspaceInfo struct {
	Repository string
	Branch     string
}

// ContextTags returns the workspace as session context tags.
func (w *WorkspaceInfo) ContextTags() []string {
	var tags []string
	if w.Repository != "" {
		tags = append(tags, "repo:"+w.Repository)
	}
	if w.Branch != "" {
		tags = append(tags, "branch:"+w.Branch)
	}
	return tags
}

// WorkspaceDetector discovers the repository context of the working
// directory. This is a driven port (implemented by adapters).
type WorkspaceDetector interface {
	// Detect scans the working directory for workspace context.
	Detect(ctx context.Context, workingDir string) (*WorkspaceInfo, error)

	// IsAvailable reports whether a workspace can be detected at all.
	IsAvailable() bool
}
