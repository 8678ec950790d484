// Package report renders and writes the per-build report the pipeline leaves
// next to its artifacts.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"buildway.dev/buildway/internal/branchpath"
	"buildway.dev/buildway/internal/buildver"
)

const (
	jsonFileName     = "build-report.json"
	markdownFileName = "build-report.md"
)

// StepResult records the outcome of one pipeline step
type StepResult struct {
	Name      string        `json:"name"`
	Command   string        `json:"command"`
	Skipped   bool          `json:"skipped,omitempty"`
	Succeeded bool          `json:"succeeded"`
	Error     string        `json:"error,omitempty"`
	Duration  time.Duration `json:"duration"`
}

// Report describes one pipeline run
type Report struct {
	Branch     string             `json:"branch"`
	Version    string             `json:"version"`
	Quad       buildver.Quad      `json:"quad"`
	Folders    branchpath.Folders `json:"folders"`
	StartedAt  time.Time          `json:"startedAt"`
	FinishedAt time.Time          `json:"finishedAt"`
	Steps      []StepResult       `json:"steps,omitempty"`
	Succeeded  bool               `json:"succeeded"`
}

// Markdown renders the report as a human-readable summary
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Build %s\n\n", r.Version)
	fmt.Fprintf(&b, "- Branch: `%s`\n", r.Branch)
	fmt.Fprintf(&b, "- Branch folder: `%s`\n", r.Folders.BranchFolder)
	if r.Folders.Deployable() {
		fmt.Fprintf(&b, "- Channel: `%s`\n", r.Folders.Channel)
		fmt.Fprintf(&b, "- Channel folder: `%s`\n", r.Folders.ChannelVersionFolder)
	} else {
		fmt.Fprintf(&b, "- Channel: none (branch root is not mapped to a deployment channel)\n")
	}
	fmt.Fprintf(&b, "- Started: %s\n", r.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Finished: %s\n", r.FinishedAt.Format(time.RFC3339))

	if len(r.Steps) > 0 {
		fmt.Fprintf(&b, "\n## Steps\n\n")
		fmt.Fprintf(&b, "| Step | Result | Duration |\n")
		fmt.Fprintf(&b, "|------|--------|----------|\n")
		for _, step := range r.Steps {
			result := "ok"
			switch {
			case step.Skipped:
				result = "skipped"
			case !step.Succeeded:
				result = "failed"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", step.Name, result, step.Duration.Round(time.Millisecond))
		}
	}

	outcome := "succeeded"
	if !r.Succeeded {
		outcome = "failed"
	}
	fmt.Fprintf(&b, "\nBuild %s.\n", outcome)

	return b.String()
}

// Write writes the JSON and Markdown reports into dir, creating it if needed
func (r *Report) Write(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, jsonFileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, markdownFileName), []byte(r.Markdown()), 0644); err != nil {
		return fmt.Errorf("failed to write Markdown report: %w", err)
	}

	return nil
}
