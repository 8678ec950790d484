// Package pipeline runs the configured build steps with the derived version
// and artifact folders substituted into their command lines. It is a thin
// caller around the pure derivation core; exit-code decisions stay with the
// CLI.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/kballard/go-shellquote"

	"buildway.dev/buildway/internal/branchpath"
	"buildway.dev/buildway/internal/buildver"
	"buildway.dev/buildway/internal/config"
	"buildway.dev/buildway/internal/output"
	"buildway.dev/buildway/internal/report"
)

// Pipeline executes the configured steps for one build
type Pipeline struct {
	cfg    *config.Config
	splog  *output.Splog
	runner *CommandRunner
}

// New creates a pipeline rooted at the repository root
func New(cfg *config.Config, splog *output.Splog, repoRoot string) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		splog:  splog,
		runner: NewCommandRunner(repoRoot),
	}
}

// Run derives the version and folders for branch at the given instant,
// executes every configured step in order, and returns the report. The first
// failing step aborts the run; these are deterministic, input-driven
// failures and are never retried. Deploy-only steps are skipped when the
// branch maps to no deployment channel.
func (p *Pipeline) Run(ctx context.Context, branch string, at time.Time) (*report.Report, error) {
	quad, err := buildver.Encode(at, p.cfg.Build, p.cfg.Major)
	if err != nil {
		return nil, err
	}

	folders, err := branchpath.Derive(branch, quad.String(), p.cfg.DeriveOptions())
	if err != nil {
		return nil, err
	}

	run := &report.Report{
		Branch:    branch,
		Version:   quad.String(),
		Quad:      quad,
		Folders:   folders,
		StartedAt: at,
	}

	props := NewProperties(branch, quad, folders)
	var stepErr error
	for _, step := range p.cfg.Steps {
		result := p.runStep(ctx, step, folders, props)
		run.Steps = append(run.Steps, result)
		if !result.Skipped && !result.Succeeded {
			stepErr = fmt.Errorf("step %s failed: %s", step.Name, result.Error)
			break
		}
	}

	run.FinishedAt = time.Now()
	run.Succeeded = stepErr == nil

	if err := run.Write(p.ReportDir(folders)); err != nil {
		p.splog.Warn("could not write build report: %v", err)
	}

	return run, stepErr
}

// ReportDir returns the directory reports for this derivation are written to
func (p *Pipeline) ReportDir(folders branchpath.Folders) string {
	return filepath.Join(p.cfg.OutputRoot, filepath.FromSlash(folders.BranchVersionFolder))
}

func (p *Pipeline) runStep(ctx context.Context, step config.Step, folders branchpath.Folders, props Properties) report.StepResult {
	result := report.StepResult{
		Name:    step.Name,
		Command: props.Expand(step.Command),
	}

	if step.DeployOnly && !folders.Deployable() {
		p.splog.Info("skipping %s: branch has no deployment channel", step.Name)
		result.Skipped = true
		return result
	}

	words, err := shellquote.Split(result.Command)
	if err != nil {
		result.Error = fmt.Sprintf("invalid command line: %v", err)
		return result
	}
	if len(words) == 0 {
		result.Error = "empty command line"
		return result
	}

	p.splog.Info("running %s: %s", step.Name, result.Command)

	start := time.Now()
	_, err = p.runner.Run(ctx, words[0], words[1:]...)
	result.Duration = time.Since(start)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Succeeded = true
	return result
}
