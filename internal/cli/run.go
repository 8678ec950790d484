package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"buildway.dev/buildway/internal/config"
	"buildway.dev/buildway/internal/github"
	"buildway.dev/buildway/internal/output"
	"buildway.dev/buildway/internal/pipeline"
	"buildway.dev/buildway/internal/runtime"
)

// productionChannel is the channel whose builds may be published as releases
const productionChannel = "production"

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var (
		branch  string
		publish bool
		remote  string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Derive the version and folders, then execute the configured pipeline steps",
		Long: `Run the build pipeline: encode the version quad for the current time,
derive the artifact routing folders for the branch, execute every configured
step with those values substituted into its command line, and write the build
report next to the artifacts.

With --publish, a build on a branch mapping to the production channel is
additionally published as a GitHub release tagged with its version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Splog.Close() }()

			branchName, err := ctx.BranchOrCurrent(branch)
			if err != nil {
				return err
			}

			if len(ctx.Config.Steps) == 0 {
				ctx.Splog.Warn("no pipeline steps configured in %s; only deriving", config.FileName)
			}

			p := pipeline.New(ctx.Config, ctx.Splog, ctx.RepoRoot)
			run, err := p.Run(cmd.Context(), branchName, time.Now())
			if err != nil {
				return err
			}

			ctx.Splog.Page(output.FormatSummary(branchName, run.Quad, run.Folders))
			ctx.Splog.Info("report written to %s", p.ReportDir(run.Folders))

			if publish {
				return publishRelease(cmd, ctx, run.Folders.Channel, run.Version, remote)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Derive for this branch instead of the current one")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish production builds as a GitHub release")
	cmd.Flags().StringVar(&remote, "remote", "origin", "Remote whose GitHub repository receives the release")

	return cmd
}

func publishRelease(cmd *cobra.Command, ctx *runtime.Context, channel, version, remote string) error {
	if channel != productionChannel {
		ctx.Splog.Info("skipping release: channel %q is not %q", channel, productionChannel)
		return nil
	}

	remoteURL, err := ctx.Repo.RemoteURL(remote)
	if err != nil {
		return err
	}
	owner, repo, err := github.OwnerRepoFromRemote(remoteURL)
	if err != nil {
		return err
	}

	client, err := github.NewReleaseClient(cmd.Context(), owner, repo)
	if err != nil {
		// Publishing is best-effort: a missing token must not fail the build.
		ctx.Splog.Warn("skipping release: %v", err)
		return nil
	}

	url, err := client.PublishRelease(cmd.Context(), version, fmt.Sprintf("Build %s", version), "")
	if err != nil {
		return err
	}

	ctx.Splog.Info("published release %s", url)
	return nil
}
