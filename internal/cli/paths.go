package cli

import (
	"time"

	"github.com/spf13/cobra"

	"buildway.dev/buildway/internal/branchpath"
	"buildway.dev/buildway/internal/buildver"
	"buildway.dev/buildway/internal/output"
	"buildway.dev/buildway/internal/runtime"
)

// newPathsCmd creates the paths command
func newPathsCmd() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "paths [branch]",
		Short: "Derive the artifact routing folders for a branch",
		Long: `Derive the per-branch and per-channel artifact folders for a branch.

If no branch is given, the repository's current branch is used, falling back
to the abbreviated commit hash on a detached HEAD. The version folder uses
the version computed for the current time unless --version is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.NewContext()
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Splog.Close() }()

			branchArg := ""
			if len(args) > 0 {
				branchArg = args[0]
			}
			branch, err := ctx.BranchOrCurrent(branchArg)
			if err != nil {
				return err
			}

			quad, err := buildver.Encode(time.Now(), ctx.Config.Build, ctx.Config.Major)
			if err != nil {
				return err
			}
			if version != "" {
				if quad, err = buildver.Parse(version); err != nil {
					return err
				}
			}

			folders, err := branchpath.Derive(branch, quad.String(), ctx.Config.DeriveOptions())
			if err != nil {
				return err
			}

			ctx.Splog.Page(output.FormatSummary(branch, quad, folders))
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "Use this Build.Major.Minor.Revision instead of encoding the current time")

	return cmd
}
