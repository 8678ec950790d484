package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"buildway.dev/buildway/internal/buildver"
	"buildway.dev/buildway/internal/config"
	"buildway.dev/buildway/internal/git"
)

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	var (
		build  int
		major  int
		at     string
		decode string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Compute the time-ordered version quad",
		Long: `Compute the Build.Major.Minor.Revision version for a timestamp.

All builds within the same 64-second window share one version. By default the
current time is encoded with the Build/Major constants from the repository
configuration; --build and --major override them, --at encodes a given
RFC 3339 timestamp, and --decode recovers the 64-second bucket a version was
encoded from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if decode != "" {
				quad, err := buildver.Parse(decode)
				if err != nil {
					return err
				}
				bucket, err := buildver.Decode(quad)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s encodes the %d-second bucket starting %s\n",
					quad, buildver.BucketSeconds, bucket.Format(time.RFC3339))
				return nil
			}

			// Outside a repository the flag values stand on their own.
			if !cmd.Flags().Changed("build") || !cmd.Flags().Changed("major") {
				if repo, err := git.OpenFromCwd(); err == nil {
					if root, err := repo.Root(); err == nil {
						if cfg, err := config.Load(root); err == nil {
							if !cmd.Flags().Changed("build") {
								build = cfg.Build
							}
							if !cmd.Flags().Changed("major") {
								major = cfg.Major
							}
						}
					}
				}
			}

			t := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC 3339: %w", err)
				}
				t = parsed
			}

			quad, err := buildver.Encode(t, build, major)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), quad.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&build, "build", 0, "Build constant of the version quad")
	cmd.Flags().IntVar(&major, "major", 1, "Major constant of the version quad")
	cmd.Flags().StringVar(&at, "at", "", "Encode this RFC 3339 timestamp instead of the current time")
	cmd.Flags().StringVar(&decode, "decode", "", "Decode a Build.Major.Minor.Revision version back to its time bucket")

	return cmd
}
