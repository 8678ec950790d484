package cli

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"buildway.dev/buildway/internal/config"
	"buildway.dev/buildway/internal/git"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a buildway configuration file for this repository",
		Long: `Interactively create ` + config.FileName + ` at the repository root with the
Build/Major version constants and the default channel table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := git.OpenFromCwd()
			if err != nil {
				return err
			}
			repoRoot, err := repo.Root()
			if err != nil {
				return err
			}

			if config.Exists(repoRoot) {
				overwrite := false
				prompt := &survey.Confirm{
					Message: fmt.Sprintf("%s already exists. Overwrite it?", config.FileName),
				}
				if err := survey.AskOne(prompt, &overwrite); err != nil {
					return fmt.Errorf("canceled")
				}
				if !overwrite {
					return nil
				}
			}

			cfg := config.Default()

			buildStr := strconv.Itoa(cfg.Build)
			if err := survey.AskOne(&survey.Input{
				Message: "Build constant for the version quad",
				Default: buildStr,
			}, &buildStr); err != nil {
				return fmt.Errorf("canceled")
			}
			if cfg.Build, err = strconv.Atoi(buildStr); err != nil {
				return fmt.Errorf("build must be an integer: %w", err)
			}

			majorStr := strconv.Itoa(cfg.Major)
			if err := survey.AskOne(&survey.Input{
				Message: "Major constant for the version quad",
				Default: majorStr,
			}, &majorStr); err != nil {
				return fmt.Errorf("canceled")
			}
			if cfg.Major, err = strconv.Atoi(majorStr); err != nil {
				return fmt.Errorf("major must be an integer: %w", err)
			}

			if err := cfg.Save(repoRoot); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.FileName)
			return nil
		},
	}

	return cmd
}
