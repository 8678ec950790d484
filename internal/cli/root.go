// Package cli wires the buildway commands. Commands translate returned
// errors into exit codes; the derivation core never exits the process.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "buildway",
		Short: "Buildway derives time-ordered build versions and artifact routing paths from branch names",
		Long: `Buildway computes a compact, time-ordered version quad with 64-second
resolution and the per-branch and per-channel artifact folders a build
pipeline routes its outputs to. The surrounding pipeline commands are thin
callers around that derivation.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newRunCmd())

	return rootCmd
}
