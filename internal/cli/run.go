package cli

import (
	"github.com/spf13/cobra"

	"jbpos/internal/shell"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell",
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.Logger.Sync()

	return shell.Run(a)
}
