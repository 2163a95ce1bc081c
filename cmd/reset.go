package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"coursedeck/internal/logging"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all completion progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Println("This clears all completion progress. Re-run with --yes to confirm.")
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := openStore(cmd, cfg, logging.Discard())
		if err != nil {
			return err
		}
		defer closeStore()

		store.Reset()
		fmt.Println("Progress cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip confirmation")
}
