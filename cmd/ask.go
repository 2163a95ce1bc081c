package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coursedeck/internal/logging"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the AI tutor a one-off question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		log, closeLog := logging.FromPath(cfg.LogFile)
		defer func() { _ = closeLog() }()

		bridge := buildBridge(cmd, cfg, log)

		query := strings.Join(args, " ")
		msg := bridge.Ask(cmd.Context(), query, nil)

		fmt.Println(msg.Text)
		for _, src := range msg.Sources {
			fmt.Printf("  ↳ %s — %s\n", src.Title, src.URI)
		}
		return nil
	},
}
