package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coursedeck/internal/course"
	"coursedeck/internal/logging"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the course outline with completion marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, closeStore, err := openStore(cmd, cfg, logging.Discard())
		if err != nil {
			return err
		}
		defer closeStore()

		rec := store.Load()
		catalog := course.Catalog

		fmt.Println(catalog.Title)
		fmt.Println(strings.Repeat("─", 72))
		for _, m := range catalog.Modules {
			fmt.Printf("\n%s\n", m.Title)
			for _, l := range m.Lessons {
				mark := "○"
				if rec.IsCompleted(l.ID) {
					mark = "●"
				}
				fmt.Printf("  %s  %-14s  %-8s  %-44s %s\n", mark, l.ID, l.Type, truncate(l.Title, 44), l.Duration)
			}
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
