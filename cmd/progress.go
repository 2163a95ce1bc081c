package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coursedeck/internal/course"
	"coursedeck/internal/logging"
	"coursedeck/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completion progress per module",
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
		sum := progress.Summarize(course.Catalog, rec)

		fmt.Printf("%-52s  %s\n", "Module", "Done")
		fmt.Println(strings.Repeat("─", 62))
		for _, ms := range sum.Modules {
			fmt.Printf("%-52s  %d/%d\n", truncate(ms.Module.Title, 52), ms.Completed, ms.Total)
		}
		fmt.Println(strings.Repeat("─", 62))
		fmt.Printf("%-52s  %d/%d (%d%%)\n", "TOTAL", sum.Completed, sum.Total, sum.Percent())

		if rec.LastActiveLessonID != nil {
			if res, ok := course.Resolve(course.Catalog, *rec.LastActiveLessonID); ok {
				fmt.Printf("\nLast active: %s — %s\n", res.Lesson.ID, res.Lesson.Title)
			}
		}
		return nil
	},
}
