package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/db"
	"github.com/karthikas/kmcward/internal/timeutil"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your completed KMC sessions",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := requireParent()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := db.CompletedByParent(id.ID)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No completed sessions yet. Use 'kmc start' to begin one.")
			return
		}

		fmt.Printf("%-14s %-8s %-10s\n", "DATE", "TIME", "DURATION")
		fmt.Println(strings.Repeat("-", 34))
		for _, s := range sessions {
			fmt.Printf("%-14s %-8s %-10s\n",
				timeutil.FormatDate(s.StartedAt),
				timeutil.FormatTime(s.StartedAt),
				timeutil.FormatDuration(s.DurationMS))
		}
	}),
}
