package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/db"
	"github.com/karthikas/kmcward/internal/report"
	"github.com/karthikas/kmcward/internal/timeutil"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "KMC totals for today, this week, and all time",
	Long: `Show aggregated KMC time. Parents see their own totals; staff can pass
--baby to see a baby's totals across all their parents. Weeks run Monday
through Sunday.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		babyID, _ := cmd.Flags().GetUint("baby")
		now := time.Now()

		var stats report.Stats
		if babyID != 0 {
			if _, err := requireStaff(); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			baby, err := db.GetBabyByID(babyID)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			stats, err = report.ForBaby(babyID, now)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("KMC totals for %s (UHID %s)\n\n", baby.Name, baby.UHID)
		} else {
			id, err := requireParent()
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			stats, err = report.ForParent(id.ID, now)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("KMC totals for %s\n\n", id.Name)
		}

		fmt.Printf("Today:    %-14s (%s)\n", timeutil.FormatDurationText(stats.TodayMS), timeutil.FormatDuration(stats.TodayMS))
		fmt.Printf("Week:     %-14s (%s)\n", timeutil.FormatDurationText(stats.WeekMS), timeutil.FormatDuration(stats.WeekMS))
		fmt.Printf("All-time: %-14s across %d sessions\n", timeutil.FormatDurationText(stats.AllTimeMS), stats.Sessions)
	}),
}

func init() {
	reportCmd.Flags().Uint("baby", 0, "Baby ID (staff only)")
}
