package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/report"
	"github.com/karthikas/kmcward/internal/timeutil"
	"github.com/karthikas/kmcward/internal/tui"
)

var wardCmd = &cobra.Command{
	Use:   "ward",
	Short: "Ward-wide KMC dashboard (staff)",
	Long: `Show every baby on the ward with today's and this week's KMC totals.
Babies with under an hour of contact today are flagged. Opens an
interactive dashboard by default; use --no-ui for a plain table.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := requireStaff(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		rows, err := report.Ward(time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			if err := tui.RunWardTUI(rows); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if len(rows) == 0 {
			fmt.Println("No babies registered.")
			return
		}

		lowCount := 0
		fmt.Printf("%-4s %-20s %-10s %-6s %-14s %-14s %s\n", "ID", "NAME", "UHID", "BED", "TODAY", "WEEK", "")
		fmt.Println(strings.Repeat("-", 76))
		for _, row := range rows {
			flag := ""
			if row.LowKMC() {
				flag = "LOW"
				lowCount++
			}
			fmt.Printf("%-4d %-20s %-10s %-6s %-14s %-14s %s\n",
				row.Baby.ID,
				row.Baby.Name,
				row.Baby.UHID,
				row.Baby.BedNo,
				timeutil.FormatDurationText(row.TodayMS),
				timeutil.FormatDurationText(row.WeekMS),
				flag)
		}
		fmt.Printf("\n%d babies, %d under 1 hr today\n", len(rows), lowCount)
	}),
}

func init() {
	wardCmd.Flags().Bool("no-ui", false, "Plain table output")
}
