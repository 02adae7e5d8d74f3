package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/db"
	"github.com/karthikas/kmcward/internal/report"
	"github.com/karthikas/kmcward/internal/timeutil"
	"github.com/karthikas/kmcward/internal/tui"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a KMC session",
	Long: `Start timing a skin-to-skin session. Opens the live timer by default;
use --no-ui to start and return to the shell. The session keeps running
until 'kmc stop' even if the timer screen is closed.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := requireParent()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := db.StartSession(id.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("Started KMC session at %s\n", session.StartedAt.Format("15:04:05"))
			fmt.Println("Use 'kmc stop' when you finish.")
			return
		}

		stats, err := report.ForParent(id.ID, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := tui.RunTimerTUI(session, stats); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running KMC session",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := requireParent()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := db.StopActiveSession(id.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Stopped KMC session after %s\n", timeutil.FormatDuration(session.DurationMS))

		stats, err := report.ForParent(id.ID, time.Now())
		if err == nil {
			fmt.Printf("Today's total: %s\n", timeutil.FormatDurationText(stats.TodayMS))
		}
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running KMC session, if any",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := requireParent()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := db.ActiveSession(id.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Println("No KMC session running")
			return
		}

		// Elapsed time survives restarts: it is always now minus the
		// stored start instant.
		elapsed := time.Since(session.StartedAt)
		fmt.Printf("KMC session running since %s\n", session.StartedAt.Format("15:04:05"))
		fmt.Printf("Elapsed: %s\n", timeutil.FormatDuration(elapsed.Milliseconds()))
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start without the live timer")
}
