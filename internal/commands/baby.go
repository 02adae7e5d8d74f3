package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/db"
	"github.com/karthikas/kmcward/internal/report"
	"github.com/karthikas/kmcward/internal/timeutil"
)

var babyCmd = &cobra.Command{
	Use:   "baby",
	Short: "Manage admitted babies",
}

var babyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new baby (admin only)",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := requireAdmin(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		name, _ := cmd.Flags().GetString("name")
		uhid, _ := cmd.Flags().GetString("uhid")
		bed, _ := cmd.Flags().GetString("bed")

		baby, err := db.AddBaby(name, uhid, bed)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Registered baby #%d: %s (UHID %s)\n", baby.ID, baby.Name, baby.UHID)
	}),
}

var babyListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List babies on the ward (staff)",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := requireStaff(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		babies, err := db.GetBabies()
		if err != nil {
			fmt.Printf("Error fetching babies: %v\n", err)
			return
		}

		if len(babies) == 0 {
			fmt.Println("No babies registered. Use 'kmc baby add' to register one.")
			return
		}

		fmt.Printf("%-4s %-24s %-12s %s\n", "ID", "NAME", "UHID", "BED")
		fmt.Println(strings.Repeat("-", 48))
		for _, baby := range babies {
			fmt.Printf("%-4d %-24s %-12s %s\n", baby.ID, baby.Name, baby.UHID, baby.BedNo)
		}
	}),
}

var babyShowCmd = &cobra.Command{
	Use:   "show <baby-id>",
	Short: "Show a baby's KMC details (staff)",
	Args:  cobra.ExactArgs(1),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := requireStaff(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid baby ID '%s'\n", args[0])
			return
		}

		baby, err := db.GetBabyByID(uint(id))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("%s (UHID %s)", baby.Name, baby.UHID)
		if baby.BedNo != "" {
			fmt.Printf(" — Bed %s", baby.BedNo)
		}
		fmt.Println()

		parents, err := db.GetParentsByBaby(baby.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		for _, parent := range parents {
			fmt.Printf("Parent: %s (%s)\n", parent.MotherName, parent.Mobile)
		}

		stats, err := report.ForBaby(baby.ID, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("\nToday:    %s\n", timeutil.FormatDurationText(stats.TodayMS))
		fmt.Printf("Week:     %s\n", timeutil.FormatDurationText(stats.WeekMS))
		fmt.Printf("All-time: %s across %d sessions\n", timeutil.FormatDurationText(stats.AllTimeMS), stats.Sessions)

		sessions, err := db.CompletedByBaby(baby.ID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions:")
			limit := len(sessions)
			if limit > 10 {
				limit = 10
			}
			for _, s := range sessions[:limit] {
				fmt.Printf("  %s %s  %s\n",
					timeutil.FormatDate(s.StartedAt),
					timeutil.FormatTime(s.StartedAt),
					timeutil.FormatDuration(s.DurationMS))
			}
		}
	}),
}

var babyBedCmd = &cobra.Command{
	Use:   "bed <baby-id> <bed-no>",
	Short: "Reassign a baby's bed (admin only)",
	Args:  cobra.ExactArgs(2),
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := requireAdmin(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid baby ID '%s'\n", args[0])
			return
		}

		baby, err := db.UpdateBabyBed(uint(id), args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Moved %s to bed %s\n", baby.Name, baby.BedNo)
	}),
}

func init() {
	babyAddCmd.Flags().String("name", "", "Baby's name")
	babyAddCmd.Flags().String("uhid", "", "Unique hospital identifier")
	babyAddCmd.Flags().String("bed", "", "Bed number (optional)")
	babyAddCmd.MarkFlagRequired("name")
	babyAddCmd.MarkFlagRequired("uhid")

	babyCmd.AddCommand(babyAddCmd)
	babyCmd.AddCommand(babyListCmd)
	babyCmd.AddCommand(babyShowCmd)
	babyCmd.AddCommand(babyBedCmd)
}
