package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/db"
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage staff accounts",
}

var staffAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a staff account (admin only)",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := requireAdmin(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		name, _ := cmd.Flags().GetString("name")
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		isAdmin, _ := cmd.Flags().GetBool("admin")

		staff, err := db.AddStaff(name, username, password, isAdmin)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		role := "staff"
		if staff.IsAdmin {
			role = "admin"
		}
		fmt.Printf("Registered %s account #%d: %s (username %s)\n", role, staff.ID, staff.Name, staff.Username)
	}),
}

func init() {
	staffAddCmd.Flags().String("name", "", "Staff member's name")
	staffAddCmd.Flags().String("username", "", "Login username (stored lowercased)")
	staffAddCmd.Flags().String("password", "", "Password (min 4 characters)")
	staffAddCmd.Flags().Bool("admin", false, "Grant admin rights")
	staffAddCmd.MarkFlagRequired("name")
	staffAddCmd.MarkFlagRequired("username")
	staffAddCmd.MarkFlagRequired("password")

	staffCmd.AddCommand(staffAddCmd)
}
