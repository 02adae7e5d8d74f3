package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/db"
)

var parentCmd = &cobra.Command{
	Use:   "parent",
	Short: "Manage parent accounts",
}

var parentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a parent account (admin only)",
	Long: `Register a parent account. A 4-digit PIN is generated and printed
once; share it with the parent together with the mobile number they will
sign in with.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if _, err := requireAdmin(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		name, _ := cmd.Flags().GetString("name")
		mobile, _ := cmd.Flags().GetString("mobile")
		babyID, _ := cmd.Flags().GetUint("baby")

		var babyRef *uint
		if babyID != 0 {
			babyRef = &babyID
		}

		parent, err := db.AddParent(name, mobile, babyRef)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Registered parent #%d: %s\n", parent.ID, parent.MotherName)
		fmt.Printf("Mobile: %s\n", parent.Mobile)
		fmt.Printf("PIN:    %s\n", parent.PIN)
		fmt.Println("Share these credentials with the parent securely; the PIN is not shown again.")
	}),
}

func init() {
	parentAddCmd.Flags().String("name", "", "Mother's name")
	parentAddCmd.Flags().String("mobile", "", "Mobile number (Indian format)")
	parentAddCmd.Flags().Uint("baby", 0, "Baby ID to link (optional)")
	parentAddCmd.MarkFlagRequired("name")
	parentAddCmd.MarkFlagRequired("mobile")

	parentCmd.AddCommand(parentAddCmd)
}
