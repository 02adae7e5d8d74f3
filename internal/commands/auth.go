package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/auth"
	"github.com/karthikas/kmcward/internal/db"
)

// requireParent returns the signed-in parent identity or an error telling
// the user how to sign in.
func requireParent() (*auth.Identity, error) {
	id, err := app.auth.Current()
	if err != nil {
		return nil, fmt.Errorf("sign in first with 'kmc login parent'")
	}
	if id.Kind != auth.KindParent {
		return nil, fmt.Errorf("this command is for parents; you are signed in as %s", id.Kind)
	}
	return id, nil
}

// requireStaff accepts staff and admin identities.
func requireStaff() (*auth.Identity, error) {
	id, err := app.auth.Current()
	if err != nil {
		return nil, fmt.Errorf("sign in first with 'kmc login staff'")
	}
	if id.Kind != auth.KindStaff && id.Kind != auth.KindAdmin {
		return nil, fmt.Errorf("this command is for staff; you are signed in as %s", id.Kind)
	}
	return id, nil
}

// requireAdmin accepts only admin identities.
func requireAdmin() (*auth.Identity, error) {
	id, err := app.auth.Current()
	if err != nil {
		return nil, fmt.Errorf("sign in first with 'kmc login staff'")
	}
	if id.Kind != auth.KindAdmin {
		return nil, fmt.Errorf("this command needs an admin account")
	}
	return id, nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in as a parent or staff member",
}

var loginParentCmd = &cobra.Command{
	Use:   "parent",
	Short: "Sign in with mobile number and PIN",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		mobile, _ := cmd.Flags().GetString("mobile")
		pin, _ := cmd.Flags().GetString("pin")

		parent, err := db.LoginParent(mobile, pin)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		identity := auth.Identity{Kind: auth.KindParent, ID: parent.ID, Name: parent.MotherName}
		if err := app.auth.Set(identity); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Signed in as %s\n", parent.MotherName)
	}),
}

var loginStaffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Sign in with username and password",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		staff, err := db.LoginStaff(username, password)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		kind := auth.KindStaff
		if staff.IsAdmin {
			kind = auth.KindAdmin
		}
		identity := auth.Identity{Kind: kind, ID: staff.ID, Name: staff.Name}
		if err := app.auth.Set(identity); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("Signed in as %s (%s)\n", staff.Name, kind)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		if err := app.auth.Clear(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("Signed out")
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who is signed in",
	Run: withDB(func(cmd *cobra.Command, args []string) {
		id, err := app.auth.Current()
		if err != nil {
			fmt.Println("Not signed in")
			return
		}
		fmt.Printf("%s (%s)\n", id.Name, id.Kind)
	}),
}

func init() {
	loginParentCmd.Flags().String("mobile", "", "Registered mobile number")
	loginParentCmd.Flags().String("pin", "", "4-digit PIN")
	loginParentCmd.MarkFlagRequired("mobile")
	loginParentCmd.MarkFlagRequired("pin")

	loginStaffCmd.Flags().String("username", "", "Staff username")
	loginStaffCmd.Flags().String("password", "", "Staff password")
	loginStaffCmd.MarkFlagRequired("username")
	loginStaffCmd.MarkFlagRequired("password")

	loginCmd.AddCommand(loginParentCmd)
	loginCmd.AddCommand(loginStaffCmd)
}
