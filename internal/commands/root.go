package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karthikas/kmcward/internal/auth"
	"github.com/karthikas/kmcward/internal/config"
	"github.com/karthikas/kmcward/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kmc",
	Short: "Kangaroo Mother Care session tracker for the ward",
	Long: `kmc tracks skin-to-skin (Kangaroo Mother Care) sessions between parents
and admitted babies. Parents time their sessions, staff watch ward-wide
compliance, and admins register babies, parents, and staff accounts.`,
}

// app holds the pieces every command needs: the loaded configuration and
// the signed-in identity store. It is constructed exactly once per run.
type appContext struct {
	cfg  *config.Config
	auth *auth.Store
}

var app appContext

// setup loads configuration, opens the database, and builds the identity
// store. Commands do not run without it.
func setup() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := db.Initialize(cfg); err != nil {
		return err
	}
	app = appContext{
		cfg:  cfg,
		auth: auth.NewStore(cfg.StatePath()),
	}
	return nil
}

// withDB wraps a command function so the database and app context are ready
// before it runs.
func withDB(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kmc %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(babyCmd)
	rootCmd.AddCommand(parentCmd)
	rootCmd.AddCommand(staffCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(wardCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
