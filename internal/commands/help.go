package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for kmc",
	Long:  `Display detailed help for all kmc commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██╗  ██╗███╗   ███╗ ██████╗
██║ ██╔╝████╗ ████║██╔════╝
█████╔╝ ██╔████╔██║██║
██╔═██╗ ██║╚██╔╝██║██║
██║  ██╗██║ ╚═╝ ██║╚██████╗
╚═╝  ╚═╝╚═╝     ╚═╝ ╚═════╝

kmc - Kangaroo Mother Care session tracker

PARENT COMMANDS:

  login parent            Sign in with your mobile number and PIN
    --mobile              Registered mobile number
    --pin                 4-digit PIN

  start                   Start a KMC session (live timer)
    --no-ui               Start and return to the shell
  stop                    Stop the running session
  status                  Show the running session and elapsed time
  history                 List your completed sessions
  report                  Today / week / all-time totals

STAFF COMMANDS:

  login staff             Sign in with username and password
    --username            Staff username
    --password            Password

  ward                    Ward dashboard: per-baby KMC totals
    --no-ui               Plain table output

    Dashboard keys:
      /             Search by name or UHID
      f             Cycle sort (name/today/week)
      r             Refresh
      esc/q         Quit

  baby ls                 List babies on the ward
  baby show <id>          Baby details with parents and session history
  report --baby <id>      Totals for one baby

ADMIN COMMANDS:

  baby add                Register a baby
    --name, --uhid, --bed
  baby bed <id> <bed>     Reassign a bed
  parent add              Register a parent; prints the generated PIN once
    --name, --mobile, --baby
  staff add               Register a staff account
    --name, --username, --password, --admin

EVERYONE:

  whoami                  Show who is signed in
  logout                  Sign out
  version                 Version information
  help                    Show this help

The default admin account is username "admin", password "admin123".
Change it after first login by creating your own admin account.

`)
}
