package cli

import (
	"github.com/spf13/cobra"

	"timeclock/internal/config"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	services *services.ServiceContainer
	repo     sqlite.Repository
	config   *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(container *services.ServiceContainer, repo sqlite.Repository, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		services: container,
		repo:     repo,
		config:   cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "timeclock",
		Short: "A multi-tenant work time registration tool",
		Long: `Timeclock records work intervals per employee and project, splits
entries that cross midnight into per-day segments, classifies each
segment into day, evening and night minutes against the company's
working-hour rules, and rejects entries that overlap already
registered time.

EXAMPLES:
  timeclock entry add --employee 1 --project 2 --date 2025-03-10 --start 22:15 --end 06:45
  timeclock entry list --employee 1
  timeclock approvals
  timeclock approvals approve 7
  timeclock report --employee 1 --from 2025-03-01 --to 2025-03-31

CONFIGURATION:
  TIMECLOCK_DB_DIR              Database directory (default: ~/.timeclock)
  TIMECLOCK_DB_FILENAME         Database filename (default: timeclock.db)
  TIMECLOCK_COMPANY_ID          Company the CLI operates on (default: 1)
  TIMECLOCK_ACTOR_ID            User recorded in the audit trail (default: 1)
  TIMECLOCK_RATELIMIT_ENABLED   Throttle entry submissions (default: true)
  TIMECLOCK_DEBUG               Enable debug output

  A .env file in the working directory is read before the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(NewEntryCommand(r).Command())
	r.cmd.AddCommand(NewApprovalsCommand(r).Command())
	r.cmd.AddCommand(NewReportCommand(r).Command())
	r.cmd.AddCommand(NewEmployeeCommand(r).Command())
	r.cmd.AddCommand(NewProjectCommand(r).Command())
	r.cmd.AddCommand(NewRuleCommand(r).Command())
}
