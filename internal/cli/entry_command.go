package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"timeclock/internal/domain"
	"timeclock/internal/services"
)

// EntryCommand handles the entry add/list/delete subcommands
type EntryCommand struct {
	services     *services.ServiceContainer
	config       *configHolder
	errorHandler *ErrorHandler
}

// configHolder narrows the root command surface the subcommands need.
type configHolder struct {
	CompanyID int64
	ActorID   int64
}

// NewEntryCommand creates a new entry command handler
func NewEntryCommand(root *RootCommand) *EntryCommand {
	return &EntryCommand{
		services: root.services,
		config: &configHolder{
			CompanyID: root.config.Application.CompanyID,
			ActorID:   root.config.Application.ActorID,
		},
		errorHandler: NewErrorHandler(),
	}
}

// Command builds the cobra command tree for time entries
func (c *EntryCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage time entries",
	}

	cmd.AddCommand(c.addCommand())
	cmd.AddCommand(c.listCommand())
	cmd.AddCommand(c.deleteCommand())

	return cmd
}

func (c *EntryCommand) addCommand() *cobra.Command {
	var (
		employeeID int64
		projectID  int64
		dateArg    string
		startTime  string
		endTime    string
		notes      string
		fullDay    bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a work interval",
		Long: `Register a work interval for an employee. Intervals crossing
midnight are split into two segments; "24:00" is a valid end time.
Overlaps with existing non-rejected entries are rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDate(dateArg)
			if err != nil {
				return c.errorHandler.Handle("add entry", err)
			}

			entry, err := c.services.Entry.CreateEntry(cmd.Context(), services.CreateEntryParams{
				CompanyID:     c.config.CompanyID,
				EmployeeID:    employeeID,
				ProjectID:     projectID,
				Date:          date,
				StartTime:     startTime,
				EndTime:       endTime,
				Notes:         notes,
				FullDay:       fullDay,
				ActorID:       c.config.ActorID,
				AdminOverride: force,
			})
			if err != nil {
				return c.errorHandler.Handle("add entry", err)
			}

			fmt.Printf("Created entry %d (%s) with %d segment(s), %s total\n",
				entry.ID, entry.Status, len(entry.Segments), formatMinutes(entry.TotalMinutes()))
			for _, segment := range entry.Segments {
				fmt.Printf("  %s  %s-%s  %s\n",
					segment.Date.Format("2006-01-02"), segment.StartTime, segment.EndTime,
					formatMinutes(segment.DurationMinutes))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID (required)")
	cmd.Flags().Int64Var(&projectID, "project", 0, "Project ID (required)")
	cmd.Flags().StringVar(&dateArg, "date", "today", "Entry date (YYYY-MM-DD, today, yesterday)")
	cmd.Flags().StringVar(&startTime, "start", "", "Start time (HH:mm)")
	cmd.Flags().StringVar(&endTime, "end", "", "End time (HH:mm or 24:00)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&fullDay, "full-day", false, "Mark as a full-day entry")
	cmd.Flags().BoolVar(&force, "force", false, "Skip the backdate limit (admin)")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("project")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func (c *EntryCommand) listCommand() *cobra.Command {
	var (
		employeeID int64
		status     string
		fromArg    string
		toArg      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List time entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := services.ListEntriesParams{CompanyID: c.config.CompanyID}

			if employeeID != 0 {
				params.EmployeeID = &employeeID
			}
			if status != "" {
				entryStatus := domain.EntryStatus(status)
				params.Status = &entryStatus
			}
			if fromArg != "" {
				from, err := parseDate(fromArg)
				if err != nil {
					return c.errorHandler.Handle("list entries", err)
				}
				params.From = &from
			}
			if toArg != "" {
				to, err := parseDate(toArg)
				if err != nil {
					return c.errorHandler.Handle("list entries", err)
				}
				params.To = &to
			}

			entries, err := c.services.Entry.ListEntries(cmd.Context(), params)
			if err != nil {
				return c.errorHandler.Handle("list entries", err)
			}

			renderEntryTable(entries)
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Filter by employee ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (PENDING, APPROVED, REJECTED, LOCKED)")
	cmd.Flags().StringVar(&fromArg, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toArg, "to", "", "Range end (YYYY-MM-DD)")

	return cmd
}

func (c *EntryCommand) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return c.errorHandler.Handle("delete entry", err)
			}

			if err := c.services.Entry.DeleteEntry(cmd.Context(), entryID, c.config.ActorID); err != nil {
				return c.errorHandler.Handle("delete entry", err)
			}

			fmt.Printf("Deleted entry %d\n", entryID)
			return nil
		},
	}
}

func renderEntryTable(entries []*domain.TimeEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Date", "Employee", "Project", "Times", "Total", "Status"})

	for _, entry := range entries {
		times := ""
		for i, segment := range entry.Segments {
			if i > 0 {
				times += ", "
			}
			times += segment.StartTime + "-" + segment.EndTime
		}
		t.AppendRow(table.Row{
			entry.ID,
			entry.Date.Format("2006-01-02"),
			entry.EmployeeID,
			entry.ProjectID,
			times,
			formatMinutes(entry.TotalMinutes()),
			entry.Status,
		})
	}

	t.Render()
}
