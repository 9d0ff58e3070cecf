package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"timeclock/internal/services"
)

// ApprovalsCommand handles the approval workflow subcommands
type ApprovalsCommand struct {
	services     *services.ServiceContainer
	config       *configHolder
	errorHandler *ErrorHandler
}

// NewApprovalsCommand creates a new approvals command handler
func NewApprovalsCommand(root *RootCommand) *ApprovalsCommand {
	return &ApprovalsCommand{
		services: root.services,
		config: &configHolder{
			CompanyID: root.config.Application.CompanyID,
			ActorID:   root.config.Application.ActorID,
		},
		errorHandler: NewErrorHandler(),
	}
}

// Command builds the cobra command tree for approvals
func (c *ApprovalsCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approvals",
		Short: "Review entries awaiting approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.listPending(cmd)
		},
	}

	cmd.AddCommand(c.approveCommand())
	cmd.AddCommand(c.rejectCommand())

	return cmd
}

func (c *ApprovalsCommand) listPending(cmd *cobra.Command) error {
	pending, err := c.services.Approval.ListPending(cmd.Context(), c.config.CompanyID)
	if err != nil {
		return c.errorHandler.Handle("list pending entries", err)
	}

	if len(pending) == 0 {
		fmt.Println("No entries awaiting approval")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Date", "Employee", "Total", "Full day"})
	for _, entry := range pending {
		t.AppendRow(table.Row{
			entry.ID,
			entry.Date.Format("2006-01-02"),
			entry.EmployeeID,
			formatMinutes(entry.TotalMinutes()),
			entry.FullDay,
		})
	}
	t.Render()
	return nil
}

func (c *ApprovalsCommand) approveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <entry-id>",
		Short: "Approve a pending entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return c.errorHandler.Handle("approve entry", err)
			}

			entry, err := c.services.Approval.Approve(cmd.Context(), entryID, c.config.ActorID)
			if err != nil {
				return c.errorHandler.Handle("approve entry", err)
			}

			fmt.Printf("Entry %d is now %s\n", entry.ID, entry.Status)
			return nil
		},
	}
}

func (c *ApprovalsCommand) rejectCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <entry-id>",
		Short: "Reject a pending entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return c.errorHandler.Handle("reject entry", err)
			}

			entry, err := c.services.Approval.Reject(cmd.Context(), entryID, c.config.ActorID, reason)
			if err != nil {
				return c.errorHandler.Handle("reject entry", err)
			}

			fmt.Printf("Entry %d is now %s\n", entry.ID, entry.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Why the entry is rejected (required)")
	cmd.MarkFlagRequired("reason")

	return cmd
}
