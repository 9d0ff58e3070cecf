package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"timeclock/internal/services"
)

// ReportCommand renders date-range totals per employee
type ReportCommand struct {
	services     *services.ServiceContainer
	config       *configHolder
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(root *RootCommand) *ReportCommand {
	return &ReportCommand{
		services: root.services,
		config: &configHolder{
			CompanyID: root.config.Application.CompanyID,
			ActorID:   root.config.Application.ActorID,
		},
		errorHandler: NewErrorHandler(),
	}
}

// Command builds the report cobra command
func (c *ReportCommand) Command() *cobra.Command {
	var (
		employeeID int64
		fromArg    string
		toArg      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show classified minute totals for an employee",
		Long: `Aggregate an employee's registered time over a date range,
broken down into day, evening and night minutes. Weighted minutes
apply each working-hour rule's pay multiplier to its bucket.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDate(fromArg)
			if err != nil {
				return c.errorHandler.Handle("build report", err)
			}
			to, err := parseDate(toArg)
			if err != nil {
				return c.errorHandler.Handle("build report", err)
			}

			report, err := c.services.Report.EmployeeTotals(cmd.Context(), c.config.CompanyID, employeeID, from, to)
			if err != nil {
				return c.errorHandler.Handle("build report", err)
			}

			fmt.Printf("Employee %d, %s to %s\n",
				report.EmployeeID, report.From.Format("2006-01-02"), report.To.Format("2006-01-02"))

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Bucket", "Minutes", "Formatted"})
			t.AppendRow(table.Row{"Day", report.DayMinutes, formatMinutes(report.DayMinutes)})
			t.AppendRow(table.Row{"Evening", report.EveningMinutes, formatMinutes(report.EveningMinutes)})
			t.AppendRow(table.Row{"Night", report.NightMinutes, formatMinutes(report.NightMinutes)})
			t.AppendFooter(table.Row{"Total", report.TotalMinutes, formatMinutes(report.TotalMinutes)})
			t.AppendFooter(table.Row{"Weighted", fmt.Sprintf("%.1f", report.WeightedMinutes), ""})
			t.Render()
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "Employee ID (required)")
	cmd.Flags().StringVar(&fromArg, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toArg, "to", "", "Range end (YYYY-MM-DD)")
	cmd.MarkFlagRequired("employee")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
