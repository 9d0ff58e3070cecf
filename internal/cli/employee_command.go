package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"timeclock/internal/domain"
	"timeclock/internal/repository/sqlite"
	"timeclock/internal/validation"
)

// EmployeeCommand handles employee administration
type EmployeeCommand struct {
	repo         sqlite.Repository
	mapper       *domain.Mapper
	validator    *validation.EmployeeValidator
	config       *configHolder
	errorHandler *ErrorHandler
}

// NewEmployeeCommand creates a new employee command handler
func NewEmployeeCommand(root *RootCommand) *EmployeeCommand {
	return &EmployeeCommand{
		repo:      root.repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewEmployeeValidator(),
		config: &configHolder{
			CompanyID: root.config.Application.CompanyID,
			ActorID:   root.config.Application.ActorID,
		},
		errorHandler: NewErrorHandler(),
	}
}

// Command builds the cobra command tree for employees
func (c *EmployeeCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employees",
	}

	cmd.AddCommand(c.addCommand())
	cmd.AddCommand(c.listCommand())

	return cmd
}

func (c *EmployeeCommand) addCommand() *cobra.Command {
	var (
		firstName     string
		lastName      string
		email         string
		department    string
		position      string
		backdateLimit int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.validator.ValidateEmployeeForCreation(firstName, lastName, email, backdateLimit); err != nil {
				return c.errorHandler.Handle("add employee", err)
			}

			employee := domain.NewEmployee(c.config.CompanyID, firstName, lastName, email)
			employee.Department = department
			employee.Position = position
			employee.BackdateLimitDays = backdateLimit

			dbEmployee := c.mapper.Employee.ToDatabase(employee)
			if err := c.repo.CreateEmployee(cmd.Context(), &dbEmployee); err != nil {
				return c.errorHandler.Handle("add employee", err)
			}

			fmt.Printf("Created employee %d: %s\n", dbEmployee.ID, employee.FullName())
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first", "", "First name (required)")
	cmd.Flags().StringVar(&lastName, "last", "", "Last name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	cmd.Flags().StringVar(&position, "position", "", "Position")
	cmd.Flags().IntVar(&backdateLimit, "backdate-limit", domain.DefaultBackdateLimitDays, "How many days back entries may be created")
	cmd.MarkFlagRequired("first")
	cmd.MarkFlagRequired("last")
	cmd.MarkFlagRequired("email")

	return cmd
}

func (c *EmployeeCommand) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbEmployees, err := c.repo.ListEmployees(cmd.Context(), c.config.CompanyID)
			if err != nil {
				return c.errorHandler.Handle("list employees", err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Name", "Email", "Department", "Backdate limit", "Active"})
			for _, employee := range c.mapper.Employee.FromDatabaseSlice(dbEmployees) {
				t.AppendRow(table.Row{
					employee.ID,
					employee.FullName(),
					employee.Email,
					employee.Department,
					fmt.Sprintf("%d days", employee.BackdateLimitDays),
					employee.Active,
				})
			}
			t.Render()
			return nil
		},
	}
}
