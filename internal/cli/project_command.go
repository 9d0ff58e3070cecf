package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"timeclock/internal/domain"
	apperrors "timeclock/internal/errors"
	"timeclock/internal/repository/sqlite"
)

// ProjectCommand handles project administration
type ProjectCommand struct {
	repo         sqlite.Repository
	mapper       *domain.Mapper
	config       *configHolder
	errorHandler *ErrorHandler
}

// NewProjectCommand creates a new project command handler
func NewProjectCommand(root *RootCommand) *ProjectCommand {
	return &ProjectCommand{
		repo:   root.repo,
		mapper: domain.NewMapper(),
		config: &configHolder{
			CompanyID: root.config.Application.CompanyID,
			ActorID:   root.config.Application.ActorID,
		},
		errorHandler: NewErrorHandler(),
	}
}

// Command builds the cobra command tree for projects
func (c *ProjectCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(c.addCommand())
	cmd.AddCommand(c.listCommand())

	return cmd
}

func (c *ProjectCommand) addCommand() *cobra.Command {
	var (
		name  string
		code  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			project := domain.NewProject(c.config.CompanyID, name)
			project.Code = code
			project.Color = color
			if !project.IsValid() {
				return c.errorHandler.Handle("add project",
					apperrors.NewInvalidInputError("name", name, "project name is required"))
			}

			dbProject := c.mapper.Project.ToDatabase(project)
			if err := c.repo.CreateProject(cmd.Context(), &dbProject); err != nil {
				return c.errorHandler.Handle("add project", err)
			}

			fmt.Printf("Created project %d: %s\n", dbProject.ID, project.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (required)")
	cmd.Flags().StringVar(&code, "code", "", "Short billing code")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.MarkFlagRequired("name")

	return cmd
}

func (c *ProjectCommand) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbProjects, err := c.repo.ListProjects(cmd.Context(), c.config.CompanyID)
			if err != nil {
				return c.errorHandler.Handle("list projects", err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Name", "Code", "Active"})
			for _, project := range c.mapper.Project.FromDatabaseSlice(dbProjects) {
				t.AppendRow(table.Row{project.ID, project.Name, project.Code, project.Active})
			}
			t.Render()
			return nil
		},
	}
}
