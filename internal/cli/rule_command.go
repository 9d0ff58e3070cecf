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

// RuleCommand handles working-hour rule administration
type RuleCommand struct {
	repo         sqlite.Repository
	mapper       *domain.Mapper
	validator    *validation.RuleValidator
	config       *configHolder
	errorHandler *ErrorHandler
}

// NewRuleCommand creates a new rule command handler
func NewRuleCommand(root *RootCommand) *RuleCommand {
	return &RuleCommand{
		repo:      root.repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewRuleValidator(),
		config: &configHolder{
			CompanyID: root.config.Application.CompanyID,
			ActorID:   root.config.Application.ActorID,
		},
		errorHandler: NewErrorHandler(),
	}
}

// Command builds the cobra command tree for working-hour rules
func (c *RuleCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Manage working-hour rules",
	}

	cmd.AddCommand(c.addCommand())
	cmd.AddCommand(c.listCommand())
	cmd.AddCommand(c.initCommand())

	return cmd
}

func (c *RuleCommand) addCommand() *cobra.Command {
	var (
		name       string
		startTime  string
		endTime    string
		multiplier float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a working-hour rule",
		Long: `Add a named window of the day used to classify registered time.
Windows may wrap midnight, like Night 22:00-08:00.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.validator.ValidateRuleForCreation(name, startTime, endTime, multiplier); err != nil {
				return c.errorHandler.Handle("add rule", err)
			}

			rule := domain.WorkingHourRule{
				CompanyID:  c.config.CompanyID,
				Name:       name,
				StartTime:  startTime,
				EndTime:    endTime,
				Multiplier: multiplier,
				Active:     true,
			}

			dbRule := c.mapper.Rule.ToDatabase(rule)
			if err := c.repo.CreateWorkingHourRule(cmd.Context(), &dbRule); err != nil {
				return c.errorHandler.Handle("add rule", err)
			}

			fmt.Printf("Created rule %d: %s %s-%s (x%.2f)\n", dbRule.ID, name, startTime, endTime, multiplier)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Rule name, e.g. Day, Evening, Night (required)")
	cmd.Flags().StringVar(&startTime, "start", "", "Window start (HH:mm, required)")
	cmd.Flags().StringVar(&endTime, "end", "", "Window end (HH:mm, may be before start to wrap midnight)")
	cmd.Flags().Float64Var(&multiplier, "multiplier", 1.0, "Pay multiplier for reporting")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	return cmd
}

func (c *RuleCommand) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List working-hour rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbRules, err := c.repo.ListRules(cmd.Context(), c.config.CompanyID)
			if err != nil {
				return c.errorHandler.Handle("list rules", err)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"ID", "Name", "Window", "Multiplier", "Active"})
			for _, rule := range c.mapper.Rule.FromDatabaseSlice(dbRules) {
				t.AppendRow(table.Row{
					rule.ID,
					rule.Name,
					rule.StartTime + "-" + rule.EndTime,
					fmt.Sprintf("x%.2f", rule.Multiplier),
					rule.Active,
				})
			}
			t.Render()
			return nil
		},
	}
}

func (c *RuleCommand) initCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Seed the default Day/Evening/Night rule set",
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := c.repo.ListRules(cmd.Context(), c.config.CompanyID)
			if err != nil {
				return c.errorHandler.Handle("seed rules", err)
			}
			if len(existing) > 0 {
				return fmt.Errorf("company %d already has %d rule(s)", c.config.CompanyID, len(existing))
			}

			for _, rule := range domain.DefaultWorkingHourRules(c.config.CompanyID) {
				dbRule := c.mapper.Rule.ToDatabase(rule)
				if err := c.repo.CreateWorkingHourRule(cmd.Context(), &dbRule); err != nil {
					return c.errorHandler.Handle("seed rules", err)
				}
				fmt.Printf("Created rule %s %s-%s (x%.2f)\n", rule.Name, rule.StartTime, rule.EndTime, rule.Multiplier)
			}
			return nil
		},
	}
}
