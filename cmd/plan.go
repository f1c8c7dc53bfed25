package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	dto "smart-task-planner.com/smart-task-planner/internal/data_models"
	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
	"smart-task-planner.com/smart-task-planner/internal/planner"
)

var (
	planTargetDate  string
	planConstraints []string
	planFormat      string
)

var planCmd = &cobra.Command{
	Use:   "plan <goal>",
	Short: "Generate a task plan without storing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if planFormat != "json" && planFormat != "yaml" {
			return fmt.Errorf("unsupported format %q, use json or yaml", planFormat)
		}

		req, err := buildPlanRequest(args[0], planTargetDate, planConstraints)
		if err != nil {
			return err
		}

		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		plans, err := newPlanner(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		plan := plans.GeneratePlan(cmd.Context(), req)
		return writePlan(cmd.OutOrStdout(), dto.NewTaskPlanResponse(plan, nil), planFormat)
	},
}

func buildPlanRequest(goal, targetDate string, constraints []string) (planner.Request, error) {
	req := dto.GoalRequest{Description: goal, Constraints: constraints}.ToPlanRequest()
	if req.Description == "" {
		return planner.Request{}, fmt.Errorf("goal must not be blank")
	}

	if strings.TrimSpace(targetDate) != "" {
		target, ok := planner.ParseDateTime(targetDate)
		if !ok {
			return planner.Request{}, apperrors.ErrInvalidTargetDate
		}
		req.TargetDate = &target
	}
	return req, nil
}

func writePlan(w io.Writer, plan dto.TaskPlanResponse, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(plan)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

func init() {
	planCmd.Flags().StringVar(&planTargetDate, "target-date", "", "target completion date, e.g. 2025-06-30T18:00:00")
	planCmd.Flags().StringArrayVar(&planConstraints, "constraint", nil, "constraint to respect (repeatable)")
	planCmd.Flags().StringVar(&planFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(planCmd)
}
