package dto

import (
	"strings"

	"smart-task-planner.com/smart-task-planner/internal/planner"
)

type GoalRequest struct {
	Description    string           `json:"description"`
	TargetDate     OptionalDateTime `json:"targetDate"`
	MaxTasksPerDay *int             `json:"maxTasksPerDay,omitempty"`
	Constraints    []string         `json:"constraints"`
}

// ToPlanRequest trims the description and drops blank constraints.
func (r GoalRequest) ToPlanRequest() planner.Request {
	constraints := make([]string, 0, len(r.Constraints))
	for _, c := range r.Constraints {
		if c = strings.TrimSpace(c); c != "" {
			constraints = append(constraints, c)
		}
	}

	return planner.Request{
		Description: strings.TrimSpace(r.Description),
		TargetDate:  r.TargetDate.Ptr(),
		Constraints: constraints,
	}
}

type UpdateTaskStatusRequest struct {
	TaskID string `json:"taskId"`
	Status string `json:"status"`
}
