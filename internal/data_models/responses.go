package dto

import (
	"smart-task-planner.com/smart-task-planner/internal/constants"
	model "smart-task-planner.com/smart-task-planner/internal/models"
	"smart-task-planner.com/smart-task-planner/internal/planner"
)

type TaskResponse struct {
	ID                     string                 `json:"id,omitempty" yaml:"id,omitempty"`
	Title                  string                 `json:"title" yaml:"title"`
	Description            string                 `json:"description" yaml:"description"`
	DetailedDescription    string                 `json:"detailedDescription" yaml:"detailedDescription"`
	Steps                  []string               `json:"steps" yaml:"steps"`
	EstimatedDurationHours int                    `json:"estimatedDurationHours" yaml:"estimatedDurationHours"`
	Priority               constants.TaskPriority `json:"priority" yaml:"priority"`
	Status                 constants.TaskStatus   `json:"status" yaml:"status"`
	OrderIndex             int                    `json:"orderIndex" yaml:"orderIndex"`
	Dependencies           []int                  `json:"dependencies" yaml:"dependencies"`
	StartDate              LocalDateTime          `json:"startDate" yaml:"startDate"`
	EndDate                LocalDateTime          `json:"endDate" yaml:"endDate"`
}

type GoalResponse struct {
	ID          string               `json:"id"`
	Description string               `json:"description"`
	TargetDate  OptionalDateTime     `json:"targetDate"`
	Status      constants.GoalStatus `json:"status"`
	AIAnalysis  string               `json:"aiAnalysis"`
	Tasks       []TaskResponse       `json:"tasks"`
	CreatedAt   LocalDateTime        `json:"createdAt"`
	UpdatedAt   LocalDateTime        `json:"updatedAt"`
}

type TaskPlanResponse struct {
	GoalID              string         `json:"goalId,omitempty" yaml:"goalId,omitempty"`
	Analysis            string         `json:"analysis" yaml:"analysis"`
	TotalTasks          int            `json:"totalTasks" yaml:"totalTasks"`
	EstimatedTotalHours int            `json:"estimatedTotalHours" yaml:"estimatedTotalHours"`
	SuggestedStartDate  LocalDateTime  `json:"suggestedStartDate" yaml:"suggestedStartDate"`
	SuggestedEndDate    LocalDateTime  `json:"suggestedEndDate" yaml:"suggestedEndDate"`
	Tasks               []TaskResponse `json:"tasks" yaml:"tasks"`
	Recommendations     []string       `json:"recommendations" yaml:"recommendations"`
	Risks               []string       `json:"risks" yaml:"risks"`
}

func NewTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:                     t.ID,
		Title:                  t.Title,
		Description:            t.Description,
		DetailedDescription:    t.DetailedDescription,
		Steps:                  nonNil(t.Steps),
		EstimatedDurationHours: t.EstimatedDurationHours,
		Priority:               t.Priority,
		Status:                 t.Status,
		OrderIndex:             t.OrderIndex,
		Dependencies:           nonNil(t.Dependencies),
		StartDate:              NewLocalDateTime(t.StartDate),
		EndDate:                NewLocalDateTime(t.EndDate),
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}

func NewGoalResponse(g model.Goal) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		Description: g.Description,
		TargetDate:  OptionalFrom(g.TargetDate),
		Status:      g.Status,
		AIAnalysis:  g.AIAnalysis,
		Tasks:       NewTaskResponses(g.Tasks),
		CreatedAt:   NewLocalDateTime(g.CreatedAt),
		UpdatedAt:   NewLocalDateTime(g.UpdatedAt),
	}
}

func NewGoalResponses(goals []model.Goal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, NewGoalResponse(g))
	}
	return out
}

// NewTaskPlanResponse renders a plan. When goal is set the tasks come from
// the persisted rows so their ids are included.
func NewTaskPlanResponse(plan planner.Plan, goal *model.Goal) TaskPlanResponse {
	resp := TaskPlanResponse{
		Analysis:            plan.Analysis,
		TotalTasks:          plan.TotalTasks,
		EstimatedTotalHours: plan.EstimatedTotalHours,
		SuggestedStartDate:  NewLocalDateTime(plan.SuggestedStartDate),
		SuggestedEndDate:    NewLocalDateTime(plan.SuggestedEndDate),
		Recommendations:     nonNil(plan.Recommendations),
		Risks:               nonNil(plan.Risks),
	}

	if goal != nil {
		resp.GoalID = goal.ID
		resp.Tasks = NewTaskResponses(goal.Tasks)
		return resp
	}

	resp.Tasks = make([]TaskResponse, 0, len(plan.Tasks))
	for _, t := range plan.Tasks {
		resp.Tasks = append(resp.Tasks, TaskResponse{
			Title:                  t.Title,
			Description:            t.Description,
			DetailedDescription:    t.DetailedDescription,
			Steps:                  nonNil(t.Steps),
			EstimatedDurationHours: t.EstimatedDurationHours,
			Priority:               t.Priority,
			Status:                 t.Status,
			OrderIndex:             t.OrderIndex,
			Dependencies:           nonNil(t.Dependencies),
			StartDate:              NewLocalDateTime(t.StartDate),
			EndDate:                NewLocalDateTime(t.EndDate),
		})
	}
	return resp
}

func nonNil[T any, S ~[]T](s S) []T {
	if s == nil {
		return []T{}
	}
	return []T(s)
}
