package planner

import (
	"time"

	"smart-task-planner.com/smart-task-planner/internal/constants"
)

// Request is what a caller asks the planner to decompose.
type Request struct {
	Description string
	TargetDate  *time.Time
	Constraints []string
}

// PlannedTask is one scheduled step of a Plan.
type PlannedTask struct {
	Title                  string                 `json:"title" yaml:"title"`
	Description            string                 `json:"description" yaml:"description"`
	DetailedDescription    string                 `json:"detailedDescription" yaml:"detailedDescription"`
	Steps                  []string               `json:"steps" yaml:"steps"`
	EstimatedDurationHours int                    `json:"estimatedDurationHours" yaml:"estimatedDurationHours"`
	Priority               constants.TaskPriority `json:"priority" yaml:"priority"`
	Status                 constants.TaskStatus   `json:"status" yaml:"status"`
	OrderIndex             int                    `json:"orderIndex" yaml:"orderIndex"`
	Dependencies           []int                  `json:"dependencies" yaml:"dependencies"`
	StartDate              time.Time              `json:"startDate" yaml:"startDate"`
	EndDate                time.Time              `json:"endDate" yaml:"endDate"`
}

// Source records whether a plan came from the model or the fallback.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// FallbackReason says why the fallback plan was used; empty for model plans.
type FallbackReason string

const (
	ReasonNone           FallbackReason = ""
	ReasonConfiguration  FallbackReason = "configuration"
	ReasonClientError    FallbackReason = "client_error"
	ReasonServerError    FallbackReason = "server_error"
	ReasonTransportError FallbackReason = "transport_error"
	ReasonParseError     FallbackReason = "parse_error"
)

// Plan is a fully resolved task plan. Every field carries a usable value;
// nothing downstream has to re-apply defaults.
type Plan struct {
	Analysis            string        `json:"analysis" yaml:"analysis"`
	TotalTasks          int           `json:"totalTasks" yaml:"totalTasks"`
	EstimatedTotalHours int           `json:"estimatedTotalHours" yaml:"estimatedTotalHours"`
	SuggestedStartDate  time.Time     `json:"suggestedStartDate" yaml:"suggestedStartDate"`
	SuggestedEndDate    time.Time     `json:"suggestedEndDate" yaml:"suggestedEndDate"`
	Tasks               []PlannedTask `json:"tasks" yaml:"tasks"`
	Recommendations     []string      `json:"recommendations" yaml:"recommendations"`
	Risks               []string      `json:"risks" yaml:"risks"`

	Source         Source         `json:"-" yaml:"-"`
	FallbackReason FallbackReason `json:"-" yaml:"-"`
}

func systemNow() time.Time {
	return time.Now().UTC()
}
