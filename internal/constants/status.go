package constants

import "strings"

type GoalStatus string

const (
	GoalPlanning   GoalStatus = "PLANNING"
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
	StatusBlocked    TaskStatus = "BLOCKED"
)

type TaskPriority string

const (
	PriorityLow      TaskPriority = "LOW"
	PriorityMedium   TaskPriority = "MEDIUM"
	PriorityHigh     TaskPriority = "HIGH"
	PriorityCritical TaskPriority = "CRITICAL"
)

var (
	goalStatuses   = []GoalStatus{GoalPlanning, GoalInProgress, GoalCompleted}
	taskStatuses   = []TaskStatus{StatusPending, StatusInProgress, StatusCompleted, StatusBlocked}
	taskPriorities = []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}
)

func ParseGoalStatus(s string) (GoalStatus, bool) {
	return parseLiteral(s, goalStatuses)
}

func ParseTaskStatus(s string) (TaskStatus, bool) {
	return parseLiteral(s, taskStatuses)
}

func ParseTaskPriority(s string) (TaskPriority, bool) {
	return parseLiteral(s, taskPriorities)
}

func parseLiteral[T ~string](s string, allowed []T) (T, bool) {
	normalized := T(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range allowed {
		if v == normalized {
			return v, true
		}
	}
	var zero T
	return zero, false
}
