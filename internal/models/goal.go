package model

import (
	"time"

	"smart-task-planner.com/smart-task-planner/internal/constants"
)

type Goal struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Description string               `gorm:"size:500;not null" json:"description"`
	TargetDate  *time.Time           `json:"target_date,omitempty"`
	Status      constants.GoalStatus `gorm:"type:varchar(50);not null" json:"status"`
	AIAnalysis  string               `gorm:"type:text" json:"ai_analysis"`
	Tasks       []Task               `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"tasks"`
	Version     uint                 `gorm:"not null;default:1" json:"version"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// DeriveFromTasks recomputes Status from the loaded Tasks and reports whether it changed.
func (g *Goal) DeriveFromTasks() bool {
	statuses := make([]constants.TaskStatus, 0, len(g.Tasks))
	for _, t := range g.Tasks {
		statuses = append(statuses, t.Status)
	}

	next := constants.DeriveGoalStatus(g.Status, statuses)
	if next == g.Status {
		return false
	}
	g.Status = next
	return true
}

// OverrideStatus sets Status directly. A later derivation may replace it.
func (g *Goal) OverrideStatus(status constants.GoalStatus) {
	g.Status = status
}
