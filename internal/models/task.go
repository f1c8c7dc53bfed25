package model

import (
	"time"

	"gorm.io/datatypes"

	"smart-task-planner.com/smart-task-planner/internal/constants"
)

type Task struct {
	ID                     string                      `gorm:"primaryKey;size:36" json:"id"`
	GoalID                 string                      `gorm:"size:36;not null;index" json:"goal_id"`
	Title                  string                      `gorm:"not null" json:"title"`
	Description            string                      `gorm:"type:text" json:"description"`
	DetailedDescription    string                      `gorm:"type:text" json:"detailed_description"`
	Steps                  datatypes.JSONSlice[string] `json:"steps"`
	EstimatedDurationHours int                         `gorm:"not null;default:0" json:"estimated_duration_hours"`
	Priority               constants.TaskPriority      `gorm:"type:varchar(20);not null" json:"priority"`
	Status                 constants.TaskStatus        `gorm:"type:varchar(20);not null" json:"status"`
	OrderIndex             int                         `gorm:"not null;index" json:"order_index"`
	Dependencies           datatypes.JSONSlice[int]    `json:"dependencies"`
	StartDate              time.Time                   `json:"start_date"`
	EndDate                time.Time                   `json:"end_date"`
	CreatedAt              time.Time                   `json:"created_at"`
	UpdatedAt              time.Time                   `json:"updated_at"`
}
