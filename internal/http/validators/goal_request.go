package validators

import (
	"strings"
	"unicode/utf8"

	"smart-task-planner.com/smart-task-planner/internal/constants"
	dto "smart-task-planner.com/smart-task-planner/internal/data_models"
	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
)

const maxDescriptionLength = 500

func ValidateGoalRequest(r *dto.GoalRequest) error {
	description := strings.TrimSpace(r.Description)
	if description == "" {
		return apperrors.ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return apperrors.ErrDescriptionTooLong
	}
	if r.MaxTasksPerDay != nil && *r.MaxTasksPerDay <= 0 {
		return apperrors.ErrInvalidMaxTasksPerDay
	}
	return nil
}

func ValidateUpdateTaskStatusRequest(r *dto.UpdateTaskStatusRequest) error {
	if strings.TrimSpace(r.TaskID) == "" {
		return apperrors.ErrTaskIDRequired
	}
	if _, ok := constants.ParseTaskStatus(r.Status); !ok {
		return apperrors.ErrInvalidStatus
	}
	return nil
}
