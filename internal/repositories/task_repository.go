package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"smart-task-planner.com/smart-task-planner/internal/constants"
	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
	model "smart-task-planner.com/smart-task-planner/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByGoal(ctx context.Context, goalID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("order_index asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, task *model.Task, status constants.TaskStatus) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": now,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}

	task.Status = status
	task.UpdatedAt = now
	return nil
}
