package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
	model "smart-task-planner.com/smart-task-planner/internal/models"
)

type GoalRepository struct {
	db *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Create inserts the goal and its tasks.
func (r *GoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *GoalRepository) FindByID(ctx context.Context, id string) (*model.Goal, error) {
	var goal model.Goal
	err := r.db.WithContext(ctx).
		Preload("Tasks", orderedTasks).
		First(&goal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *GoalRepository) List(ctx context.Context) ([]model.Goal, error) {
	return r.list(ctx, 0)
}

func (r *GoalRepository) Recent(ctx context.Context, limit int) ([]model.Goal, error) {
	return r.list(ctx, limit)
}

func (r *GoalRepository) list(ctx context.Context, limit int) ([]model.Goal, error) {
	var goals []model.Goal
	query := r.db.WithContext(ctx).
		Preload("Tasks", orderedTasks).
		Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

// UpdateStatus writes goal.Status if the row still carries goal.Version and
// bumps the version.
func (r *GoalRepository) UpdateStatus(ctx context.Context, goal *model.Goal) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&model.Goal{}).
		Where("id = ? AND version = ?", goal.ID, goal.Version).
		Updates(map[string]interface{}{
			"status":     goal.Status,
			"updated_at": now,
			"version":    gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	goal.Version++
	goal.UpdatedAt = now
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("goal_id = ?", id).Delete(&model.Task{}).Error; err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Delete(&model.Goal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrGoalNotFound
	}
	return nil
}

func (r *GoalRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Goal{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func orderedTasks(db *gorm.DB) *gorm.DB {
	return db.Order("order_index asc")
}
