package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	config "smart-task-planner.com/smart-task-planner/internal/configs"
	"smart-task-planner.com/smart-task-planner/internal/constants"
	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
	model "smart-task-planner.com/smart-task-planner/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.NewDatabaseClient(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name()))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newGoal(taskCount int) *model.Goal {
	goal := &model.Goal{
		ID:          uuid.NewString(),
		Description: "Plant a garden",
		Status:      constants.GoalPlanning,
		Version:     1,
	}
	// Inserted in reverse so reads have to sort.
	for i := taskCount; i >= 1; i-- {
		goal.Tasks = append(goal.Tasks, model.Task{
			ID:         uuid.NewString(),
			Title:      fmt.Sprintf("task %d", i),
			Priority:   constants.PriorityLow,
			Status:     constants.StatusPending,
			OrderIndex: i,
			Steps:      []string{"dig"},
		})
	}
	return goal
}

func TestGoalRepository_CreateAndFind(t *testing.T) {
	repo := NewGoalRepository(setupTestDB(t))
	ctx := context.Background()
	goal := newGoal(3)

	require.NoError(t, repo.Create(ctx, goal))

	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, found.Tasks, 3)
	for i, task := range found.Tasks {
		assert.Equal(t, i+1, task.OrderIndex)
		assert.Equal(t, goal.ID, task.GoalID)
	}
	assert.Equal(t, []string{"dig"}, []string(found.Tasks[0].Steps))

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrGoalNotFound)
}

func TestGoalRepository_UpdateStatusOptimisticLock(t *testing.T) {
	repo := NewGoalRepository(setupTestDB(t))
	ctx := context.Background()
	goal := newGoal(1)
	require.NoError(t, repo.Create(ctx, goal))

	stale := *goal

	goal.Status = constants.GoalInProgress
	require.NoError(t, repo.UpdateStatus(ctx, goal))
	assert.Equal(t, uint(2), goal.Version)

	stale.Status = constants.GoalCompleted
	assert.ErrorIs(t, repo.UpdateStatus(ctx, &stale), apperrors.ErrOptimisticLock)

	found, err := repo.FindByID(ctx, goal.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.GoalInProgress, found.Status)
	assert.Equal(t, uint(2), found.Version)
}

func TestGoalRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()
	goal := newGoal(2)
	require.NoError(t, repo.Create(ctx, goal))

	require.NoError(t, repo.Delete(ctx, goal.ID))

	var remaining int64
	require.NoError(t, db.Model(&model.Task{}).Count(&remaining).Error)
	assert.Zero(t, remaining)

	assert.ErrorIs(t, repo.Delete(ctx, goal.ID), apperrors.ErrGoalNotFound)
}

func TestGoalRepository_Recent(t *testing.T) {
	repo := NewGoalRepository(setupTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 4; i++ {
		goal := newGoal(0)
		goal.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Create(ctx, goal))
		ids = append(ids, goal.ID)
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, ids[3], recent[0].ID)
	assert.Equal(t, ids[2], recent[1].ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestTaskRepository(t *testing.T) {
	db := setupTestDB(t)
	goals := NewGoalRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()
	goal := newGoal(3)
	require.NoError(t, goals.Create(ctx, goal))

	listed, err := tasks.ListByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, 1, listed[0].OrderIndex)

	task := &listed[1]
	require.NoError(t, tasks.UpdateStatus(ctx, task, constants.StatusBlocked))
	assert.Equal(t, constants.StatusBlocked, task.Status)

	found, err := tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.StatusBlocked, found.Status)

	_, err = tasks.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	assert.ErrorIs(t, tasks.UpdateStatus(ctx, &model.Task{ID: "missing"}, constants.StatusCompleted), apperrors.ErrTaskNotFound)
}

func TestUnitOfWork_RollsBack(t *testing.T) {
	db := setupTestDB(t)
	uow := NewUnitOfWork(db)
	ctx := context.Background()
	goal := newGoal(2)
	boom := errors.New("boom")

	err := uow.Do(ctx, func(repos Repositories) error {
		if err := repos.Goals.Create(ctx, goal); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := uow.Repositories().Goals.Exists(ctx, goal.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
