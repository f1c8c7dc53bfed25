package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smart-task-planner.com/smart-task-planner/internal/constants"
	dto "smart-task-planner.com/smart-task-planner/internal/data_models"
	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
	"smart-task-planner.com/smart-task-planner/internal/locks"
	"smart-task-planner.com/smart-task-planner/internal/metrics"
	model "smart-task-planner.com/smart-task-planner/internal/models"
	"smart-task-planner.com/smart-task-planner/internal/planner"
	repository "smart-task-planner.com/smart-task-planner/internal/repositories"
)

const recentGoalsLimit = 10

// PlanGenerator always returns a usable plan.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req planner.Request) planner.Plan
}

type GoalService struct {
	planner PlanGenerator
	uow     *repository.UnitOfWork
	locker  locks.GoalLocker
	logger  *zap.Logger
}

func NewGoalService(planner PlanGenerator, uow *repository.UnitOfWork, locker locks.GoalLocker, logger *zap.Logger) *GoalService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoalService{
		planner: planner,
		uow:     uow,
		locker:  locker,
		logger:  logger,
	}
}

// PreviewPlan generates a plan without persisting anything.
func (s *GoalService) PreviewPlan(ctx context.Context, req dto.GoalRequest) dto.TaskPlanResponse {
	plan := s.planner.GeneratePlan(ctx, req.ToPlanRequest())
	return dto.NewTaskPlanResponse(plan, nil)
}

func (s *GoalService) CreateGoalWithTasks(ctx context.Context, req dto.GoalRequest) (*dto.TaskPlanResponse, error) {
	planReq := req.ToPlanRequest()
	if planReq.Description == "" {
		return nil, apperrors.ErrDescriptionRequired
	}

	plan := s.planner.GeneratePlan(ctx, planReq)
	goal := newGoal(planReq, plan)

	err := s.uow.Do(ctx, func(repos repository.Repositories) error {
		return repos.Goals.Create(ctx, goal)
	})
	if err != nil {
		return nil, fmt.Errorf("persist goal: %w", err)
	}

	s.logger.Info("goal created",
		zap.String("goal_id", goal.ID),
		zap.Int("tasks", len(goal.Tasks)),
		zap.String("plan_source", string(plan.Source)))

	resp := dto.NewTaskPlanResponse(plan, goal)
	return &resp, nil
}

func newGoal(req planner.Request, plan planner.Plan) *model.Goal {
	goal := &model.Goal{
		ID:          uuid.NewString(),
		Description: req.Description,
		TargetDate:  req.TargetDate,
		Status:      constants.GoalPlanning,
		AIAnalysis:  plan.Analysis,
		Version:     1,
		Tasks:       make([]model.Task, 0, len(plan.Tasks)),
	}

	for _, t := range plan.Tasks {
		priority, ok := constants.ParseTaskPriority(string(t.Priority))
		if !ok {
			priority = constants.PriorityMedium
		}
		goal.Tasks = append(goal.Tasks, model.Task{
			ID:                     uuid.NewString(),
			GoalID:                 goal.ID,
			Title:                  t.Title,
			Description:            t.Description,
			DetailedDescription:    t.DetailedDescription,
			Steps:                  t.Steps,
			EstimatedDurationHours: t.EstimatedDurationHours,
			Priority:               priority,
			Status:                 constants.StatusPending,
			OrderIndex:             t.OrderIndex,
			Dependencies:           t.Dependencies,
			StartDate:              t.StartDate,
			EndDate:                t.EndDate,
		})
	}
	return goal
}

func (s *GoalService) GetGoal(ctx context.Context, id string) (*model.Goal, error) {
	return s.uow.Repositories().Goals.FindByID(ctx, id)
}

func (s *GoalService) ListGoals(ctx context.Context) ([]model.Goal, error) {
	return s.uow.Repositories().Goals.List(ctx)
}

func (s *GoalService) RecentGoals(ctx context.Context) ([]model.Goal, error) {
	return s.uow.Repositories().Goals.Recent(ctx, recentGoalsLimit)
}

func (s *GoalService) ListGoalTasks(ctx context.Context, goalID string) ([]model.Task, error) {
	repos := s.uow.Repositories()
	exists, err := repos.Goals.Exists(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGoalNotFound
	}
	return repos.Tasks.ListByGoal(ctx, goalID)
}

// UpdateTaskStatus writes the task status and re-derives the goal status in
// the same transaction, holding the goal lock throughout.
func (s *GoalService) UpdateTaskStatus(ctx context.Context, goalID, taskID, rawStatus string) (*model.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	status, ok := constants.ParseTaskStatus(rawStatus)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	release, err := s.lockGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	defer release()

	var updated *model.Task
	var goalChanged *model.Goal
	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		task, err := repos.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return err
		}
		if task.GoalID != goalID {
			return apperrors.ErrTaskNotInGoal
		}

		if err := repos.Tasks.UpdateStatus(ctx, task, status); err != nil {
			return err
		}

		goal, err := repos.Goals.FindByID(ctx, goalID)
		if err != nil {
			return err
		}
		if goal.DeriveFromTasks() {
			if err := repos.Goals.UpdateStatus(ctx, goal); err != nil {
				return err
			}
			goalChanged = goal
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveTaskStatus(string(status))
	if goalChanged != nil {
		metrics.ObserveGoalStatus("derived", string(goalChanged.Status))
		s.logger.Info("goal status derived",
			zap.String("goal_id", goalID),
			zap.String("status", string(goalChanged.Status)))
	}
	return updated, nil
}

// UpdateGoalStatus sets the goal status directly. A later task update may
// derive a different status.
func (s *GoalService) UpdateGoalStatus(ctx context.Context, goalID, rawStatus string) (*model.Goal, error) {
	status, ok := constants.ParseGoalStatus(rawStatus)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	release, err := s.lockGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	defer release()

	var goal *model.Goal
	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		found, err := repos.Goals.FindByID(ctx, goalID)
		if err != nil {
			return err
		}
		found.OverrideStatus(status)
		if err := repos.Goals.UpdateStatus(ctx, found); err != nil {
			return err
		}
		goal = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ObserveGoalStatus("override", string(status))
	s.logger.Info("goal status overridden", zap.String("goal_id", goalID), zap.String("status", string(status)))
	return goal, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, id string) error {
	release, err := s.lockGoal(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	err = s.uow.Do(ctx, func(repos repository.Repositories) error {
		return repos.Goals.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("goal deleted", zap.String("goal_id", id))
	return nil
}

func (s *GoalService) lockGoal(ctx context.Context, goalID string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	release, err := s.locker.Lock(ctx, goalID)
	if err != nil {
		if errors.Is(err, locks.ErrGoalLocked) {
			return nil, apperrors.ErrGoalBusy
		}
		return nil, fmt.Errorf("lock goal %s: %w", goalID, err)
	}
	return release, nil
}
