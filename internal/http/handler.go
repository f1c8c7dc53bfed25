package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dto "smart-task-planner.com/smart-task-planner/internal/data_models"
	apperrors "smart-task-planner.com/smart-task-planner/internal/errors"
	"smart-task-planner.com/smart-task-planner/internal/http/validators"
	"smart-task-planner.com/smart-task-planner/internal/services"
)

type Handler struct {
	goalService *services.GoalService
	logger      *zap.Logger
}

func NewHandler(goalService *services.GoalService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		goalService: goalService,
		logger:      logger,
	}
}

func (h *Handler) CreateGoal(c echo.Context) error {
	req, err := h.bindGoalRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.goalService.CreateGoalWithTasks(c.Request().Context(), *req)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) PreviewPlan(c echo.Context) error {
	req, err := h.bindGoalRequest(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, h.goalService.PreviewPlan(c.Request().Context(), *req))
}

func (h *Handler) GetGoal(c echo.Context) error {
	goal, err := h.goalService.GetGoal(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalResponse(*goal))
}

func (h *Handler) ListGoals(c echo.Context) error {
	goals, err := h.goalService.ListGoals(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalResponses(goals))
}

func (h *Handler) RecentGoals(c echo.Context) error {
	goals, err := h.goalService.RecentGoals(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalResponses(goals))
}

func (h *Handler) ListGoalTasks(c echo.Context) error {
	tasks, err := h.goalService.ListGoalTasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return h.fail(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateUpdateTaskStatusRequest(&req); err != nil {
		return h.fail(c, err)
	}

	task, err := h.goalService.UpdateTaskStatus(c.Request().Context(), c.Param("id"), req.TaskID, req.Status)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(*task))
}

func (h *Handler) UpdateGoalStatus(c echo.Context) error {
	goal, err := h.goalService.UpdateGoalStatus(c.Request().Context(), c.Param("id"), c.QueryParam("status"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewGoalResponse(*goal))
}

func (h *Handler) DeleteGoal(c echo.Context) error {
	if err := h.goalService.DeleteGoal(c.Request().Context(), c.Param("id")); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "UP"})
}

func (h *Handler) bindGoalRequest(c echo.Context) (*dto.GoalRequest, error) {
	var req dto.GoalRequest
	if err := c.Bind(&req); err != nil {
		if errors.Is(err, apperrors.ErrInvalidTargetDate) {
			return nil, h.fail(c, apperrors.ErrInvalidTargetDate)
		}
		return nil, h.fail(c, apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateGoalRequest(&req); err != nil {
		return nil, h.fail(c, err)
	}
	return &req, nil
}

// fail turns err into an echo error. Anything that is not an application
// exception is logged and reported as a bare 500.
func (h *Handler) fail(c echo.Context, err error) error {
	code := apperrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
	}
	return echo.NewHTTPError(code, apperrors.PublicMessage(err)).SetInternal(err)
}
