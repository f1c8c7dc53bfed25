package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	middleware "smart-task-planner.com/smart-task-planner/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(echomw.RequestID())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	goals := api.Group("/goals")
	goals.POST("", h.CreateGoal)
	goals.GET("", h.ListGoals)
	goals.GET("/recent", h.RecentGoals)
	goals.GET("/:id", h.GetGoal)
	goals.GET("/:id/tasks", h.ListGoalTasks)
	goals.PUT("/:id/tasks/status", h.UpdateTaskStatus)
	goals.PUT("/:id/status", h.UpdateGoalStatus)
	goals.DELETE("/:id", h.DeleteGoal)

	api.POST("/plans/preview", h.PreviewPlan)
}
