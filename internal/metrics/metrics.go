package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "plans_generated_total",
		Help:      "Plans produced, by source (ai or fallback) and fallback reason.",
	}, []string{"source", "reason"})

	PlannedTasks = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "planner",
		Name:      "plan_tasks",
		Help:      "Number of tasks per generated plan.",
		Buckets:   []float64{1, 3, 5, 8, 10, 15, 20},
	})

	TaskStatusUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "task_status_updates_total",
		Help:      "Task status updates, by new task status.",
	}, []string{"status"})

	GoalStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Name:      "goal_status_changes_total",
		Help:      "Goal status writes, by origin (derived or override) and new status.",
	}, []string{"origin", "status"})
)

func ObservePlan(source, reason string, tasks int) {
	PlansGenerated.WithLabelValues(source, reason).Inc()
	PlannedTasks.Observe(float64(tasks))
}

func ObserveTaskStatus(status string) {
	TaskStatusUpdates.WithLabelValues(status).Inc()
}

func ObserveGoalStatus(origin, status string) {
	GoalStatusChanges.WithLabelValues(origin, status).Inc()
}
