package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"smart-task-planner.com/smart-task-planner/internal/constants"
)

func TestFallbackGenerator_Generate(t *testing.T) {
	g := NewFallbackGenerator(fixedClock(epoch), zap.NewNop())

	plan := g.Generate(&Request{Description: "Launch a podcast"}, ReasonConfiguration)

	assert.Equal(t, SourceFallback, plan.Source)
	assert.Equal(t, ReasonConfiguration, plan.FallbackReason)
	assert.Equal(t, FallbackAnalysis, plan.Analysis)
	assert.Equal(t, 5, plan.TotalTasks)
	assert.Equal(t, 42, plan.EstimatedTotalHours)
	assert.Equal(t, epoch, plan.SuggestedStartDate)
	assert.Equal(t, epoch.Add(42*time.Hour), plan.SuggestedEndDate)
	assert.Len(t, plan.Recommendations, 6)
	assert.Len(t, plan.Risks, 4)
	assert.Equal(t, "Gemini API not configured - using sample data", plan.Risks[0])

	require.Len(t, plan.Tasks, 5)
	assert.Equal(t, "Research and Planning for: Launch a podcast", plan.Tasks[0].Title)

	wantHours := []int{8, 6, 16, 8, 4}
	wantPriority := []constants.TaskPriority{
		constants.PriorityHigh, constants.PriorityMedium, constants.PriorityHigh,
		constants.PriorityMedium, constants.PriorityCritical,
	}
	cursor := epoch
	for i, task := range plan.Tasks {
		assert.Equal(t, i+1, task.OrderIndex)
		assert.Equal(t, wantHours[i], task.EstimatedDurationHours)
		assert.Equal(t, wantPriority[i], task.Priority)
		assert.Equal(t, constants.StatusPending, task.Status)
		assert.Len(t, task.Steps, 5)
		assert.Equal(t, cursor, task.StartDate)
		assert.Equal(t, cursor.Add(time.Duration(wantHours[i])*time.Hour), task.EndDate)
		cursor = task.EndDate

		if i == 0 {
			assert.Equal(t, []int{}, task.Dependencies)
		} else {
			assert.Equal(t, []int{i}, task.Dependencies)
		}
	}
}

func TestFallbackGenerator_NilRequest(t *testing.T) {
	plan := NewFallbackGenerator(fixedClock(epoch), nil).Generate(nil, ReasonParseError)

	require.Len(t, plan.Tasks, 5)
	assert.Equal(t, "Research and Planning for: Sample Goal", plan.Tasks[0].Title)
}

func TestFallbackGenerator_PlansDoNotShareSlices(t *testing.T) {
	g := NewFallbackGenerator(fixedClock(epoch), nil)

	first := g.Generate(&Request{Description: "a"}, ReasonParseError)
	first.Tasks[0].Steps[0] = "changed"
	first.Risks[0] = "changed"

	second := g.Generate(&Request{Description: "a"}, ReasonParseError)
	assert.NotEqual(t, "changed", second.Tasks[0].Steps[0])
	assert.NotEqual(t, "changed", second.Risks[0])
}
