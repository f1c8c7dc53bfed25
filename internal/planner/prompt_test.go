package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromptBuilder_WithoutTargetDate(t *testing.T) {
	b := NewPromptBuilder(fixedClock(epoch))

	prompt := b.Build(Request{Description: "Launch a podcast"})

	assert.Contains(t, prompt, "Goal: Launch a podcast\n")
	assert.NotContains(t, prompt, "Target Completion Date")
	assert.NotContains(t, prompt, "Constraints:")
	assert.Contains(t, prompt, `"suggestedStartDate": "2024-01-01T00:00:00"`)
	assert.Contains(t, prompt, `"suggestedEndDate": "<calculate based on total hours>"`)
	assert.Contains(t, prompt, "For simple goals: 3-5 tasks")
	assert.Contains(t, prompt, "For moderate goals: 5-8 tasks")
	assert.Contains(t, prompt, "For complex goals: 8-15 tasks")
	assert.Contains(t, prompt, "Return ONLY the JSON object, no markdown code blocks")

	for _, field := range []string{
		"analysis", "totalTasks", "estimatedTotalHours", "tasks", "title", "description",
		"detailedDescription", "steps", "estimatedDurationHours", "priority", "status",
		"orderIndex", "dependencies", "recommendations", "risks",
	} {
		assert.Contains(t, prompt, `"`+field+`"`)
	}
}

func TestPromptBuilder_TargetDateAndConstraints(t *testing.T) {
	b := NewPromptBuilder(fixedClock(epoch))
	target := epoch.Add(10*24*time.Hour + 5*time.Hour)

	prompt := b.Build(Request{
		Description: "Write a novel",
		TargetDate:  &target,
		Constraints: []string{"weekends only", "budget under $100"},
	})

	assert.Contains(t, prompt, "Target Completion Date: 2024-01-11\n")
	assert.Contains(t, prompt, "Days Available: 10 days\n")
	assert.Contains(t, prompt, "fit realistically within this timeframe")
	assert.Contains(t, prompt, "Constraints: weekends only, budget under $100\n")
	assert.Contains(t, prompt, `"suggestedEndDate": "2024-01-11T05:00:00"`)
}

func TestPromptBuilder_Deterministic(t *testing.T) {
	b := NewPromptBuilder(fixedClock(epoch))
	req := Request{Description: "Learn Go"}

	assert.Equal(t, b.Build(req), b.Build(req))
}

func TestDaysAvailable(t *testing.T) {
	assert.Equal(t, 0, DaysAvailable(epoch, epoch.Add(23*time.Hour)))
	assert.Equal(t, 3, DaysAvailable(epoch, epoch.Add(3*24*time.Hour)))
	assert.Equal(t, -2, DaysAvailable(epoch, epoch.Add(-2*24*time.Hour-time.Hour)))
}
