package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"smart-task-planner.com/smart-task-planner/internal/constants"
)

const threeTaskPlan = `{
  "analysis": "Three focused steps.",
  "totalTasks": 3,
  "estimatedTotalHours": 10,
  "suggestedStartDate": "2024-01-01T00:00:00",
  "suggestedEndDate": "2024-01-01T04:00:00",
  "tasks": [
    {"title": "Outline", "description": "Sketch it", "detailedDescription": "Long outline", "steps": ["a", "b"],
     "estimatedDurationHours": 2, "priority": "HIGH", "status": "PENDING", "orderIndex": 1, "dependencies": []},
    {"title": "Draft", "description": "Write it", "steps": ["c"],
     "estimatedDurationHours": 3, "priority": "low", "status": "PENDING", "orderIndex": 2, "dependencies": [1]},
    {"title": "Polish", "description": "Fix it",
     "estimatedDurationHours": 5, "priority": "CRITICAL", "orderIndex": 3, "dependencies": [2]}
  ],
  "recommendations": ["Start early"],
  "risks": ["Writer's block"]
}`

func newTestParser(now time.Time) *ResponseParser {
	return NewResponseParser(NewFallbackGenerator(fixedClock(now), zap.NewNop()), fixedClock(now), zap.NewNop())
}

func TestParse_ValidPlan(t *testing.T) {
	p := newTestParser(epoch.Add(72 * time.Hour))

	plan := p.Parse(textResponse(threeTaskPlan), Request{Description: "Write an essay"})

	require.Equal(t, SourceAI, plan.Source)
	assert.Equal(t, "Three focused steps.", plan.Analysis)
	assert.Equal(t, 3, plan.TotalTasks)
	assert.Equal(t, 10, plan.EstimatedTotalHours)
	assert.Equal(t, epoch, plan.SuggestedStartDate)
	assert.Equal(t, epoch.Add(10*time.Hour), plan.SuggestedEndDate, "end earlier than the schedule is pushed out")
	assert.Equal(t, []string{"Start early"}, plan.Recommendations)
	assert.Equal(t, []string{"Writer's block"}, plan.Risks)

	require.Len(t, plan.Tasks, 3)
	last := plan.Tasks[2]
	assert.Equal(t, epoch.Add(5*time.Hour), last.StartDate)
	assert.Equal(t, epoch.Add(10*time.Hour), last.EndDate)

	assert.Equal(t, constants.PriorityLow, plan.Tasks[1].Priority)
	assert.Equal(t, "Write it", plan.Tasks[1].DetailedDescription)
	assert.Equal(t, []int{1}, plan.Tasks[1].Dependencies)
	assert.Equal(t, constants.StatusPending, last.Status)
	assert.Empty(t, last.Steps)
	assert.NotNil(t, last.Steps)
}

func TestParse_FencedEqualsUnfenced(t *testing.T) {
	p := newTestParser(epoch)

	plain := p.Parse(textResponse(threeTaskPlan), Request{Description: "x"})

	for name, wrapped := range map[string]string{
		"json fence":   "```json\n" + threeTaskPlan + "\n```",
		"bare fence":   "```\n" + threeTaskPlan + "\n```",
		"padded fence": "  \n```json" + threeTaskPlan + "```  \n",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, plain, p.Parse(textResponse(wrapped), Request{Description: "x"}))
		})
	}
}

func TestParse_MissingDurationDefaultsToFour(t *testing.T) {
	p := newTestParser(epoch)
	text := `{"suggestedStartDate": "2024-01-01T00:00:00", "tasks": [
		{"title": "A"},
		{"title": "B", "estimatedDurationHours": "not a number"},
		{"title": "C", "estimatedDurationHours": "6"}
	]}`

	plan := p.Parse(textResponse(text), Request{})

	require.Equal(t, SourceAI, plan.Source)
	require.Len(t, plan.Tasks, 3)
	assert.Equal(t, 4, plan.Tasks[0].EstimatedDurationHours)
	assert.Equal(t, 4, plan.Tasks[1].EstimatedDurationHours)
	assert.Equal(t, 6, plan.Tasks[2].EstimatedDurationHours)
	assert.Equal(t, 14, plan.EstimatedTotalHours)
	assert.Equal(t, epoch.Add(4*time.Hour), plan.Tasks[0].EndDate)
	assert.Equal(t, plan.Tasks[0].EndDate, plan.Tasks[1].StartDate)
	assert.Equal(t, epoch.Add(14*time.Hour), plan.SuggestedEndDate)
}

func TestParse_OversizedDurationDefaultsToFour(t *testing.T) {
	p := newTestParser(epoch)
	text := `{"suggestedStartDate": "2024-01-01T00:00:00", "tasks": [
		{"estimatedDurationHours": 3000000},
		{"estimatedDurationHours": 2}
	]}`

	plan := p.Parse(textResponse(text), Request{})

	require.Equal(t, SourceAI, plan.Source)
	require.Len(t, plan.Tasks, 2)
	first := plan.Tasks[0]
	assert.Equal(t, defaultDurationHours, first.EstimatedDurationHours)
	assert.Equal(t, epoch.Add(4*time.Hour), first.EndDate)
	assert.False(t, first.EndDate.Before(first.StartDate))
	assert.Equal(t, 6, plan.EstimatedTotalHours)
	assert.Equal(t, epoch.Add(6*time.Hour), plan.SuggestedEndDate)
}

func TestParse_LargestDurationIsScheduled(t *testing.T) {
	p := newTestParser(epoch)
	text := fmt.Sprintf(`{"suggestedStartDate": "2024-01-01T00:00:00", "tasks": [{"estimatedDurationHours": %d}]}`, MaxTaskHours)

	plan := p.Parse(textResponse(text), Request{})

	require.Len(t, plan.Tasks, 1)
	task := plan.Tasks[0]
	assert.Equal(t, MaxTaskHours, task.EstimatedDurationHours)
	assert.True(t, task.EndDate.After(task.StartDate))
}

func TestParse_TaskDefaults(t *testing.T) {
	now := epoch.Add(5 * time.Hour)
	p := newTestParser(now)
	text := `{"tasks": [{}, 42, {"priority": "URGENT", "status": "DONE", "steps": "nope", "dependencies": [1, "x", "3"]}],
		"recommendations": "not a list"}`

	plan := p.Parse(textResponse(text), Request{})

	require.Equal(t, SourceAI, plan.Source)
	assert.Equal(t, defaultAnalysis, plan.Analysis)
	assert.Equal(t, now, plan.SuggestedStartDate)
	assert.Equal(t, []string{}, plan.Recommendations)
	assert.Equal(t, []string{}, plan.Risks)

	require.Len(t, plan.Tasks, 3)
	for i, task := range plan.Tasks {
		assert.Equal(t, defaultTaskTitle, task.Title)
		assert.Equal(t, defaultTaskDescription, task.Description)
		assert.Equal(t, defaultDetailedDescription, task.DetailedDescription)
		assert.Equal(t, constants.PriorityMedium, task.Priority)
		assert.Equal(t, constants.StatusPending, task.Status)
		assert.Equal(t, i+1, task.OrderIndex)
		assert.Equal(t, defaultDurationHours, task.EstimatedDurationHours)
		assert.Equal(t, []string{}, task.Steps)
	}
	assert.Equal(t, []int{1, 3}, plan.Tasks[2].Dependencies)
}

func TestParse_LaterEndDateIsKept(t *testing.T) {
	p := newTestParser(epoch)
	text := `{"suggestedStartDate": "2024-01-01T00:00:00", "suggestedEndDate": "2024-02-01T00:00:00",
		"tasks": [{"estimatedDurationHours": 2}]}`

	plan := p.Parse(textResponse(text), Request{})

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), plan.SuggestedEndDate)
}

func TestParse_UnparseableDates(t *testing.T) {
	now := epoch.Add(24 * time.Hour)
	p := newTestParser(now)
	text := `{"suggestedStartDate": "next tuesday", "suggestedEndDate": 12, "tasks": [{"estimatedDurationHours": 1}]}`

	plan := p.Parse(textResponse(text), Request{})

	require.Equal(t, SourceAI, plan.Source)
	assert.Equal(t, now, plan.SuggestedStartDate)
	assert.Equal(t, now.Add(time.Hour), plan.SuggestedEndDate)
}

func TestParse_FailuresFallBack(t *testing.T) {
	p := newTestParser(epoch)
	req := Request{Description: "Launch a podcast"}
	expected := NewFallbackGenerator(fixedClock(epoch), zap.NewNop()).Generate(&req, ReasonParseError)

	cases := map[string]*genai.GenerateContentResponse{
		"nil response":    nil,
		"no candidates":   {},
		"nil content":     {Candidates: []*genai.Candidate{{}}},
		"nil candidate":   {Candidates: []*genai.Candidate{nil}},
		"blank text":      textResponse("   "),
		"not json":        textResponse("Sure! Here is your plan: step one, step two."),
		"truncated json":  textResponse(`{"analysis": "cut off", "tasks": [`),
		"json array":      textResponse(`[{"title": "A"}]`),
		"json null":       textResponse("null"),
		"fenced not json": textResponse("```json\nhello\n```"),
	}

	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			plan := p.Parse(resp, req)
			assert.Equal(t, expected, plan)
			assert.Equal(t, ReasonParseError, plan.FallbackReason)
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("```{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, StripCodeFence("  {\"a\":1}  "))
	assert.Equal(t, `{"a":1}`, StripCodeFence("{\"a\":1}\n```"))
}

func TestParseDateTime(t *testing.T) {
	got, ok := ParseDateTime("2024-01-01T10:30:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC), got)

	got, ok = ParseDateTime("2024-01-01T10:30:00.250")
	require.True(t, ok)
	assert.Equal(t, 250*time.Millisecond, time.Duration(got.Nanosecond()))

	got, ok = ParseDateTime("2024-01-01T12:00:00+02:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), got)

	_, ok = ParseDateTime("01/02/2024")
	assert.False(t, ok)
	_, ok = ParseDateTime("")
	assert.False(t, ok)
}
