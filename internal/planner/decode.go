package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"smart-task-planner.com/smart-task-planner/internal/constants"
)

const (
	defaultDurationHours       = 4
	defaultTaskTitle           = "Untitled Task"
	defaultTaskDescription     = "No description"
	defaultDetailedDescription = "No detailed description available"
	defaultAnalysis            = "No analysis provided"
)

var errNotJSONObject = errors.New("plan payload is not a JSON object")

// The wire types below never fail on a field of the wrong shape; they only
// record whether a usable value was present. Defaults are applied in resolve.

type lenientString struct {
	value string
	ok    bool
}

func (s *lenientString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	if text, ok := scalarText(v); ok && strings.TrimSpace(text) != "" {
		s.value, s.ok = text, true
	}
	return nil
}

func (s lenientString) or(def string) string {
	if s.ok {
		return s.value
	}
	return def
}

type lenientInt struct {
	value int
	ok    bool
}

func (n *lenientInt) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	n.value, n.ok = scalarInt(v)
	return nil
}

type lenientStrings []string

func (l *lenientStrings) UnmarshalJSON(b []byte) error {
	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := scalarText(item); ok {
			out = append(out, text)
		}
	}
	*l = out
	return nil
}

type lenientInts []int

func (l *lenientInts) UnmarshalJSON(b []byte) error {
	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		return nil
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		if n, ok := scalarInt(item); ok {
			out = append(out, n)
		}
	}
	*l = out
	return nil
}

type wireTask struct {
	Title                  lenientString  `json:"title"`
	Description            lenientString  `json:"description"`
	DetailedDescription    lenientString  `json:"detailedDescription"`
	Steps                  lenientStrings `json:"steps"`
	EstimatedDurationHours lenientInt     `json:"estimatedDurationHours"`
	Priority               lenientString  `json:"priority"`
	Status                 lenientString  `json:"status"`
	OrderIndex             lenientInt     `json:"orderIndex"`
	Dependencies           lenientInts    `json:"dependencies"`
}

type wireTasks []wireTask

// An element that is not an object decodes to an empty wireTask, which
// resolves to an all-default task.
func (l *wireTasks) UnmarshalJSON(b []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return nil
	}
	out := make([]wireTask, len(items))
	for i, raw := range items {
		var t wireTask
		if err := json.Unmarshal(raw, &t); err == nil {
			out[i] = t
		}
	}
	*l = out
	return nil
}

type wirePlan struct {
	Analysis           lenientString  `json:"analysis"`
	SuggestedStartDate lenientString  `json:"suggestedStartDate"`
	SuggestedEndDate   lenientString  `json:"suggestedEndDate"`
	Tasks              wireTasks      `json:"tasks"`
	Recommendations    lenientStrings `json:"recommendations"`
	Risks              lenientStrings `json:"risks"`
}

// decodePlan turns cleaned model output into a complete Plan, or fails as a whole.
func decodePlan(text string, now time.Time) (Plan, error) {
	payload := bytes.TrimSpace([]byte(text))
	if len(payload) == 0 || payload[0] != '{' {
		return Plan{}, errNotJSONObject
	}

	var wp wirePlan
	if err := json.Unmarshal(payload, &wp); err != nil {
		return Plan{}, fmt.Errorf("decode plan json: %w", err)
	}

	return wp.resolve(now), nil
}

func (w wirePlan) resolve(now time.Time) Plan {
	start, ok := ParseDateTime(w.SuggestedStartDate.value)
	if !ok {
		start = now
	}

	scheduler := NewScheduler(start)
	tasks := make([]PlannedTask, 0, len(w.Tasks))
	for i, wt := range w.Tasks {
		task := wt.resolve(i)
		task.StartDate, task.EndDate = scheduler.Place(task.EstimatedDurationHours)
		tasks = append(tasks, task)
	}

	end, ok := ParseDateTime(w.SuggestedEndDate.value)
	if !ok || end.Before(scheduler.Cursor()) {
		end = scheduler.Cursor()
	}

	return Plan{
		Analysis:            w.Analysis.or(defaultAnalysis),
		TotalTasks:          len(tasks),
		EstimatedTotalHours: scheduler.TotalHours(),
		SuggestedStartDate:  start,
		SuggestedEndDate:    end,
		Tasks:               tasks,
		Recommendations:     nonNil(w.Recommendations),
		Risks:               nonNil(w.Risks),
		Source:              SourceAI,
	}
}

func (w wireTask) resolve(position int) PlannedTask {
	hours := defaultDurationHours
	if w.EstimatedDurationHours.ok && w.EstimatedDurationHours.value >= 0 && w.EstimatedDurationHours.value <= MaxTaskHours {
		hours = w.EstimatedDurationHours.value
	}

	orderIndex := position + 1
	if w.OrderIndex.ok {
		orderIndex = w.OrderIndex.value
	}

	priority, ok := constants.ParseTaskPriority(w.Priority.value)
	if !ok {
		priority = constants.PriorityMedium
	}

	status, ok := constants.ParseTaskStatus(w.Status.value)
	if !ok {
		status = constants.StatusPending
	}

	description := w.Description.or(defaultTaskDescription)

	return PlannedTask{
		Title:                  w.Title.or(defaultTaskTitle),
		Description:            description,
		DetailedDescription:    w.DetailedDescription.or(w.Description.or(defaultDetailedDescription)),
		Steps:                  nonNil(w.Steps),
		EstimatedDurationHours: hours,
		Priority:               priority,
		Status:                 status,
		OrderIndex:             orderIndex,
		Dependencies:           nonNil(w.Dependencies),
	}
}

func scalarText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func scalarInt(v any) (int, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func nonNil[T any, S ~[]T](s S) []T {
	if s == nil {
		return []T{}
	}
	return []T(s)
}
