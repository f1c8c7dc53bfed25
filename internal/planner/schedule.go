package planner

import (
	"math"
	"time"
)

// MaxTaskHours is the longest task Schedule can place without overflowing
// time.Duration.
const MaxTaskHours = int(math.MaxInt64 / int64(time.Hour))

// Schedule places a task of the given length at cursor. The next task
// starts at the returned end, so tasks never overlap.
func Schedule(cursor time.Time, hours int) (start, end time.Time) {
	return cursor, cursor.Add(time.Duration(hours) * time.Hour)
}

// Scheduler lays tasks back to back from a start time and tracks the total
// hours placed so far.
type Scheduler struct {
	cursor     time.Time
	totalHours int
}

func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{cursor: start}
}

func (s *Scheduler) Place(hours int) (start, end time.Time) {
	start, end = Schedule(s.cursor, hours)
	s.cursor = end
	s.totalHours += hours
	return start, end
}

func (s *Scheduler) Cursor() time.Time {
	return s.cursor
}

func (s *Scheduler) TotalHours() int {
	return s.totalHours
}
