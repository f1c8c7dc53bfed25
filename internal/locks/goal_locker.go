package locks

import (
	"context"
	"errors"
)

// GoalLocker serializes writers of a single goal. Lock blocks until the goal
// is free, the wait budget is spent or ctx ends; the returned func releases it.
type GoalLocker interface {
	Lock(ctx context.Context, goalID string) (release func(), err error)
}

var ErrGoalLocked = errors.New("goal is locked by another writer")
