package constants

// DeriveGoalStatus computes a goal's status from its tasks' statuses.
// With no tasks, or none completed, the current status is kept; a goal never
// reverts to PLANNING on its own.
func DeriveGoalStatus(current GoalStatus, tasks []TaskStatus) GoalStatus {
	total := len(tasks)
	if total == 0 {
		return current
	}

	completed := 0
	for _, s := range tasks {
		if s == StatusCompleted {
			completed++
		}
	}

	switch {
	case completed == total:
		return GoalCompleted
	case completed > 0:
		return GoalInProgress
	default:
		return current
	}
}
