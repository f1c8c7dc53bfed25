package errors

import "net/http"

var ErrOptimisticLock = &Exception{
	Message:    "optimistic locking conflict",
	StatusCode: http.StatusConflict,
}

var ErrGoalBusy = &Exception{
	Message:    "goal is being updated by another request",
	StatusCode: http.StatusConflict,
}
