package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrTaskNotInGoal = &Exception{
	Message:    "task does not belong to this goal",
	StatusCode: http.StatusBadRequest,
}
