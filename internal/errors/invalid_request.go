package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

var ErrDescriptionRequired = &Exception{
	Message:    "goal description is required",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidTargetDate = &Exception{
	Message:    "target date must look like 2006-01-02T15:04:05",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidStatus = &Exception{
	Message:    "unknown status value",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskIDRequired = &Exception{
	Message:    "task id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrDescriptionTooLong = &Exception{
	Message:    "goal description must be at most 500 characters",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidMaxTasksPerDay = &Exception{
	Message:    "maxTasksPerDay must be greater than 0",
	StatusCode: http.StatusBadRequest,
}
