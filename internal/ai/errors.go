package ai

import (
	"errors"

	"google.golang.org/genai"
)

type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindClient        ErrorKind = "client"
	KindServer        ErrorKind = "server"
	KindTransport     ErrorKind = "transport"
)

// Classify sorts an error from GenerateContent. Configuration errors mean no
// call was attempted; the others mean the call was made and failed.
func Classify(err error) ErrorKind {
	if errors.Is(err, ErrMissingAPIKey) {
		return KindConfiguration
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code >= 400 && apiErr.Code < 500:
			return KindClient
		case apiErr.Code >= 500:
			return KindServer
		}
	}

	return KindTransport
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}
