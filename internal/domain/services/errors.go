package services

import "errors"

var (
	// ErrInvocation is returned when the LLM call fails.
	ErrInvocation = errors.New("llm invocation failed")

	// ErrMalformedRequest is returned when a required input is empty.
	ErrMalformedRequest = errors.New("malformed request")
)
