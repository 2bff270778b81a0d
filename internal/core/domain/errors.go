package domain

import "errors"

// Domain errors represent pipeline failures.
// Only ErrEmptyInput is ever returned to callers of the mind map service;
// the others are absorbed by fallbacks and exist for logging and tests.
var (
	// ErrEmptyInput indicates the prompt is empty or whitespace only.
	ErrEmptyInput = errors.New("prompt cannot be empty")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConceptExtraction indicates no main concept could be derived.
	// Always recovered by the fallback chain.
	ErrConceptExtraction = errors.New("could not extract main concept")

	// ErrLLMUnavailable indicates the text-generation collaborator is not
	// configured or failed to answer.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrCollaboratorUnavailable is the pipeline-level name for a failed
	// collaborator call.
	ErrCollaboratorUnavailable = ErrLLMUnavailable

	// ErrMalformedReply indicates a collaborator reply did not match the
	// expected shape.
	ErrMalformedReply = errors.New("malformed collaborator reply")

	// ErrRateLimited indicates the collaborator rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
