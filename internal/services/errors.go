package services

import "errors"

var (
	// ErrInvalidInput marks caller faults: empty transcripts or missing
	// identity fields. Not worth retrying.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEvaluationFailed marks a generative call that errored, timed out,
	// or produced output failing schema validation. Safe to retry with
	// backoff; the retry policy lives inside the gateway.
	ErrEvaluationFailed = errors.New("evaluation failed")
)
