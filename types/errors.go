package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError means the caller input is malformed (empty filename,
// missing question). Maps to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// ExtractionError means PDF parsing failed or the model returned a metadata
// response that is not valid JSON or is missing required fields.
type ExtractionError struct {
	Msg string
	// Raw keeps the model response for diagnosis when the failure came
	// from decoding.
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// NotFoundError means the requested record or blob does not exist. Maps
// to 404.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// PersistenceError wraps store connectivity or constraint failures.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// LLMCallError wraps provider-side failures: transport errors, quota
// exhaustion, empty responses.
type LLMCallError struct {
	Err error
}

func (e *LLMCallError) Error() string { return fmt.Sprintf("ai call failed: %v", e.Err) }

func (e *LLMCallError) Unwrap() error { return e.Err }

// StatusForError maps the error taxonomy to an HTTP status. Everything
// that is not a caller mistake or a missing record is a 500.
func StatusForError(err error) int {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var nfe *NotFoundError
	if errors.As(err, &nfe) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
