package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ValidationError{Msg: "no file selected"}, http.StatusBadRequest},
		{"not found", &NotFoundError{Resource: "paper", Key: "abc"}, http.StatusNotFound},
		{"extraction", &ExtractionError{Msg: "failed to parse PDF"}, http.StatusInternalServerError},
		{"persistence", &PersistenceError{Op: "insert", Err: errors.New("down")}, http.StatusInternalServerError},
		{"llm", &LLMCallError{Err: errors.New("quota")}, http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("lookup: %w", &NotFoundError{Resource: "blob", Key: "p"}), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusForError(tt.err))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &PersistenceError{Op: "insert paper", Err: cause}
	assert.ErrorIs(t, err, cause)

	extractionCause := errors.New("unexpected EOF")
	var ee *ExtractionError
	wrapped := fmt.Errorf("ingest: %w", &ExtractionError{Msg: "bad pdf", Err: extractionCause})
	assert.True(t, errors.As(wrapped, &ee))
	assert.ErrorIs(t, ee, extractionCause)
}
