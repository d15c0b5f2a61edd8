package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_HTTPCodes(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeSequenceViolation, http.StatusConflict},
		{ErrCodePodcastExists, http.StatusConflict},
		{ErrCodeGenerationBusy, http.StatusConflict},
		{ErrCodeRecordAbsent, http.StatusNotFound},
		{ErrCodeGenerationFailed, http.StatusBadGateway},
		{ErrCodeRenderFailed, http.StatusBadGateway},
		{ErrCodeInvalidInput, http.StatusBadRequest},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New(tt.code, "test")
			assert.Equal(t, tt.want, err.GetHTTPCode())
		})
	}
}

func TestSequenceViolation(t *testing.T) {
	err := SequenceViolation(4, 3)
	assert.True(t, Is(err, ErrCodeSequenceViolation))
	assert.Equal(t, 4, err.Details["requested_index"])
	assert.Equal(t, 3, err.Details["expected_index"])
	assert.Contains(t, err.Error(), "episode 4 requested")
}

func TestWrap_Unwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := GenerationFailed("lineup", cause)

	assert.True(t, Is(err, ErrCodeGenerationFailed))
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetCode(stderrors.New("boom")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(stderrors.New("boom")))
}
