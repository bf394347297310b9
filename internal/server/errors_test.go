package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/extraction"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "fileName", Message: msgNoFileName}
	assert.Equal(t, "validation error: fileName - No file name provided", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrFileNotFound(t *testing.T) {
	err := &ErrFileNotFound{Name: "resume.pdf"}
	assert.Equal(t, "file not found: resume.pdf", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expected        int
		expectedMessage string
	}{
		{
			name:            "ErrValidation",
			err:             &ErrValidation{Field: "resume", Message: msgNoFileSelected},
			expected:        http.StatusBadRequest,
			expectedMessage: msgNoFileSelected,
		},
		{
			name:            "ErrFileNotFound",
			err:             &ErrFileNotFound{Name: "a.pdf"},
			expected:        http.StatusNotFound,
			expectedMessage: msgFileNotFound,
		},
		{
			name:            "UnsupportedTypeError",
			err:             &extraction.UnsupportedTypeError{Path: "a.txt", MIME: "text/plain"},
			expected:        http.StatusBadRequest,
			expectedMessage: msgCouldNotExtract,
		},
		{
			name:            "wrapped ExtractionError",
			err:             fmt.Errorf("analyze: %w", &extraction.ExtractionError{Path: "a.pdf", Cause: errors.New("EOF")}),
			expected:        http.StatusBadRequest,
			expectedMessage: msgCouldNotExtract,
		},
		{
			name:            "Unknown error",
			err:             assert.AnError,
			expected:        http.StatusInternalServerError,
			expectedMessage: msgInternalError,
		},
		{
			name:            "Nil error",
			err:             nil,
			expected:        http.StatusInternalServerError,
			expectedMessage: msgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
			assert.Equal(t, tt.expectedMessage, errorMessage(tt.err))
		})
	}
}
