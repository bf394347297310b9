// Package server provides the HTTP pages and JSON API of the resume builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/NiloferMubeen/Resume-Builder-app/internal/extraction"
)

// Client-facing messages
const (
	msgNoFileUploaded  = "No file uploaded"
	msgNoFileSelected  = "No file selected"
	msgUploadFailed    = "Upload failed"
	msgNoData          = "No data provided"
	msgNoFileName      = "No file name provided"
	msgFileNotFound    = "File not found on server"
	msgCouldNotExtract = "Could not extract text from file"
	msgInternalError   = "Internal server error"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrFileNotFound indicates the requested upload is not in the upload directory
type ErrFileNotFound struct {
	Name string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("file not found: %s", e.Name)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		notFoundErr    *ErrFileNotFound
		unsupportedErr *extraction.UnsupportedTypeError
		extractionErr  *extraction.ExtractionError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &unsupportedErr), errors.As(err, &extractionErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the message sent to the client for err. Anything
// unexpected collapses to a generic message.
func errorMessage(err error) string {
	var (
		validationErr  *ErrValidation
		notFoundErr    *ErrFileNotFound
		unsupportedErr *extraction.UnsupportedTypeError
		extractionErr  *extraction.ExtractionError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &notFoundErr):
		return msgFileNotFound
	case errors.As(err, &unsupportedErr), errors.As(err, &extractionErr):
		return msgCouldNotExtract
	default:
		return msgInternalError
	}
}
