package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ascforge/internal/domain"
)

// APIResponse is the standard envelope for all JSON responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error
// codes. The message carries the error verbatim for the schema and cell
// cases so the host can display exactly what is wrong with the upload.
func MapDomainError(err error) (status int, code, msg string) {
	var schemaErr *domain.SchemaError
	var cellErr *domain.CellError
	switch {
	case errors.As(err, &schemaErr):
		return http.StatusBadRequest, "INVALID_SCHEMA", schemaErr.Error()
	case errors.As(err, &cellErr):
		return http.StatusUnprocessableEntity, "INVALID_CELL", err.Error()
	case errors.Is(err, domain.ErrBrandUnknown):
		return http.StatusBadRequest, "UNKNOWN_BRAND", "unknown brand"
	case errors.Is(err, domain.ErrEmptyDataset):
		return http.StatusBadRequest, "EMPTY_DATASET", "dataset contains no rows"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: xlsx"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrReadFailed):
		return http.StatusBadRequest, "READ_FAILED", "could not read workbook"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}
}

// HandleError logs the error and writes the mapped response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	RespondError(c, status, code, msg)
}
