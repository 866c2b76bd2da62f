// internal/httputils/response.go

// Package httputils provides JSON response helpers for the HTTP API.
package httputils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/d4ckard/shuttle/internal/logging"
)

// ErrorCode identifies the class of an API error.
type ErrorCode string

const (
	// CodeParseError indicates the request body was not valid JSON.
	CodeParseError ErrorCode = "parse_error"

	// CodeInvalidRequest indicates the request body did not match the API schema.
	CodeInvalidRequest ErrorCode = "invalid_request"

	// CodeNotFound indicates an unknown route.
	CodeNotFound ErrorCode = "not_found"

	// CodeMethodNotAllowed indicates the route exists but not for this HTTP method.
	CodeMethodNotAllowed ErrorCode = "method_not_allowed"

	// CodeInternalError indicates a server-side failure.
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON envelope for API errors.
type ErrorResponse struct {
	Error ErrorObject `json:"error"`
}

// ErrorObject carries the error code and a human-readable message.
type ErrorObject struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// WriteJSONResponse writes data as a JSON response with the given status.
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		wrappedErr := errors.Wrap(err, "failed to encode JSON response")
		logging.GetLogger("httputils").Error("Failed to write response.",
			"error", wrappedErr, "dataType", fmt.Sprintf("%T", data))
	}
}

// WriteErrorResponse writes a JSON error envelope with the HTTP status
// derived from the error code.
func WriteErrorResponse(w http.ResponseWriter, code ErrorCode, message string, data interface{}) {
	errResp := ErrorResponse{
		Error: ErrorObject{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusFromErrorCode(code))

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logging.GetLogger("httputils").Error("Failed to write error response.",
			"error", errors.Wrap(err, "failed to encode error response"),
			"originalCode", string(code),
			"originalMessage", message)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// httpStatusFromErrorCode maps API error codes to HTTP status codes.
func httpStatusFromErrorCode(code ErrorCode) int {
	switch code {
	case CodeParseError, CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
