package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/store"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates a domain error into its HTTP shape. The store's
// not-found sentinel maps to 404 before code classification so callers
// never see it as an internal error.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody{
			Code:    apperrors.ErrCodeGraphNotFound,
			Message: err.Error(),
		})
		return
	}

	code := apperrors.GetCode(err)
	writeJSON(w, statusFor(code), errorBody{
		Code:    code,
		Message: apperrors.UserMessage(err),
	})
}

// statusFor maps structured error codes to HTTP status codes.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidGraph,
		apperrors.ErrCodeInvalidEncoding,
		apperrors.ErrCodeInvalidSubset,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidPath,
		apperrors.ErrCodeSelfLoop,
		apperrors.ErrCodeMissingNodes,
		apperrors.ErrCodeMalformed:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeNodeNotFound,
		apperrors.ErrCodeGraphNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeNotLinear,
		apperrors.ErrCodeNotTree,
		apperrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
