package api

import (
	"errors"
	"net/http"

	"github.com/YUKIMIKAMI/diary-app/internal/api/shared"
)

// decodeAndValidate reads the JSON body into req and validates it. On failure
// it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, allowEmpty bool) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		if allowEmpty && errors.Is(err, shared.ErrEmptyBody) {
			return true
		}
		status := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err)
		if status == http.StatusInternalServerError {
			// Anything the decoder rejects is the client's fault.
			status = http.StatusBadRequest
			message = "Invalid request format"
		}
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}
