package handler

import (
	"errors"
	"net/http"
	"portfolio-api/common"
	"portfolio-api/service"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

// mapServiceError translates service-layer sentinel errors into AppErrors.
// Unrecognized errors are reported as storage failures.
func mapServiceError(err error) *common.AppError {
	switch {
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
		return common.NewConflictError(err.Error(), nil)
	case errors.Is(err, service.ErrInvalidUsername), errors.Is(err, service.ErrInvalidPassword):
		return common.NewAuthenticationError(err.Error(), nil)
	case errors.Is(err, service.ErrInvalidToken):
		return common.NewAuthenticationError("Unauthorized", nil)
	case errors.Is(err, service.ErrPhotoNotFound):
		return common.NewAppError(http.StatusNotFound, "Photo not found", nil)
	default:
		return common.NewStorageError("Internal server error", err)
	}
}
