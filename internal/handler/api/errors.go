package api

import (
	"errors"
	"net/http"

	"sdi-showcase/internal/handler/httperr"
	"sdi-showcase/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps use case errors onto HTTP statuses.
// Validation failures carry their cause as detail so a form can show it.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.IsValidation(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", rootMessage(err))
	case errs.IsNotFound(err):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
