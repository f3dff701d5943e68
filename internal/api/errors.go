package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"purenote-backend-go/internal/core"
)

// respondError maps a domain error to its HTTP status and writes the uniform
// error body. This is the single place where the error taxonomy meets HTTP:
// handlers and services never pick status codes themselves.
//
// Unauthenticated -> 401, Forbidden -> 403, NotFound -> 404,
// InvalidInput -> 400, everything else (storage, payment provider,
// misconfiguration) -> 500 with the internal detail suppressed in release mode.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, core.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	resp := ErrorResponse{}
	if status < http.StatusInternalServerError {
		resp.Error = err.Error()
	} else {
		resp.Error = "Internal server error"
		if gin.Mode() != gin.ReleaseMode {
			resp.Details = err.Error()
		}
	}

	c.JSON(status, resp)
}

// errInvalidBody is returned for malformed JSON request bodies. The binding
// error itself is not echoed back to the client.
var errInvalidBody = fmt.Errorf("%w: invalid request body", core.ErrInvalidInput)
