package httperr

import (
	"log/slog"
	"net/http"

	"coach-booking-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status, Message: msg, Detail: detail}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// classStatus is checked in order; the first matching class wins.
var classStatus = []struct {
	class  error
	status int
}{
	{errs.ErrValidation, http.StatusBadRequest},
	{errs.ErrForbidden, http.StatusForbidden},
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrNotEligible, http.StatusForbidden},
	{errs.ErrDuplicateReview, http.StatusBadRequest},
	{errs.ErrInvalidTransition, http.StatusConflict},
}

// StatusOf maps an error to its HTTP status. Unclassified errors are 500.
func StatusOf(err error) int {
	for _, cs := range classStatus {
		if errs.Is(err, cs.class) {
			return cs.status
		}
	}
	return http.StatusInternalServerError
}

// FromError aborts with the status of err's class. Server errors hide the
// cause from the client and log it with its stack instead.
func FromError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.Error("unhandled error",
			"path", c.Request.URL.Path,
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, status, err, internalMessage, nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), nil)
}
