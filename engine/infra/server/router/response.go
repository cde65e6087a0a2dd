package router

import (
	"fmt"
	"net/http"

	"github.com/campusdir/campusdir/engine/infra/server/appstate"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the error envelope. Successful responses carry the bare record
// or array so existing clients keep working; only failures get wrapped.
type Response struct {
	Status int        `json:"status"`
	Error  *ErrorInfo `json:"error"`
}

// RespondOK writes the payload with a 200 status.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// RespondCreated writes the payload with a 201 status.
func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// RespondWithError writes the error envelope and aborts the request.
func RespondWithError(c *gin.Context, status int, reqErr *RequestError) {
	c.JSON(status, Response{Status: status, Error: reqErr.GetErrorInfo()})
	c.Abort()
}

// GetAppState returns the app state attached to the request, responding with
// an internal error and nil when the middleware did not run.
func GetAppState(c *gin.Context) *appstate.State {
	state, err := appstate.GetState(c.Request.Context())
	if err != nil {
		RespondWithError(c, http.StatusInternalServerError,
			NewRequestError(http.StatusInternalServerError, ErrMsgAppStateNotInitialized, err))
		return nil
	}
	return state
}

// GetIDParam parses the identifier path segment, responding with a 400 and
// reporting false on a malformed value. The zero UUID parses fine and is a
// valid identifier, so failure is signaled out of band.
func GetIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondWithError(c, http.StatusBadRequest,
			NewRequestError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name), err))
		return uuid.Nil, false
	}
	return id, true
}

// QueryValue returns the raw query parameter when the key is present and nil
// otherwise, so an empty value still acts as a filter while an absent key
// imposes no constraint.
func QueryValue(c *gin.Context, name string) *string {
	if v, ok := c.GetQuery(name); ok {
		return &v
	}
	return nil
}
