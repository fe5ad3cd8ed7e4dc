package presentation

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"designermonk/internal/domain/apperror"
	"designermonk/internal/domain/dto"
	"designermonk/internal/domain/model"
	"designermonk/pkg/logger"
)

// Renderer writes projects and errors in the configured response shape:
// bare records and {error, code}, or the {success, ...} envelope.
type Renderer struct {
	envelope bool
}

func NewRenderer(envelope bool) *Renderer {
	return &Renderer{envelope: envelope}
}

func (r *Renderer) Project(c echo.Context, status int, project *model.Project) error {
	if r.envelope {
		return c.JSON(status, dto.ProjectEnvelope{Success: true, Project: project})
	}

	return c.JSON(status, project)
}

func (r *Renderer) Error(c echo.Context, err error) error {
	status, body := http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
		Code:  string(apperror.Internal),
	}

	var appErr *apperror.Error
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPStatus()
		body.Error = appErr.Message
		body.Code = string(appErr.Kind)
	case errors.As(err, &httpErr):
		status = httpErr.Code
		body.Error = http.StatusText(httpErr.Code)
		body.Code = httpKind(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			body.Error = msg
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "request_id", RequestID(c), "path", c.Path(), "err", err)
	}

	if r.envelope {
		success := false
		body.Success = &success
	}

	return c.JSON(status, body)
}

// HTTPErrorHandler renders errors that bypass the handlers, such as routing
// misses and the body limit, in the same shape.
func (r *Renderer) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if renderErr := r.Error(c, err); renderErr != nil {
		logger.Error("failed to render error", "err", renderErr)
	}
}

func httpKind(status int) string {
	switch status {
	case http.StatusNotFound:
		return string(apperror.NotFound)
	case http.StatusRequestEntityTooLarge:
		return string(apperror.FileTooLarge)
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return string(apperror.MalformedRequest)
	default:
		return http.StatusText(status)
	}
}

// RequestID returns the id assigned by echo's RequestID middleware, or a
// fresh one when the middleware is not installed.
func RequestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}

	id := uuid.NewString()
	c.Response().Header().Set(echo.HeaderXRequestID, id)

	return id
}
