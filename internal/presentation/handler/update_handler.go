package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"designermonk/internal/application/usecase/abstraction"
	"designermonk/internal/domain/dto"
	"designermonk/internal/presentation"
)

type UpdateHandler struct {
	updater abstraction.Updater
	render  *presentation.Renderer
}

func NewUpdateHandler(updater abstraction.Updater, render *presentation.Renderer) *UpdateHandler {
	return &UpdateHandler{
		updater: updater,
		render:  render,
	}
}

// HandleUpdate handles PUT /projects/:id with a multipart, JSON or
// urlencoded body. The image is optional.
func (h *UpdateHandler) HandleUpdate(c echo.Context) error {
	values, blob, err := requestForm(c)
	if err != nil {
		return h.render.Error(c, err)
	}

	input, err := dto.ParseProjectInput(values)
	if err != nil {
		blob.Release()

		return h.render.Error(c, err)
	}

	project, err := h.updater.Update(c.Request().Context(), presentation.RequestID(c),
		c.Param(presentation.IDParam), input, blob)
	if err != nil {
		return h.render.Error(c, err)
	}

	return h.render.Project(c, http.StatusOK, project)
}
