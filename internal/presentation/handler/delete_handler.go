package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"designermonk/internal/application/usecase/abstraction"
	"designermonk/internal/domain/dto"
	"designermonk/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
	render  *presentation.Renderer
}

func NewDeleteHandler(deleter abstraction.Deleter, render *presentation.Renderer) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
		render:  render,
	}
}

// HandleDelete handles DELETE /projects/:id.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	if err := h.deleter.DeleteProject(c.Request().Context(), c.Param(presentation.IDParam)); err != nil {
		return h.render.Error(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted"})
}
