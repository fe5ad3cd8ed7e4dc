package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"designermonk/internal/application/usecase/abstraction"
	"designermonk/internal/presentation"
)

type ListHandler struct {
	lister abstraction.Lister
	render *presentation.Renderer
}

func NewListHandler(lister abstraction.Lister, render *presentation.Renderer) *ListHandler {
	return &ListHandler{
		lister: lister,
		render: render,
	}
}

// HandleList handles GET /projects, newest first.
func (h *ListHandler) HandleList(c echo.Context) error {
	projects, err := h.lister.ListProjects(c.Request().Context())
	if err != nil {
		return h.render.Error(c, err)
	}

	return c.JSON(http.StatusOK, projects)
}
