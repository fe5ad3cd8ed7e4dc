package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"designermonk/internal/application/usecase/abstraction"
	"designermonk/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
	render *presentation.Renderer
}

func NewGetHandler(getter abstraction.Getter, render *presentation.Renderer) *GetHandler {
	return &GetHandler{
		getter: getter,
		render: render,
	}
}

// HandleGet handles GET /projects/:id.
func (h *GetHandler) HandleGet(c echo.Context) error {
	project, err := h.getter.GetProject(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return h.render.Error(c, err)
	}

	return h.render.Project(c, http.StatusOK, project)
}
