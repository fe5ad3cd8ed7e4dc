package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"designermonk/internal/application/usecase/abstraction"
	"designermonk/internal/domain/dto"
	"designermonk/internal/presentation"
)

type CreateHandler struct {
	creator abstraction.Creator
	render  *presentation.Renderer
}

func NewCreateHandler(creator abstraction.Creator, render *presentation.Renderer) *CreateHandler {
	return &CreateHandler{
		creator: creator,
		render:  render,
	}
}

// HandleCreate handles POST /projects.
func (h *CreateHandler) HandleCreate(c echo.Context) error {
	values, blob, err := requestForm(c)
	if err != nil {
		return h.render.Error(c, err)
	}

	input, err := dto.ParseProjectInput(values)
	if err != nil {
		blob.Release()

		return h.render.Error(c, err)
	}

	project, err := h.creator.Create(c.Request().Context(), presentation.RequestID(c), input, blob)
	if err != nil {
		return h.render.Error(c, err)
	}

	return h.render.Project(c, http.StatusCreated, project)
}
