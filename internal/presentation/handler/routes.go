package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"designermonk/internal/presentation"
)

type Handlers struct {
	Create *CreateHandler
	Update *UpdateHandler
	List   *ListHandler
	Get    *GetHandler
	Delete *DeleteHandler
}

// Register mounts the project routes. ingress runs only on the routes that
// accept an image.
func Register(e *echo.Echo, h Handlers, ingress echo.MiddlewareFunc) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	projects := e.Group("/projects")
	projects.GET("", h.List.HandleList)
	projects.POST("", h.Create.HandleCreate, ingress)
	projects.GET("/:"+presentation.IDParam, h.Get.HandleGet)
	projects.PUT("/:"+presentation.IDParam, h.Update.HandleUpdate, ingress)
	projects.DELETE("/:"+presentation.IDParam, h.Delete.HandleDelete)
}
