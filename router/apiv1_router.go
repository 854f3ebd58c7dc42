package router

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/cbomlens/cmd/cbomlens/api"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	// the health route stays free of any document state
	apiV1Router.GET("/health/", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	return APIV1Router{Group: apiV1Router}
}
