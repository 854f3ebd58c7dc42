// Copyright (C) 2024 Tim Bastin, l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/cbomlens/controllers"
)

type InventoryRouter struct {
	*echo.Group
}

func NewInventoryRouter(
	apiV1Router APIV1Router,
	cbomController *controllers.CBOMController,
) InventoryRouter {
	apiV1Router.POST("/cbom/", cbomController.Upload)
	apiV1Router.GET("/cbom/", cbomController.Info)

	apiV1Router.GET("/statistics/", cbomController.Statistics)
	apiV1Router.GET("/dependency-graph/", cbomController.DependencyGraph)

	componentsRouter := apiV1Router.Group.Group("/components")
	componentsRouter.GET("/", cbomController.ListComponents)
	componentsRouter.GET("/:ref/", cbomController.ReadComponent)

	return InventoryRouter{Group: componentsRouter}
}
