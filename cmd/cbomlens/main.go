// Copyright (C) 2025 l3montree GmbH
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

package main

import (
	"go.uber.org/fx"

	"github.com/l3montree-dev/cbomlens/cmd/cbomlens/api"
	"github.com/l3montree-dev/cbomlens/controllers"
	"github.com/l3montree-dev/cbomlens/router"
	"github.com/l3montree-dev/cbomlens/services"
	"github.com/l3montree-dev/cbomlens/shared"
)

//	@title			cbomlens API
//	@version		v1
//	@description	Cryptography bill of materials analysis API

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	fx.New(
		fx.Provide(api.NewServer),
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(apiV1Router router.APIV1Router) {}),
		fx.Invoke(func(inventoryRouter router.InventoryRouter) {}),
		fx.Invoke(func(server api.Server) {}),
	).Run()
}
