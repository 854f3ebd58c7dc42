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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sort"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/l3montree-dev/cbomlens/middlewares"
)

type Server struct {
	Echo *echo.Echo
}

// NewServer builds the echo instance and ties its lifetime to the fx
// application. Routes are registered by the routers before OnStart runs.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}

			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				return routes[i].Path < routes[j].Path
			})
			for _, route := range routes {
				if route.Method != "echo_route_not_found" {
					slog.Info(route.Path, "method", route.Method)
				}
			}

			go func() {
				if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
					slog.Error("failed to start server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return Server{Echo: e}
}
