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

package controllers

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/l3montree-dev/cbomlens/models"
	"github.com/l3montree-dev/cbomlens/normalize"
	"github.com/l3montree-dev/cbomlens/shared"
	"github.com/l3montree-dev/cbomlens/transformer"
)

type CBOMController struct {
	inventoryService shared.InventoryService
}

func NewCBOMController(inventoryService shared.InventoryService) *CBOMController {
	return &CBOMController{
		inventoryService: inventoryService,
	}
}

// Upload accepts a CycloneDX CBOM JSON document as the request body.
// A malformed document is rejected with 400 and leaves the previously
// loaded snapshot untouched.
func (c *CBOMController) Upload(ctx shared.Context) error {
	info, err := c.inventoryService.LoadDocument(ctx.Request().Body)
	ctx.Request().Body.Close() // nolint:errcheck

	if err != nil {
		var parseError *normalize.ParseError
		if errors.As(err, &parseError) {
			slog.Warn("rejected cbom upload", "err", err)
			return echo.NewHTTPError(400, "could not decode document as CycloneDX CBOM").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not load cbom document").WithInternal(err)
	}

	return ctx.JSON(200, info)
}

func (c *CBOMController) Info(ctx shared.Context) error {
	info, ok := c.inventoryService.Info()
	if !ok {
		return echo.NewHTTPError(404, "no cbom document loaded")
	}
	return ctx.JSON(200, info)
}

func (c *CBOMController) Statistics(ctx shared.Context) error {
	statistics, ok := c.inventoryService.Statistics()
	if !ok {
		return echo.NewHTTPError(404, "no cbom document loaded")
	}
	return ctx.JSON(200, transformer.StatisticsModelToDTO(statistics))
}

func (c *CBOMController) DependencyGraph(ctx shared.Context) error {
	graph, ok := c.inventoryService.DependencyGraph()
	if !ok {
		return echo.NewHTTPError(404, "no cbom document loaded")
	}
	return ctx.JSON(200, transformer.GraphModelToDTO(graph))
}

// ListComponents serves the classified cryptographic assets, optionally
// narrowed by the primitive query parameter. An empty result is a normal
// outcome, the empty list is served with 200.
func (c *CBOMController) ListComponents(ctx shared.Context) error {
	category := ctx.QueryParam("primitive")
	if category == "" {
		category = models.AllPrimitives
	}

	components := c.inventoryService.CryptoAssets(category)
	return ctx.JSON(200, transformer.ComponentModelsToDTOs(components))
}

// ReadComponent resolves one component by its bom-ref. A miss yields 404
// so the presentation layer can show an empty selection.
func (c *CBOMController) ReadComponent(ctx shared.Context) error {
	ref := ctx.Param("ref")

	node, ok := c.inventoryService.Lookup(ref)
	if !ok {
		return echo.NewHTTPError(404, "component not found")
	}

	return ctx.JSON(200, transformer.ComponentModelToDetailDTO(node.Element))
}
