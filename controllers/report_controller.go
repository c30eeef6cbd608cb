// Copyright (C) 2026 l3montree GmbH
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
	"io"
	"net/http"

	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/normalize"
	"github.com/l3montree-dev/qualitygate/services"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/labstack/echo/v4"
)

type ReportController struct {
	scanService      shared.ScanService
	effectDispatcher shared.EffectDispatcher
	production       bool
}

func NewReportController(scanService shared.ScanService, effectDispatcher shared.EffectDispatcher, cfg config.Config) *ReportController {
	return &ReportController{
		scanService:      scanService,
		effectDispatcher: effectDispatcher,
		production:       cfg.IsProduction(),
	}
}

// Create ingests one scan report of the authenticated project. The response is fully determined
// before any notification or check run is dispatched.
func (c *ReportController) Create(ctx shared.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			// body limit exceeded
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, "could not read request body").WithInternal(err)
	}

	project := shared.GetProject(ctx)
	result, err := c.scanService.Ingest(ctx.Request().Context(), project, body)
	if err != nil {
		return c.mapIngestError(err)
	}

	c.effectDispatcher.Dispatch(result.Effects)
	return ctx.JSON(http.StatusOK, result.Response)
}

func (c *ReportController) mapIngestError(err error) error {
	switch {
	case errors.Is(err, normalize.ErrInvalidReport):
		return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
			"code":    "INVALID_REPORT",
		}).WithInternal(err)
	case errors.Is(err, services.ErrStrictMode):
		return echo.NewHTTPError(http.StatusForbidden, echo.Map{
			"success": false,
			"error":   services.ErrStrictMode.Error(),
		})
	case errors.Is(err, services.ErrSarifNotEnabled):
		return echo.NewHTTPError(http.StatusForbidden, echo.Map{
			"success": false,
			"error":   services.ErrSarifNotEnabled.Error(),
			"code":    "SARIF_NOT_ENABLED",
		})
	}

	body := echo.Map{"error": "could not process report"}
	if !c.production {
		body["details"] = err.Error()
	}
	return echo.NewHTTPError(http.StatusInternalServerError, body).WithInternal(err)
}
