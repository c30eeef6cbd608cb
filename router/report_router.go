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

package router

import (
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/controllers"
	"github.com/l3montree-dev/qualitygate/middlewares"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/labstack/echo/v4"
)

type ReportRouter struct {
	Routes []*echo.Route
}

// reportMiddlewares returns the chain in the order the checks must happen:
// store configuration, body size, authentication.
func reportMiddlewares(cfg config.Config, projectRepository shared.ProjectRepository) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{middlewares.StoreConfigGuard(cfg.MissingStoreSettings())}
	chain = append(chain, middlewares.ContentLengthGuard(cfg.MaxReportBytes)...)
	return append(chain, middlewares.APIKeyAuth(projectRepository))
}

func NewReportRouter(srv *echo.Echo, cfg config.Config, projectRepository shared.ProjectRepository, reportController *controllers.ReportController) ReportRouter {
	chain := reportMiddlewares(cfg, projectRepository)
	return ReportRouter{
		Routes: []*echo.Route{
			srv.POST("/report/", reportController.Create, chain...),
			srv.POST("/api/v1/report/", reportController.Create, chain...),
		},
	}
}
