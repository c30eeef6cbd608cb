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

package middlewares

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/qualitygate/monitoring"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// StoreConfigGuard rejects every request while database settings are missing.
// It runs before authentication.
func StoreConfigGuard(missing map[string]bool) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if len(missing) == 0 {
				return next(ctx)
			}
			return echo.NewHTTPError(http.StatusInternalServerError, echo.Map{
				"error":   "server misconfiguration: database settings are missing",
				"missing": missing,
			})
		}
	}
}

// ContentLengthGuard fails fast on a declared body size above maxBytes. Bodies without a
// declared length are capped while reading.
func ContentLengthGuard(maxBytes int64) []shared.MiddlewareFunc {
	return []shared.MiddlewareFunc{
		func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				if ctx.Request().ContentLength > maxBytes {
					monitoring.ReportsRejected.WithLabelValues("PAYLOAD_TOO_LARGE").Inc()
					return echo.NewHTTPError(http.StatusRequestEntityTooLarge, echo.Map{
						"error":     "payload too large",
						"max_bytes": maxBytes,
					})
				}
				return next(ctx)
			}
		},
		middleware.BodyLimit(fmt.Sprintf("%dB", maxBytes)),
	}
}

// APIKeyAuth resolves the project of the bearer token.
func APIKeyAuth(projectRepository shared.ProjectRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			token, ok := shared.GetBearerToken(ctx)
			if !ok {
				monitoring.ReportsRejected.WithLabelValues("NO_TOKEN").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
					"success": false,
					"error":   "missing or malformed bearer token",
					"code":    "NO_TOKEN",
				})
			}

			project, err := projectRepository.FindByAPIKey(token)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					monitoring.ReportsRejected.WithLabelValues("INVALID_TOKEN").Inc()
					return echo.NewHTTPError(http.StatusForbidden, echo.Map{
						"success": false,
						"error":   "invalid api key",
						"code":    "INVALID_TOKEN",
					})
				}
				slog.Error("could not resolve api key", "err", err)
				return echo.NewHTTPError(http.StatusInternalServerError, "could not resolve api key").WithInternal(err)
			}

			shared.SetProject(ctx, project)
			return next(ctx)
		}
	}
}
