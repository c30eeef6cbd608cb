package router

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/middlewares"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Branch    string `json:"branch"`
	BuildDate string `json:"buildDate"`
}

func NewAPIV1Router(srv *echo.Echo, pool *pgxpool.Pool) APIV1Router {
	srv.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	apiV1Router := srv.Group("/api/v1")
	apiV1Router.GET("/info/", func(ctx echo.Context) error {
		return ctx.JSON(200, BuildInfo{
			Version:   config.Version,
			Commit:    config.Commit,
			Branch:    config.Branch,
			BuildDate: config.BuildDate,
		})
	})
	apiV1Router.GET("/health/", func(ctx echo.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx.Request().Context(), 2*time.Second)
		defer cancel()

		if err := pool.Ping(pingCtx); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	})

	return APIV1Router{Group: apiV1Router}
}

// RegisterDegradedRoutes is used when the database settings are missing. Report submissions fail
// with the list of missing settings and the health check reports unhealthy.
func RegisterDegradedRoutes(srv *echo.Echo, missing map[string]bool) {
	unreachable := func(ctx echo.Context) error { return echo.ErrInternalServerError }
	srv.POST("/report/", unreachable, middlewares.StoreConfigGuard(missing))
	srv.POST("/api/v1/report/", unreachable, middlewares.StoreConfigGuard(missing))
	srv.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	srv.GET("/api/v1/health/", func(ctx echo.Context) error {
		return ctx.JSON(503, map[string]any{
			"status":  "unhealthy",
			"missing": missing,
		})
	})
}
