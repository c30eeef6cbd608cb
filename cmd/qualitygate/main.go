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

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/controllers"
	"github.com/l3montree-dev/qualitygate/database"
	"github.com/l3montree-dev/qualitygate/database/repositories"
	"github.com/l3montree-dev/qualitygate/integrations/githubint"
	"github.com/l3montree-dev/qualitygate/middlewares"
	"github.com/l3montree-dev/qualitygate/monitoring"
	"github.com/l3montree-dev/qualitygate/router"
	"github.com/l3montree-dev/qualitygate/services"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

func main() {
	cfg := config.Load()
	shared.InitLogger(shared.ParseLogLevel(cfg.LogLevel, cfg.IsProduction()))

	if cfg.ErrorTrackingDSN != "" {
		if err := monitoring.InitErrorTracking(cfg.ErrorTrackingDSN, cfg.Environment, config.Version); err != nil {
			slog.Error("could not init error tracking", "err", err)
		}
		defer monitoring.FlushErrorTracking()
		defer func() {
			if r := recover(); r != nil {
				monitoring.RecoverAndAlert("panic in main", r)
				panic(r)
			}
		}()
	}

	if missing := cfg.MissingStoreSettings(); len(missing) > 0 {
		slog.Error("database settings are missing, starting in degraded mode", "missing", missing)
		runDegraded(cfg, missing)
		return
	}

	db, pool, err := database.Connect(context.Background(), database.PoolConfigFromConfig(cfg))
	if err != nil {
		slog.Error(err.Error()) // print detailed error message to stdout
		panic(errors.New("Failed to setup database connection"))
	}

	if !cfg.DisableAutoMigrate {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	synchronizer := utils.NewFireAndForgetSynchronizer()

	fx.New(
		fx.Supply(cfg),
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(func() utils.FireAndForgetSynchronizer { return synchronizer }),
		fx.Provide(middlewares.Server),
		repositories.Module,
		services.Module,
		githubint.Module,
		controllers.ControllerModule,
		router.RouterModule,

		fx.Invoke(func(router.APIV1Router) {}),
		fx.Invoke(func(router.ReportRouter) {}),
		fx.Invoke(func(lc fx.Lifecycle, server *echo.Echo) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					go startServer(server, cfg.Port)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					err := server.Shutdown(ctx)
					// wait for notifications and check runs which are still in flight
					synchronizer.Wait()
					pool.Close()
					return err
				},
			})
		}),
	).Run()
}

func startServer(server *echo.Echo, port string) {
	slog.Info("starting server", "port", port, "version", config.Version)
	if err := server.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}

func runDegraded(cfg config.Config, missing map[string]bool) {
	server := middlewares.Server(cfg)
	router.RegisterDegradedRoutes(server, missing)
	go startServer(server, cfg.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("could not shut down server", "err", err)
	}
}
