package middlewares

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/l3montree-dev/qualitygate/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func registerMiddlewares(e *echo.Echo, allowOrigins []string) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins: allowOrigins,
			AllowHeaders: append(middleware.DefaultCORSConfig.AllowHeaders, echo.HeaderAuthorization),
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		},
	))

	e.Use(logger())

	e.Use(recovermiddleware())

	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)

		if ctx.Response().Committed {
			return
		}

		he, ok := err.(*echo.HTTPError)
		if ok {
			if he.Internal != nil {
				if herr, ok := he.Internal.(*echo.HTTPError); ok {
					he = herr
				}
			}
		} else {
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		message := he.Message
		switch m := he.Message.(type) {
		case string:
			if e.Debug {
				message = echo.Map{"error": m, "details": err.Error()}
			} else {
				message = echo.Map{"error": m}
			}
		case json.Marshaler:
			// do nothing - this type knows how to format itself to JSON
		case error:
			message = echo.Map{"error": m.Error()}
		}

		if ctx.Request().Method == http.MethodHead {
			if err := ctx.NoContent(he.Code); err != nil {
				slog.Error("could not send error response", "error", err)
			}
			return
		}
		if err := ctx.JSON(he.Code, message); err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

// Server creates the echo instance with the global middlewares. Debug mode adds error details
// to 500 responses and is enabled outside production.
func Server(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = !cfg.IsProduction()
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg.CORSAllowOrigins)
	return e
}
