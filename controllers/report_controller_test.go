package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/dtos"
	"github.com/l3montree-dev/qualitygate/mocks"
	"github.com/l3montree-dev/qualitygate/normalize"
	"github.com/l3montree-dev/qualitygate/services"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportContext(body string) (shared.Context, *httptest.ResponseRecorder, models.Project) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/report/", bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	project := models.Project{Name: "api"}
	project.ID = uuid.New()
	shared.SetProject(ctx, project)
	return ctx, rec, project
}

func TestReportControllerCreate(t *testing.T) {
	t.Run("should respond with the ingestion result and dispatch the effects afterwards", func(t *testing.T) {
		scanService := mocks.NewScanService(t)
		dispatcher := mocks.NewEffectDispatcher(t)
		controller := NewReportController(scanService, dispatcher, config.Config{})

		ctx, rec, project := newReportContext(`{"findings":[]}`)
		scanID := uuid.New()
		effects := []shared.Effect{{Channel: services.ChannelSlack}}

		scanService.On("Ingest", mock.Anything, project, []byte(`{"findings":[]}`)).Return(shared.IngestResult{
			Response: dtos.ScanResponse{Success: true, ScanID: scanID, ScanIDSnake: scanID},
			Effects:  effects,
		}, nil)
		dispatcher.On("Dispatch", mock.MatchedBy(func(e []shared.Effect) bool {
			return len(e) == 1 && e[0].Channel == services.ChannelSlack
		})).Return()

		require.NoError(t, controller.Create(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, scanID.String(), body["scan_id"])
	})

	t.Run("should map an invalid report to 400", func(t *testing.T) {
		scanService := mocks.NewScanService(t)
		controller := NewReportController(scanService, mocks.NewEffectDispatcher(t), config.Config{})
		ctx, _, _ := newReportContext(`[]`)

		scanService.On("Ingest", mock.Anything, mock.Anything, mock.Anything).Return(shared.IngestResult{}, normalize.ErrInvalidReport)

		err := controller.Create(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("should reject forced reports of strict projects with 403", func(t *testing.T) {
		scanService := mocks.NewScanService(t)
		controller := NewReportController(scanService, mocks.NewEffectDispatcher(t), config.Config{})
		ctx, _, _ := newReportContext(`{"is_forced":true}`)

		scanService.On("Ingest", mock.Anything, mock.Anything, mock.Anything).Return(shared.IngestResult{}, services.ErrStrictMode)

		err := controller.Create(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusForbidden, he.Code)
		msg := he.Message.(echo.Map)
		assert.Equal(t, false, msg["success"])
		assert.Contains(t, msg["error"], "STRICT MODE ENABLED")
	})

	t.Run("should reject sarif on plans without sarif import", func(t *testing.T) {
		scanService := mocks.NewScanService(t)
		controller := NewReportController(scanService, mocks.NewEffectDispatcher(t), config.Config{})
		ctx, _, _ := newReportContext(`{"runs":[]}`)

		scanService.On("Ingest", mock.Anything, mock.Anything, mock.Anything).Return(shared.IngestResult{}, services.ErrSarifNotEnabled)

		err := controller.Create(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusForbidden, he.Code)
		assert.Equal(t, "SARIF_NOT_ENABLED", he.Message.(echo.Map)["code"])
	})

	t.Run("should only expose error details outside production", func(t *testing.T) {
		scanService := mocks.NewScanService(t)
		scanService.On("Ingest", mock.Anything, mock.Anything, mock.Anything).Return(shared.IngestResult{}, errors.New("connection refused"))

		dev := NewReportController(scanService, mocks.NewEffectDispatcher(t), config.Config{Environment: "dev"})
		ctx, _, _ := newReportContext(`{}`)
		var he *echo.HTTPError
		require.ErrorAs(t, dev.Create(ctx), &he)
		assert.Equal(t, http.StatusInternalServerError, he.Code)
		assert.Equal(t, "connection refused", he.Message.(echo.Map)["details"])

		prod := NewReportController(scanService, mocks.NewEffectDispatcher(t), config.Config{Environment: config.EnvironmentProduction})
		ctx, _, _ = newReportContext(`{}`)
		require.ErrorAs(t, prod.Create(ctx), &he)
		assert.NotContains(t, he.Message.(echo.Map), "details")
	})
}
