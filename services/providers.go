package services

import (
	"net/http"
	"time"

	"github.com/l3montree-dev/qualitygate/shared"
	"go.uber.org/fx"
)

var outgoingConnectionClient = &http.Client{Timeout: 10 * time.Second}

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(func() *http.Client {
		return outgoingConnectionClient
	}),
	fx.Provide(fx.Annotate(NewBaselineService, fx.As(new(shared.BaselineService)))),
	fx.Provide(fx.Annotate(NewIssueGroupService, fx.As(new(shared.IssueGroupService)))),
	fx.Provide(fx.Annotate(NewRetentionService, fx.As(new(shared.RetentionService)))),
	fx.Provide(fx.Annotate(NewNotificationService, fx.As(new(shared.NotificationRouter)))),
	fx.Provide(fx.Annotate(NewEffectDispatcher, fx.As(new(shared.EffectDispatcher)))),
	fx.Provide(fx.Annotate(NewScanService, fx.As(new(shared.ScanService)))),
)
