package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/l3montree-dev/qualitygate/monitoring"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/l3montree-dev/qualitygate/utils"
	"golang.org/x/time/rate"
)

const effectTimeout = 30 * time.Second

type effectDispatcher struct {
	synchronizer utils.FireAndForgetSynchronizer
	// shared by all channels
	limiter *rate.Limiter
}

func NewEffectDispatcher(synchronizer utils.FireAndForgetSynchronizer) *effectDispatcher {
	return newEffectDispatcher(synchronizer, rate.NewLimiter(rate.Every(100*time.Millisecond), 5))
}

func newEffectDispatcher(synchronizer utils.FireAndForgetSynchronizer, limiter *rate.Limiter) *effectDispatcher {
	return &effectDispatcher{synchronizer: synchronizer, limiter: limiter}
}

// Dispatch runs every effect at most once. Failures are logged and counted, never returned.
func (d *effectDispatcher) Dispatch(effects []shared.Effect) {
	for _, effect := range effects {
		d.synchronizer.FireAndForget(func() {
			ctx, cancel := context.WithTimeout(context.Background(), effectTimeout)
			defer cancel()

			monitoring.EffectsDispatched.WithLabelValues(effect.Channel).Inc()
			if err := d.limiter.Wait(ctx); err != nil {
				monitoring.EffectsFailed.WithLabelValues(effect.Channel).Inc()
				slog.Warn("side effect dropped by rate limit", "channel", effect.Channel, "err", err)
				return
			}
			if err := effect.Run(ctx); err != nil {
				monitoring.EffectsFailed.WithLabelValues(effect.Channel).Inc()
				slog.Warn("side effect failed", "channel", effect.Channel, "err", err)
			}
		})
	}
}
