package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/l3montree-dev/qualitygate/utils"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestEffectDispatcher(t *testing.T) {
	t.Run("should run every effect even if one fails", func(t *testing.T) {
		var ran []string
		dispatcher := NewEffectDispatcher(utils.NewSyncFireAndForgetSynchronizer())
		dispatcher.Dispatch([]shared.Effect{
			{Channel: ChannelSlack, Run: func(ctx context.Context) error { ran = append(ran, ChannelSlack); return errors.New("boom") }},
			{Channel: ChannelDiscord, Run: func(ctx context.Context) error { ran = append(ran, ChannelDiscord); return nil }},
		})
		assert.Equal(t, []string{ChannelSlack, ChannelDiscord}, ran)
	})

	t.Run("should give every effect a deadline", func(t *testing.T) {
		var deadline time.Time
		dispatcher := NewEffectDispatcher(utils.NewSyncFireAndForgetSynchronizer())
		dispatcher.Dispatch([]shared.Effect{{Channel: ChannelCheckRun, Run: func(ctx context.Context) error {
			deadline, _ = ctx.Deadline()
			return nil
		}}})
		assert.WithinDuration(t, time.Now().Add(effectTimeout), deadline, 5*time.Second)
	})

	t.Run("should drop effects the rate limiter cannot admit before the deadline", func(t *testing.T) {
		ran := false
		dispatcher := newEffectDispatcher(utils.NewSyncFireAndForgetSynchronizer(), rate.NewLimiter(rate.Every(time.Hour), 1))
		dispatcher.Dispatch([]shared.Effect{
			{Channel: ChannelSlack, Run: func(ctx context.Context) error { return nil }},
			{Channel: ChannelDiscord, Run: func(ctx context.Context) error { ran = true; return nil }},
		})
		assert.False(t, ran)
	})
}
