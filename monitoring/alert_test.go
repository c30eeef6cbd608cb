package monitoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlert(t *testing.T) {
	t.Run("should not panic without error tracking", func(t *testing.T) {
		assert.NoError(t, InitErrorTracking("", "test", "dev"))
		assert.NotPanics(t, func() {
			Alert("something failed", errors.New("boom"))
			Alert("something failed without error", nil)
			RecoverAndAlert("recovered", "panic value")
		})
	})
}
