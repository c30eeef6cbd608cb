package commands

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/google/uuid"
	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/services"
	"github.com/stretchr/testify/assert"
)

func TestRetentionTable(t *testing.T) {
	newTable := func() *retentionTable {
		return newRetentionTable(spinner.New(spinner.CharSets[11], 100*time.Millisecond), true)
	}
	project := func(name string) models.Project {
		p := models.Project{Name: name}
		p.ID = uuid.New()
		return p
	}

	t.Run("should only list projects which were trimmed or failed", func(t *testing.T) {
		r := newTable()
		r.Start(3)
		r.Trimmed(services.ProjectRetention{Project: project("api"), Limit: 10, Deleted: 4})
		r.Trimmed(services.ProjectRetention{Project: project("web"), Limit: 10})
		r.Trimmed(services.ProjectRetention{Project: project("cli"), Limit: 200, Err: errors.New("boom")})

		var out bytes.Buffer
		r.render(&out)

		assert.Len(t, r.rows, 2)
		assert.Equal(t, int64(4), r.total)
		assert.Contains(t, out.String(), "api")
		assert.Contains(t, out.String(), "cli")
		assert.NotContains(t, out.String(), "web")
	})

	t.Run("should say so if nothing had to be trimmed", func(t *testing.T) {
		r := newTable()
		r.Start(1)
		r.Trimmed(services.ProjectRetention{Project: project("api"), Limit: 10})

		var out bytes.Buffer
		r.render(&out)
		assert.Equal(t, "no project exceeded its scan limit\n", out.String())
	})
}
