package services

import (
	"context"
	"errors"
	"testing"

	"github.com/l3montree-dev/qualitygate/database/models"
	"github.com/l3montree-dev/qualitygate/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRetention(t *testing.T) {
	t.Run("should delete exactly the scans above the limit", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		project := newProject("free")
		scanRepository.On("CountByProject", mock.Anything, project.ID).Return(int64(15), nil)
		scanRepository.On("DeleteOldest", mock.Anything, project.ID, 5).Return(int64(5), nil)

		deleted, err := NewRetentionService(scanRepository, mocks.NewProjectRepository(t)).Trim(project, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(5), deleted)
	})

	t.Run("should not delete anything at or below the limit", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		project := newProject("free")
		scanRepository.On("CountByProject", mock.Anything, project.ID).Return(int64(10), nil)

		deleted, err := NewRetentionService(scanRepository, mocks.NewProjectRepository(t)).Trim(project, 10)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("should treat a non positive limit as unlimited", func(t *testing.T) {
		deleted, err := NewRetentionService(mocks.NewScanRepository(t), mocks.NewProjectRepository(t)).Trim(newProject("free"), 0)
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("should trim every project to its plan limit and keep going on errors", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		projectRepository := mocks.NewProjectRepository(t)
		free := newProject("free")
		pro := newProject("pro")
		broken := newProject("enterprise")
		projectRepository.On("AllWithOrganization").Return([]models.Project{free, broken, pro}, nil)

		scanRepository.On("CountByProject", mock.Anything, free.ID).Return(int64(12), nil)
		scanRepository.On("DeleteOldest", mock.Anything, free.ID, 2).Return(int64(2), nil)
		scanRepository.On("CountByProject", mock.Anything, broken.ID).Return(int64(0), errors.New("boom"))
		scanRepository.On("CountByProject", mock.Anything, pro.ID).Return(int64(201), nil)
		scanRepository.On("DeleteOldest", mock.Anything, pro.ID, 1).Return(int64(1), nil)

		total, err := NewRetentionService(scanRepository, projectRepository).RunAll(context.Background())
		assert.Error(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("should report every project to the progress observer", func(t *testing.T) {
		scanRepository := mocks.NewScanRepository(t)
		projectRepository := mocks.NewProjectRepository(t)
		free := newProject("free")
		broken := newProject("free")
		projectRepository.On("AllWithOrganization").Return([]models.Project{free, broken}, nil)

		scanRepository.On("CountByProject", mock.Anything, free.ID).Return(int64(11), nil)
		scanRepository.On("DeleteOldest", mock.Anything, free.ID, 1).Return(int64(1), nil)
		scanRepository.On("CountByProject", mock.Anything, broken.ID).Return(int64(0), errors.New("boom"))

		progress := &recordingProgress{}
		total, err := NewRetentionService(scanRepository, projectRepository).RunAllWithProgress(context.Background(), progress)
		assert.Error(t, err)
		assert.Equal(t, int64(1), total)

		assert.Equal(t, 2, progress.total)
		require.Len(t, progress.results, 2)
		assert.Equal(t, free.ID, progress.results[0].Project.ID)
		assert.Equal(t, int64(1), progress.results[0].Deleted)
		assert.Equal(t, 10, progress.results[0].Limit)
		assert.NoError(t, progress.results[0].Err)
		assert.Error(t, progress.results[1].Err)
	})
}

type recordingProgress struct {
	total   int
	results []ProjectRetention
}

func (p *recordingProgress) Start(projects int) {
	p.total = projects
}

func (p *recordingProgress) Trimmed(result ProjectRetention) {
	p.results = append(p.results, result)
}
