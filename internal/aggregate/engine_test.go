package aggregate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-analytics/crimelens/internal/model"
)

func TestEngine_RunBuildsEveryView(t *testing.T) {
	incidents := []model.Incident{
		clusterInc("Cluster 8", "HOMICIDE"),
		clusterInc("Cluster 8", "HOMICIDE"),
		clusterInc("Cluster 25", "THEFT/OTHER"),
	}

	views, err := testEngine().Run(context.Background(), incidents, model.FilterSpec{})
	require.NoError(t, err)

	assert.Equal(t, 3, views.Filtered)
	assert.Len(t, views.Heatmap.Points, 3)
	assert.Len(t, views.Shifts, 3)
	assert.Len(t, views.Categories, 2)
	assert.Len(t, views.Trend, 366)
	assert.Len(t, views.Areas.Areas, 2)
}

func TestEngine_RunIsDeterministic(t *testing.T) {
	// The same input yields deep-equal snapshots run over run.
	incidents := []model.Incident{
		clusterInc("Cluster 8", "HOMICIDE"),
		clusterInc("Cluster 2", "THEFT/OTHER"),
		clusterInc("Cluster 2", "BURGLARY"),
	}
	spec := model.FilterSpec{}

	first, err := testEngine().Run(context.Background(), incidents, spec)
	require.NoError(t, err)
	second, err := testEngine().Run(context.Background(), incidents, spec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEngine_RunEmptyInput(t *testing.T) {
	views, err := testEngine().Run(context.Background(), nil, model.FilterSpec{})
	require.NoError(t, err)

	assert.Zero(t, views.Filtered)
	assert.Empty(t, views.Heatmap.Points)
	assert.Len(t, views.Trend, 366)
	for _, sc := range views.Shifts {
		assert.Zero(t, sc.Count)
	}
}

func TestEngine_RunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testEngine().Run(ctx, nil, model.FilterSpec{})
	assert.Error(t, err)
}
