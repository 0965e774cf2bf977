package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
)

func chartByID(t *testing.T, charts []model.ChartSpec, id string) model.ChartSpec {
	t.Helper()
	for _, c := range charts {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("chart %q not found", id)
	return model.ChartSpec{}
}

func TestChartsComplete(t *testing.T) {
	charts := NewService(nil).Charts(model.ThemeDark)
	require.Len(t, charts, 8)

	ids := make([]string, 0, len(charts))
	for _, c := range charts {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{
		"riskDistribution", "recentPredictions", "featureImportance", "rocCurve",
		"confusionMatrix", "hrAgeScatter", "cholesterolDist", "riskByAge",
	}, ids)
}

func TestChartsThemed(t *testing.T) {
	svc := NewService(nil)

	dark := chartByID(t, svc.Charts(model.ThemeDark), "recentPredictions")
	assert.Equal(t, "#b0bec5", dark.Options.LegendColor)
	assert.Equal(t, "rgba(255, 255, 255, 0.1)", dark.Options.X.GridColor)

	light := chartByID(t, svc.Charts(model.ThemeLight), "recentPredictions")
	assert.Equal(t, "#546e7a", light.Options.LegendColor)
	assert.Equal(t, "rgba(0, 0, 0, 0.1)", light.Options.X.GridColor)
}

func TestRiskDistributionChart(t *testing.T) {
	chart := chartByID(t, NewService(nil).Charts(model.ThemeLight), "riskDistribution")

	assert.Equal(t, "doughnut", chart.Type)
	assert.Equal(t, []string{"Low Risk", "High Risk"}, chart.Labels)
	require.Len(t, chart.Datasets, 1)
	assert.Equal(t, []float64{51, 49}, chart.Datasets[0].Data)
	assert.Equal(t, "bottom", chart.Options.LegendPosition)
}

func TestROCChartHasRandomGuessBaseline(t *testing.T) {
	chart := chartByID(t, NewService(nil).Charts(model.ThemeLight), "rocCurve")

	require.Len(t, chart.Datasets, 2)
	assert.Equal(t, "Random Guess", chart.Datasets[1].Label)
	assert.Equal(t, []int{5, 5}, chart.Datasets[1].BorderDash)
}

func TestScatterChartClusters(t *testing.T) {
	chart := chartByID(t, NewService(nil).Charts(model.ThemeLight), "hrAgeScatter")
	require.Len(t, chart.Datasets, 2)

	healthy, ok := chart.Datasets[0].Data.([]model.ScatterPoint)
	require.True(t, ok)
	assert.Len(t, healthy, 40)
	for _, p := range healthy {
		assert.GreaterOrEqual(t, p.X, 20.0)
		assert.Less(t, p.X, 80.0)
		assert.GreaterOrEqual(t, p.Y, 60.0)
		assert.Less(t, p.Y, 80.0)
	}

	highRisk, ok := chart.Datasets[1].Data.([]model.ScatterPoint)
	require.True(t, ok)
	assert.Len(t, highRisk, 30)

	assert.Equal(t, "Age (Years)", chart.Options.X.Title)
	assert.Equal(t, "Avg Heart Rate", chart.Options.Y.Title)
}

func TestStatsFallsBackToSample(t *testing.T) {
	stats, err := NewService(nil).Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "sample", stats.Source)
	assert.Equal(t, 151, stats.Total)
	require.Len(t, stats.Daily, 7)
	assert.Equal(t, "Mon", stats.Daily[0].Day)
}
