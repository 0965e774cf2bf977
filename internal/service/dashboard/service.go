package dashboard

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
	"github.com/twinkal0201/cardio-70-AI/internal/repository"
)

// Chart palette shared with the result panel.
const (
	colorGreen  = "#4CAF50"
	colorRed    = "#FF5252"
	colorOrange = "#FF9800"
	colorBlue   = "#2196F3"
	colorCyan   = "#00BCD4"
	colorSlate  = "#78909c"
)

// Service assembles the dashboard chart specifications and, when a
// prediction log is available, live usage statistics.
type Service struct {
	logRepo repository.PredictionLogRepository
}

func NewService(logRepo repository.PredictionLogRepository) *Service {
	return &Service{logRepo: logRepo}
}

// Charts returns the full dashboard chart set styled for the given theme.
// The model-evaluation charts (ROC, confusion matrix, feature importance)
// carry fixed figures published with the model; the scatter chart samples
// fresh cluster points on every call.
func (s *Service) Charts(theme model.Theme) []model.ChartSpec {
	opts := func() model.ChartOptions {
		return model.ChartOptions{
			LegendColor: theme.TextColor(),
			X:           &model.ChartAxis{TickColor: theme.TextColor(), GridColor: theme.GridColor()},
			Y:           &model.ChartAxis{TickColor: theme.TextColor(), GridColor: theme.GridColor()},
		}
	}

	return []model.ChartSpec{
		{
			ID:     "riskDistribution",
			Type:   "doughnut",
			Labels: []string{"Low Risk", "High Risk"},
			Datasets: []model.ChartDataset{{
				Data:            []float64{51, 49},
				BackgroundColor: []string{colorGreen, colorRed},
				BorderColor:     "transparent",
			}},
			Options: model.ChartOptions{
				LegendColor:    theme.TextColor(),
				LegendPosition: "bottom",
			},
		},
		{
			ID:     "recentPredictions",
			Type:   "line",
			Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Datasets: []model.ChartDataset{{
				Label:           "Daily Predictions",
				Data:            []float64{12, 19, 15, 25, 22, 30, 28},
				BorderColor:     colorCyan,
				BackgroundColor: "rgba(0, 188, 212, 0.1)",
				Fill:            true,
				Tension:         0.4,
			}},
			Options: opts(),
		},
		{
			ID:   "featureImportance",
			Type: "bar",
			Labels: []string{
				"Systolic BP", "Diastolic BP", "Age", "Cholesterol", "BMI", "Weight",
				"Height", "Glucose", "Activity", "Gender", "Smoke", "Alcohol",
			},
			Datasets: []model.ChartDataset{{
				Label:           "Importance Score",
				Data:            []float64{0.38, 0.18, 0.15, 0.077, 0.070, 0.052, 0.04, 0.013, 0.009, 0.006, 0.005, 0.004},
				BackgroundColor: "rgba(38, 198, 218, 0.7)",
				BorderColor:     colorCyan,
				Fill:            true,
			}},
			Options: opts(),
		},
		{
			ID:     "rocCurve",
			Type:   "line",
			Labels: []string{"0", "0.1", "0.2", "0.3", "0.4", "0.5", "0.6", "0.7", "0.8", "0.9", "1"},
			Datasets: []model.ChartDataset{
				{
					Label:           "ROC Curve (AUC = 0.94)",
					Data:            []float64{0, 0.5, 0.7, 0.82, 0.88, 0.92, 0.95, 0.97, 0.99, 1, 1},
					BorderColor:     colorGreen,
					BackgroundColor: "rgba(76, 175, 80, 0.2)",
					Fill:            true,
					Tension:         0.3,
				},
				{
					Label:       "Random Guess",
					Data:        []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1},
					BorderColor: colorSlate,
					BorderDash:  []int{5, 5},
				},
			},
			Options: opts(),
		},
		{
			ID:     "confusionMatrix",
			Type:   "bar",
			Labels: []string{"True Positive", "True Negative", "False Positive", "False Negative"},
			Datasets: []model.ChartDataset{{
				Label:           "Count",
				Data:            []float64{850, 920, 80, 60},
				BackgroundColor: []string{colorGreen, colorBlue, colorOrange, colorRed},
			}},
			Options: opts(),
		},
		{
			ID:   "hrAgeScatter",
			Type: "scatter",
			Datasets: []model.ChartDataset{
				{
					Label:           "Healthy Controls",
					Data:            scatterCluster(40, 20, 60, 60, 20),
					BackgroundColor: colorGreen,
				},
				{
					Label:           "High Risk Patients",
					Data:            scatterCluster(30, 40, 40, 80, 40),
					BackgroundColor: colorRed,
				},
			},
			Options: model.ChartOptions{
				LegendColor: theme.TextColor(),
				X:           &model.ChartAxis{Title: "Age (Years)", TickColor: theme.TextColor(), GridColor: theme.GridColor()},
				Y:           &model.ChartAxis{Title: "Avg Heart Rate", TickColor: theme.TextColor(), GridColor: theme.GridColor()},
			},
		},
		{
			ID:     "cholesterolDist",
			Type:   "bar",
			Labels: []string{"Normal (<200)", "Above Normal (200-239)", "High (240+)"},
			Datasets: []model.ChartDataset{{
				Label:           "Patient Distribution %",
				Data:            []float64{45, 35, 20},
				BackgroundColor: []string{colorGreen, colorOrange, colorRed},
			}},
			Options: opts(),
		},
		{
			ID:     "riskByAge",
			Type:   "line",
			Labels: []string{"20-30", "30-40", "40-50", "50-60", "60-70", "70+"},
			Datasets: []model.ChartDataset{{
				Label:           "High Risk Probability",
				Data:            []float64{5, 12, 25, 45, 65, 85},
				BorderColor:     colorRed,
				BackgroundColor: "rgba(255, 82, 82, 0.2)",
				Fill:            true,
			}},
			Options: opts(),
		},
	}
}

func scatterCluster(n int, xBase, xSpread, yBase, ySpread float64) []model.ScatterPoint {
	points := make([]model.ScatterPoint, n)
	for i := range points {
		points[i] = model.ScatterPoint{
			X: xBase + rand.Float64()*xSpread,
			Y: yBase + rand.Float64()*ySpread,
		}
	}
	return points
}

// Stats aggregates the prediction log. Without a configured log the
// dashboard serves the same sample series the charts are seeded with.
func (s *Service) Stats(ctx context.Context) (*model.DashboardStats, error) {
	if s.logRepo == nil {
		return sampleStats(), nil
	}

	total, err := s.logRepo.Total(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prediction totals: %w", err)
	}
	daily, err := s.logRepo.DailyCounts(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to load daily counts: %w", err)
	}
	dist, err := s.logRepo.RiskDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk distribution: %w", err)
	}

	if total == 0 {
		log.Debug().Msg("prediction log empty, serving sample statistics")
		return sampleStats(), nil
	}
	return &model.DashboardStats{
		Total:            total,
		Daily:            daily,
		RiskDistribution: dist,
		Source:           "live",
	}, nil
}

func sampleStats() *model.DashboardStats {
	return &model.DashboardStats{
		Total: 151,
		Daily: []model.DailyPredictionCount{
			{Day: "Mon", Count: 12}, {Day: "Tue", Count: 19}, {Day: "Wed", Count: 15},
			{Day: "Thu", Count: 25}, {Day: "Fri", Count: 22}, {Day: "Sat", Count: 30},
			{Day: "Sun", Count: 28},
		},
		RiskDistribution: []model.RiskLevelCount{
			{RiskLevel: model.RiskLow, Count: 77},
			{RiskLevel: model.RiskHigh, Count: 74},
		},
		Source: "sample",
	}
}
