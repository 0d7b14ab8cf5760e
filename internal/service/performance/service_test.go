package performance

import (
	"testing"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/performance"
	"github.com/stretchr/testify/assert"
)

func TestOverallScore(t *testing.T) {
	kpis := []performance.KPI{
		{Metric: "Code Quality", Weight: 0.4, Score: 4.5},
		{Metric: "Delivery", Weight: 0.3, Score: 4.0},
		{Metric: "Collaboration", Weight: 0.3, Score: 3.5},
	}

	// (4.5*0.4 + 4.0*0.3 + 3.5*0.3) / 1.0 = 4.05
	assert.Equal(t, 4.05, OverallScore(kpis))
}

func TestOverallScoreUnequalWeights(t *testing.T) {
	kpis := []performance.KPI{
		{Metric: "Sales Target", Weight: 3, Score: 5},
		{Metric: "Customer Satisfaction", Weight: 1, Score: 3},
	}

	// (5*3 + 3*1) / 4 = 4.5
	assert.Equal(t, 4.5, OverallScore(kpis))
}

func TestOverallScoreRounding(t *testing.T) {
	kpis := []performance.KPI{
		{Metric: "A", Weight: 1, Score: 4},
		{Metric: "B", Weight: 1, Score: 4},
		{Metric: "C", Weight: 1, Score: 3},
	}

	// 11/3 = 3.666... rounds to 3.67
	assert.Equal(t, 3.67, OverallScore(kpis))
}

func TestOverallScoreNoKPIs(t *testing.T) {
	assert.Equal(t, 0.0, OverallScore(nil))
	assert.Equal(t, 0.0, OverallScore([]performance.KPI{}))
}

func TestOverallScoreZeroWeights(t *testing.T) {
	kpis := []performance.KPI{
		{Metric: "A", Weight: 0, Score: 4},
		{Metric: "B", Weight: 0, Score: 2},
	}

	// Weightless KPIs contribute nothing and must not divide by zero.
	assert.Equal(t, 0.0, OverallScore(kpis))
}
