package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeParameterExcessAir(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(reference_input())

	analysis, err := analyzer.analyze_parameter(ParameterExcessAir, 50.0, 11)
	require.NoError(t, err)

	assert.Equal(t, ParameterExcessAir, analysis.Parameter)
	assert.Equal(t, 30.0, analysis.BaseValue)
	assert.Equal(t, "%", analysis.Unit)

	r := analysis.Results
	require.Len(t, r.ParameterValues, 11)
	assert.Len(t, r.Temperatures, 11)
	assert.Len(t, r.Velocities, 11)
	assert.Len(t, r.PressureDrops, 11)
	assert.Len(t, r.Efficiencies, 11)

	// samples run from -50% to +50% of the base value in order
	assert.InDelta(t, 15.0, r.ParameterValues[0], 1e-9)
	assert.InDelta(t, 45.0, r.ParameterValues[10], 1e-9)
	for i := 1; i < 11; i++ {
		assert.Greater(t, r.ParameterValues[i], r.ParameterValues[i-1])
	}

	// more excess air always cools the outlet
	for _, d := range analysis.Metrics.TemperatureDerivative {
		assert.Less(t, d, 0.0)
	}

	// the efficiency channel does not react to excess air at all
	assert.InDelta(t, 0.0, analysis.Metrics.MaxEfficiencySens, 1e-9)

	// the base input record survives the sweep untouched
	assert.Equal(t, reference_input(), analyzer.base_input)
}

func TestAnalyzeParameterRejectsDegenerateCount(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(reference_input())

	_, err := analyzer.analyze_parameter(ParameterExcessAir, 50.0, 1)
	assert.Error(t, err)

	_, err = analyzer.analyze_parameter(ParameterExcessAir, 50.0, 0)
	assert.Error(t, err)
}

func TestMultiParamAnalysis(t *testing.T) {
	analyzer := NewSensitivityAnalyzer(reference_input())

	parameters := []Parameter{ParameterExcessAir, ParameterMoisture, ParameterFlowRate}
	analysis, err := analyzer.multi_param_analysis(parameters, 30.0)
	require.NoError(t, err)

	assert.Len(t, analysis.IndividualAnalysis, 3)
	for _, p := range parameters {
		assert.Contains(t, analysis.IndividualAnalysis, p)
	}

	// descending composite index
	ranking := analysis.SensitivityRanking
	require.Len(t, ranking, 3)
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].SensitivityIndex, ranking[i].SensitivityIndex)
	}

	assert.NotEmpty(t, analysis.Recommendations)
}

func TestGetGradient(t *testing.T) {
	x := []float64{0.0, 1.0, 2.0, 3.0, 4.0}
	y := []float64{0.0, 1.0, 4.0, 9.0, 16.0} // y = x^2

	dy := get_gradient(y, x)

	// central differences are exact on a parabola
	assert.InDelta(t, 2.0, dy[1], 1e-9)
	assert.InDelta(t, 4.0, dy[2], 1e-9)
	assert.InDelta(t, 6.0, dy[3], 1e-9)

	// one-sided differences at the edges
	assert.InDelta(t, 1.0, dy[0], 1e-9)
	assert.InDelta(t, 7.0, dy[4], 1e-9)

	// degenerate single sample
	assert.Equal(t, []float64{0.0}, get_gradient([]float64{5.0}, []float64{1.0}))
}

func TestGetRelativeSensitivity(t *testing.T) {
	values := []float64{10.0, 20.0}
	derivative := []float64{2.0, 3.0}

	rel := get_relative_sensitivity(50.0, derivative, values)
	assert.InDelta(t, 2.0*10.0/50.0*100.0, rel[0], 1e-9)
	assert.InDelta(t, 3.0*10.0/50.0*100.0, rel[1], 1e-9)

	// zero base output yields zeros instead of dividing by zero
	assert.Equal(t, []float64{0.0, 0.0}, get_relative_sensitivity(0.0, derivative, values))
}

func TestRankSensitivity(t *testing.T) {
	analysis := map[Parameter]*ParameterAnalysis{
		ParameterExcessAir: {Metrics: &SensitivityMetrics{
			MaxTemperatureSens: 10.0, MaxVelocitySens: 10.0, MaxEfficiencySens: 10.0,
		}},
		ParameterMoisture: {Metrics: &SensitivityMetrics{
			MaxTemperatureSens: 50.0, MaxVelocitySens: 20.0, MaxEfficiencySens: 0.0,
		}},
	}

	ranking := rank_sensitivity(analysis)
	require.Len(t, ranking, 2)

	// 0.4*50 + 0.3*20 = 26 beats 0.4*10 + 0.3*10 + 0.3*10 = 10
	assert.Equal(t, ParameterMoisture, ranking[0].Parameter)
	assert.InDelta(t, 26.0, ranking[0].SensitivityIndex, 1e-9)
	assert.Equal(t, ParameterExcessAir, ranking[1].Parameter)
	assert.InDelta(t, 10.0, ranking[1].SensitivityIndex, 1e-9)
}

func TestGenerateRecommendations(t *testing.T) {
	// the highly sensitive excess air rule
	recs := generate_recommendations([]SensitivityRanking{
		{Parameter: ParameterExcessAir, SensitivityIndex: 25.0},
	})
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "HIGHLY sensitive")

	// the moderate excess air rule
	recs = generate_recommendations([]SensitivityRanking{
		{Parameter: ParameterExcessAir, SensitivityIndex: 15.0},
	})
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "moderately sensitive")

	// moisture, flow and efficiency rules
	recs = generate_recommendations([]SensitivityRanking{
		{Parameter: ParameterMoisture, SensitivityIndex: 30.0},
		{Parameter: ParameterFlowRate, SensitivityIndex: 35.0},
		{Parameter: ParameterFurnaceEfficiency, SensitivityIndex: 20.0},
	})
	assert.Len(t, recs, 3)

	// only the top three parameters are considered
	recs = generate_recommendations([]SensitivityRanking{
		{Parameter: ParameterCarbon, SensitivityIndex: 99.0},
		{Parameter: ParameterHydrogen, SensitivityIndex: 98.0},
		{Parameter: ParameterOxygen, SensitivityIndex: 97.0},
		{Parameter: ParameterExcessAir, SensitivityIndex: 96.0},
	})
	require.Len(t, recs, 1)
	assert.True(t, strings.Contains(recs[0], "stability"))

	// nothing crosses a threshold
	recs = generate_recommendations([]SensitivityRanking{
		{Parameter: ParameterExcessAir, SensitivityIndex: 5.0},
	})
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "stability")
}
