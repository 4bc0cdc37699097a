package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjective(t *testing.T) {
	for _, name := range []string{"efficiency", "temperature", "velocity"} {
		obj, err := parse_objective(name)
		assert.NoError(t, err)
		assert.Equal(t, Objective(name), obj)
	}

	_, err := parse_objective("throughput")
	assert.Error(t, err)
}

func TestObjectiveScore(t *testing.T) {
	r := &CombustionResults{
		RealEfficiency: 85.0,
		OutletGasTemp:  1300.0,
		GasVelocity:    12.0,
	}

	assert.Equal(t, 85.0, ObjectiveEfficiency.score(r))
	assert.Equal(t, -27.0, ObjectiveTemperature.score(r))
	assert.Equal(t, -3.0, ObjectiveVelocity.score(r))

	// an exact hit scores zero, any miss scores below it
	on_target := &CombustionResults{OutletGasTemp: 1273.0}
	assert.Equal(t, 0.0, ObjectiveTemperature.score(on_target))
	assert.Less(t, ObjectiveTemperature.score(r), 0.0)
}

func TestOptimizeParameterEfficiency(t *testing.T) {
	// the efficiency score grows with the furnace efficiency itself, so the
	// grid search must land on the upper end of the interval
	outcome := NewOptimizer(reference_input()).
		optimize_parameter(ParameterFurnaceEfficiency, ObjectiveEfficiency, nil)

	assert.True(t, outcome.Feasible)
	assert.Equal(t, 90.0, outcome.OriginalValue)
	assert.InDelta(t, 135.0, outcome.OptimalValue, 1e-6)
	assert.InDelta(t, 45.0, outcome.Improvement, 1e-6)
	assert.Equal(t, outcome.BestScore, outcome.Results.RealEfficiency)
}

func TestOptimizeParameterVelocityTarget(t *testing.T) {
	// the duct velocity is linear in the flow rate; the search must bring
	// it close to the 15 m/s target
	outcome := NewOptimizer(reference_input()).
		optimize_parameter(ParameterFlowRate, ObjectiveVelocity, nil)

	require.True(t, outcome.Feasible)
	assert.InDelta(t, 15.0, outcome.Results.GasVelocity, 0.3)
	assert.Less(t, outcome.OptimalValue, outcome.OriginalValue)
	assert.LessOrEqual(t, outcome.BestScore, 0.0)
}

func TestOptimizeParameterTemperatureTarget(t *testing.T) {
	// with explicit bounds the 1273 K outlet target lies inside the grid
	min_val := 10.0
	max_val := 80.0
	constraints := &OptimizationConstraints{Min: &min_val, Max: &max_val}

	outcome := NewOptimizer(reference_input()).
		optimize_parameter(ParameterExcessAir, ObjectiveTemperature, constraints)

	require.True(t, outcome.Feasible)
	assert.InDelta(t, 1273.0, outcome.Results.OutletGasTemp, 8.0)
	assert.InDelta(t, 58.5, outcome.OptimalValue, 2.5)
	assert.GreaterOrEqual(t, outcome.OptimalValue, min_val)
	assert.LessOrEqual(t, outcome.OptimalValue, max_val)
}

func TestOptimizeParameterInfeasible(t *testing.T) {
	// the real efficiency never reaches 95% when the input efficiency is
	// fixed at 90%, so no excess air sample can satisfy the constraint
	min_eff := 95.0
	constraints := &OptimizationConstraints{MinEfficiency: &min_eff}

	outcome := NewOptimizer(reference_input()).
		optimize_parameter(ParameterExcessAir, ObjectiveEfficiency, constraints)

	assert.False(t, outcome.Feasible)
	assert.Equal(t, outcome.OriginalValue, outcome.OptimalValue)
	assert.Equal(t, 30.0, outcome.OptimalValue)
	assert.Equal(t, 0.0, outcome.Improvement)
	assert.True(t, math.IsInf(outcome.BestScore, -1))

	// the outcome still carries the base case results
	require.NotNil(t, outcome.Results)
	assert.Equal(t, 90.0, outcome.Results.RealEfficiency)
}

func TestOptimizationConstraintsSatisfied(t *testing.T) {
	r := &CombustionResults{
		GasVelocity:    18.0,
		RealEfficiency: 85.0,
		OutletGasTemp:  1400.0,
	}

	// nil constraints accept everything
	var none *OptimizationConstraints
	assert.True(t, none.satisfied(r))
	assert.True(t, (&OptimizationConstraints{}).satisfied(r))

	max_vel := 15.0
	assert.False(t, (&OptimizationConstraints{MaxVelocity: &max_vel}).satisfied(r))

	min_eff := 90.0
	assert.False(t, (&OptimizationConstraints{MinEfficiency: &min_eff}).satisfied(r))

	max_temp := 1300.0
	assert.False(t, (&OptimizationConstraints{MaxTemp: &max_temp}).satisfied(r))

	loose_vel := 20.0
	assert.True(t, (&OptimizationConstraints{MaxVelocity: &loose_vel}).satisfied(r))
}
