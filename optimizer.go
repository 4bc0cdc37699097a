package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Optimization objective
type Objective string

// Optimization objective constants
const (
	ObjectiveEfficiency  Objective = "efficiency"  // maximize real efficiency
	ObjectiveTemperature Objective = "temperature" // outlet gas temperature close to 1273 K
	ObjectiveVelocity    Objective = "velocity"    // duct gas velocity close to 15 m/s
)

func parse_objective(name string) (Objective, error) {
	switch Objective(name) {
	case ObjectiveEfficiency, ObjectiveTemperature, ObjectiveVelocity:
		return Objective(name), nil
	}
	return "", fmt.Errorf("objective `%s` is not supported", name)
}

/*
Score a result record under the objective. Higher is better: the
temperature and velocity targets are distances negated for maximization.
*/
func (o Objective) score(r *CombustionResults) float64 {
	switch o {
	case ObjectiveTemperature:
		return -math.Abs(r.OutletGasTemp - 1273.0)
	case ObjectiveVelocity:
		return -math.Abs(r.GasVelocity - 15.0)
	}
	return r.RealEfficiency
}

/*
Optional constraints of a grid search.

    Range: half width of the search interval around the base value, %
           (50% when absent)
    Min, Max: explicit bounds of the search interval, overriding Range
    MaxVelocity: reject samples with a higher duct gas velocity, m/s
    MinEfficiency: reject samples with a lower real efficiency, %
    MaxTemp: reject samples with a higher outlet gas temperature, K
*/
type OptimizationConstraints struct {
	Range         *float64 `json:"range,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	MaxVelocity   *float64 `json:"max_velocity,omitempty"`
	MinEfficiency *float64 `json:"min_efficiency,omitempty"`
	MaxTemp       *float64 `json:"max_temp,omitempty"`
}

// Whether a result record satisfies all supplied output constraints.
func (c *OptimizationConstraints) satisfied(r *CombustionResults) bool {
	if c == nil {
		return true
	}
	if c.MaxVelocity != nil && r.GasVelocity > *c.MaxVelocity {
		return false
	}
	if c.MinEfficiency != nil && r.RealEfficiency < *c.MinEfficiency {
		return false
	}
	if c.MaxTemp != nil && r.OutletGasTemp > *c.MaxTemp {
		return false
	}
	return true
}

/*
Outcome of one parameter optimization.

    Feasible is false when no grid sample satisfied the constraints; the
    outcome then degenerates to the base value with the base results and a
    zero improvement instead of silently pretending success.
*/
type OptimizationOutcome struct {
	Parameter     Parameter          `json:"parameter"`
	Objective     Objective          `json:"objective"`
	OptimalValue  float64            `json:"optimal_value"`
	OriginalValue float64            `json:"original_value"`
	BestScore     float64            `json:"best_score"`
	Improvement   float64            `json:"improvement"`
	Feasible      bool               `json:"feasible"`
	Results       *CombustionResults `json:"results"`
}

// Grid-search optimizer over a fixed base input.
type Optimizer struct {
	base_input *BiomassInput
}

func NewOptimizer(base_input *BiomassInput) *Optimizer {
	return &Optimizer{base_input: base_input}
}

/*
Search the best value of one parameter under an objective.

    Args:
        parameter: the input parameter to vary
        objective: the scoring objective
        constraints: optional search bounds and output constraints

    Returns:
        the optimization outcome

    Notes:
        A 100-point grid over the (possibly constraint-narrowed) interval.
        Every sample runs the full pipeline on a fresh input record; among
        the samples satisfying all constraints the highest score wins. This
        is a bounded search, not a convergence-proven optimizer.
*/
func (self *Optimizer) optimize_parameter(parameter Parameter, objective Objective, constraints *OptimizationConstraints) *OptimizationOutcome {
	const n_points = 100

	base_value := parameter.get_value(self.base_input)

	search_range := 50.0
	if constraints != nil && constraints.Range != nil {
		search_range = *constraints.Range
	}
	min_val := base_value * (1.0 - search_range/100.0)
	max_val := base_value * (1.0 + search_range/100.0)
	if constraints != nil && constraints.Min != nil {
		min_val = *constraints.Min
	}
	if constraints != nil && constraints.Max != nil {
		max_val = *constraints.Max
	}

	values := make([]float64, n_points)
	floats.Span(values, min_val, max_val)

	base_results := NewCombustionCalculator(self.base_input).calculate_all()
	base_score := objective.score(base_results)

	best_value := base_value
	best_score := math.Inf(-1)
	feasible := false

	for _, value := range values {
		in := parameter.with_value(self.base_input, value)
		r := NewCombustionCalculator(in).calculate_all()

		if !constraints.satisfied(r) {
			continue
		}

		if score := objective.score(r); score > best_score {
			best_score = score
			best_value = value
			feasible = true
		}
	}

	if !feasible {
		return &OptimizationOutcome{
			Parameter:     parameter,
			Objective:     objective,
			OptimalValue:  base_value,
			OriginalValue: base_value,
			BestScore:     math.Inf(-1),
			Improvement:   0.0,
			Feasible:      false,
			Results:       base_results,
		}
	}

	optimal_results := NewCombustionCalculator(parameter.with_value(self.base_input, best_value)).calculate_all()

	return &OptimizationOutcome{
		Parameter:     parameter,
		Objective:     objective,
		OptimalValue:  best_value,
		OriginalValue: base_value,
		BestScore:     best_score,
		Improvement:   best_score - base_score,
		Feasible:      true,
		Results:       optimal_results,
	}
}
