package main

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
)

/*
Ordered output sequences of one parameter sweep.

    The four channels are parallel to ParameterValues: entry i of every
    channel belongs to sample value i. Temperatures are reported in
    degree C, velocities in m/s, pressure drops in Pa/m, efficiencies in %.
*/
type SensibilityResults struct {
	ParameterName   string    `json:"parameter_name"`
	ParameterValues []float64 `json:"parameter_values"`
	Temperatures    []float64 `json:"temperatures"`
	Velocities      []float64 `json:"velocities"`
	PressureDrops   []float64 `json:"pressure_drops"`
	Efficiencies    []float64 `json:"efficiencies"`
}

// Minimum, maximum and span of one output channel over a sweep.
type ChannelRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Span float64 `json:"span"`
}

/*
Derived sensitivity metrics of one sweep.

    Derivatives are central-difference gradients of each output channel
    with respect to the swept parameter. Relative sensitivities are
    normalized to the first sample, in %.
*/
type SensitivityMetrics struct {
	TemperatureDerivative  []float64 `json:"temperature_derivative"`
	VelocityDerivative     []float64 `json:"velocity_derivative"`
	PressureDropDerivative []float64 `json:"pressure_drop_derivative"`
	EfficiencyDerivative   []float64 `json:"efficiency_derivative"`

	TemperatureRelSens []float64 `json:"temperature_rel_sens"`
	VelocityRelSens    []float64 `json:"velocity_rel_sens"`
	EfficiencyRelSens  []float64 `json:"efficiency_rel_sens"`

	MaxTemperatureSens float64 `json:"max_temperature_sens"`
	MaxVelocitySens    float64 `json:"max_velocity_sens"`
	MaxEfficiencySens  float64 `json:"max_efficiency_sens"`

	TemperatureRange  ChannelRange `json:"temperature_range"`
	VelocityRange     ChannelRange `json:"velocity_range"`
	PressureDropRange ChannelRange `json:"pressure_drop_range"`
	EfficiencyRange   ChannelRange `json:"efficiency_range"`
}

// Full analysis of one swept parameter.
type ParameterAnalysis struct {
	Parameter Parameter           `json:"parameter"`
	BaseValue float64             `json:"base_value"`
	Unit      string              `json:"unit"`
	Results   *SensibilityResults `json:"results"`
	Metrics   *SensitivityMetrics `json:"metrics"`
}

// Composite sensitivity ranking entry of one parameter.
type SensitivityRanking struct {
	Parameter        Parameter `json:"parameter" csv:"parameter"`
	SensitivityIndex float64   `json:"sensitivity_index" csv:"sensitivity_index"`
	MaxTempSens      float64   `json:"max_temp_sens" csv:"max_temp_sens"`
	MaxVelSens       float64   `json:"max_vel_sens" csv:"max_vel_sens"`
	MaxEffSens       float64   `json:"max_eff_sens" csv:"max_eff_sens"`
}

// Result of a multi-parameter sensitivity analysis.
type MultiParameterAnalysis struct {
	IndividualAnalysis map[Parameter]*ParameterAnalysis `json:"individual_analysis"`
	SensitivityRanking []SensitivityRanking             `json:"sensitivity_ranking"`
	Recommendations    []string                         `json:"recommendations"`
}

/*
Sensitivity analyzer over a fixed base input.

    Every sample is evaluated on a fresh input record derived from the base
    through Parameter.with_value; the base record itself is never written,
    which makes the per-sample evaluations independent and safe to run
    concurrently.
*/
type SensitivityAnalyzer struct {
	base_input *BiomassInput
}

func NewSensitivityAnalyzer(base_input *BiomassInput) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{base_input: base_input}
}

/*
Run the pipeline once per sample value and collect the four output
channels.

    Args:
        parameter: the input parameter being varied
        values: ordered sample values

    Returns:
        the sweep result; channel order follows the sample order, not the
        completion order of the concurrent evaluations
*/
func (self *SensitivityAnalyzer) sweep(parameter Parameter, values []float64) *SensibilityResults {
	n := len(values)
	out := &SensibilityResults{
		ParameterName:   string(parameter),
		ParameterValues: values,
		Temperatures:    make([]float64, n),
		Velocities:      make([]float64, n),
		PressureDrops:   make([]float64, n),
		Efficiencies:    make([]float64, n),
	}

	var wg sync.WaitGroup
	for i, value := range values {
		wg.Add(1)
		go func(i int, value float64) {
			defer wg.Done()

			in := parameter.with_value(self.base_input, value)
			r := NewCombustionCalculator(in).calculate_all()

			// each goroutine writes only its own slot
			out.Temperatures[i] = r.OutletGasTemp - 273.15
			out.Velocities[i] = r.GasVelocity
			out.PressureDrops[i] = r.PressureDrop
			out.Efficiencies[i] = r.RealEfficiency
		}(i, value)
	}
	wg.Wait()

	return out
}

/*
Analyze the sensitivity of one parameter.

    Args:
        parameter: the parameter to sweep
        range_percent: half width of the sweep around the base value, %
        num_points: number of linearly spaced samples (at least 2)

    Returns:
        the parameter analysis, or an error for a degenerate sample count
*/
func (self *SensitivityAnalyzer) analyze_parameter(parameter Parameter, range_percent float64, num_points int) (*ParameterAnalysis, error) {
	if num_points < 2 {
		return nil, fmt.Errorf("sensitivity analysis needs at least 2 points, got %d", num_points)
	}

	base_value := parameter.get_value(self.base_input)

	min_val := base_value * (1.0 - range_percent/100.0)
	max_val := base_value * (1.0 + range_percent/100.0)
	values := make([]float64, num_points)
	floats.Span(values, min_val, max_val)

	results := self.sweep(parameter, values)

	return &ParameterAnalysis{
		Parameter: parameter,
		BaseValue: base_value,
		Unit:      parameter.get_unit(),
		Results:   results,
		Metrics:   get_sensitivity_metrics(values, results),
	}, nil
}

/*
Analyze several parameters and rank them by composite sensitivity.

    Args:
        parameters: the parameters to sweep, 15 samples each
        range_percent: half width of each sweep, %

    Returns:
        individual analyses, the descending ranking and the rule-based
        recommendations
*/
func (self *SensitivityAnalyzer) multi_param_analysis(parameters []Parameter, range_percent float64) (*MultiParameterAnalysis, error) {
	analysis := make(map[Parameter]*ParameterAnalysis, len(parameters))

	for _, p := range parameters {
		a, err := self.analyze_parameter(p, range_percent, 15)
		if err != nil {
			return nil, err
		}
		analysis[p] = a
	}

	ranking := rank_sensitivity(analysis)

	return &MultiParameterAnalysis{
		IndividualAnalysis: analysis,
		SensitivityRanking: ranking,
		Recommendations:    generate_recommendations(ranking),
	}, nil
}

/*
Central-difference gradient of y with respect to x over a sampled
sequence (forward/backward differences at the two edges).

    Args:
        y: sampled outputs, [n]
        x: sample positions, [n]

    Returns:
        dy/dx at every sample, [n]
*/
func get_gradient(y, x []float64) []float64 {
	n := len(y)
	dy := make([]float64, n)
	if n < 2 {
		return dy
	}

	dy[0] = (y[1] - y[0]) / (x[1] - x[0])
	for i := 1; i < n-1; i++ {
		dy[i] = (y[i+1] - y[i-1]) / (x[i+1] - x[i-1])
	}
	dy[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

	return dy
}

/*
Relative sensitivity in % at every sample,
derivative * values[0] / base_y * 100.

    Guarded to all zeros when the base output is zero.
*/
func get_relative_sensitivity(base_y float64, derivative, values []float64) []float64 {
	out := make([]float64, len(derivative))
	if base_y == 0.0 {
		return out
	}

	for i, d := range derivative {
		out[i] = d * values[0] / base_y * 100.0
	}

	return out
}

func get_channel_range(y []float64) ChannelRange {
	min := floats.Min(y)
	max := floats.Max(y)
	return ChannelRange{Min: min, Max: max, Span: max - min}
}

func max_abs(y []float64) float64 {
	var m float64
	for _, v := range y {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// Derive all sensitivity metrics from a completed sweep.
func get_sensitivity_metrics(values []float64, r *SensibilityResults) *SensitivityMetrics {
	m := &SensitivityMetrics{}

	m.TemperatureDerivative = get_gradient(r.Temperatures, values)
	m.VelocityDerivative = get_gradient(r.Velocities, values)
	m.PressureDropDerivative = get_gradient(r.PressureDrops, values)
	m.EfficiencyDerivative = get_gradient(r.Efficiencies, values)

	m.TemperatureRelSens = get_relative_sensitivity(r.Temperatures[0], m.TemperatureDerivative, values)
	m.VelocityRelSens = get_relative_sensitivity(r.Velocities[0], m.VelocityDerivative, values)
	m.EfficiencyRelSens = get_relative_sensitivity(r.Efficiencies[0], m.EfficiencyDerivative, values)

	m.MaxTemperatureSens = max_abs(m.TemperatureRelSens)
	m.MaxVelocitySens = max_abs(m.VelocityRelSens)
	m.MaxEfficiencySens = max_abs(m.EfficiencyRelSens)

	m.TemperatureRange = get_channel_range(r.Temperatures)
	m.VelocityRange = get_channel_range(r.Velocities)
	m.PressureDropRange = get_channel_range(r.PressureDrops)
	m.EfficiencyRange = get_channel_range(r.Efficiencies)

	return m
}

/*
Rank parameters by the composite sensitivity index,
0.4 max|rel_sens_temp| + 0.3 max|rel_sens_vel| + 0.3 max|rel_sens_eff|,
in descending order.
*/
func rank_sensitivity(analysis map[Parameter]*ParameterAnalysis) []SensitivityRanking {
	ranking := make([]SensitivityRanking, 0, len(analysis))

	for p, a := range analysis {
		ranking = append(ranking, SensitivityRanking{
			Parameter:        p,
			SensitivityIndex: 0.4*a.Metrics.MaxTemperatureSens + 0.3*a.Metrics.MaxVelocitySens + 0.3*a.Metrics.MaxEfficiencySens,
			MaxTempSens:      a.Metrics.MaxTemperatureSens,
			MaxVelSens:       a.Metrics.MaxVelocitySens,
			MaxEffSens:       a.Metrics.MaxEfficiencySens,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].SensitivityIndex > ranking[j].SensitivityIndex
	})

	return ranking
}

/*
Generate rule-based textual recommendations from the three most sensitive
parameters. Parameters without a matching rule produce no advisory; when
nothing crosses a threshold a single generic stability message is
returned.
*/
func generate_recommendations(ranking []SensitivityRanking) []string {
	recommendations := make([]string, 0)

	top := ranking
	if len(top) > 3 {
		top = top[:3]
	}

	for _, item := range top {
		sens := item.SensitivityIndex

		switch item.Parameter {
		case ParameterExcessAir:
			if sens > 20.0 {
				recommendations = append(recommendations, fmt.Sprintf(
					"Excess air is HIGHLY sensitive (%.1f%%). Consider precise control of the air-fuel ratio.", sens))
			} else if sens > 10.0 {
				recommendations = append(recommendations, fmt.Sprintf(
					"Excess air is moderately sensitive (%.1f%%). Keep statistical process control in place.", sens))
			}

		case ParameterFurnaceEfficiency:
			if sens > 15.0 {
				recommendations = append(recommendations, fmt.Sprintf(
					"Furnace efficiency has a significant impact (%.1f%%). Schedule regular preventive maintenance.", sens))
			}

		case ParameterMoisture:
			if sens > 25.0 {
				recommendations = append(recommendations, fmt.Sprintf(
					"Fuel moisture is CRITICAL (%.1f%%). Consider a drying system or incoming quality control.", sens))
			}

		case ParameterFlowRate:
			if sens > 30.0 {
				recommendations = append(recommendations, fmt.Sprintf(
					"Biomass flow is very sensitive (%.1f%%). Install calibrated flow meters and PID control.", sens))
			}
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"The system shows good stability. Keep the current operating conditions.")
	}

	return recommendations
}
