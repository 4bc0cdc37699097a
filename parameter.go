package main

import (
	"fmt"
)

// Sweepable input parameter
type Parameter string

// Sweepable input parameter constants
const (
	ParameterFlowRate          Parameter = "flow_rate"
	ParameterExcessAir         Parameter = "excess_air"
	ParameterFurnaceEfficiency Parameter = "furnace_efficiency"
	ParameterMoisture          Parameter = "moisture"
	ParameterCarbon            Parameter = "carbon"
	ParameterHydrogen          Parameter = "hydrogen"
	ParameterOxygen            Parameter = "oxygen"
	ParameterDuctDiameter      Parameter = "duct_diameter"
	ParameterReportedPCI       Parameter = "reported_pci"
)

// All parameters the sensitivity and optimization layers may vary.
func get_sweepable_parameters() []Parameter {
	return []Parameter{
		ParameterFlowRate,
		ParameterExcessAir,
		ParameterFurnaceEfficiency,
		ParameterMoisture,
		ParameterCarbon,
		ParameterHydrogen,
		ParameterOxygen,
		ParameterDuctDiameter,
		ParameterReportedPCI,
	}
}

/*
Parse a parameter name against the allow-list of sweepable parameters.

    Args:
        name: parameter name as received at the boundary

    Returns:
        the parameter, or an error when the name is not sweepable
*/
func parse_parameter(name string) (Parameter, error) {
	for _, p := range get_sweepable_parameters() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("parameter `%s` is not sweepable", name)
}

// Read the parameter value from an input record.
func (p Parameter) get_value(in *BiomassInput) float64 {
	switch p {
	case ParameterFlowRate:
		return in.FlowRate
	case ParameterExcessAir:
		return in.ExcessAir
	case ParameterFurnaceEfficiency:
		return in.FurnaceEfficiency
	case ParameterMoisture:
		return in.Moisture
	case ParameterCarbon:
		return in.Carbon
	case ParameterHydrogen:
		return in.Hydrogen
	case ParameterOxygen:
		return in.Oxygen
	case ParameterDuctDiameter:
		return in.DuctDiameter
	case ParameterReportedPCI:
		return in.ReportedPCI
	}
	panic(p)
}

/*
Build a fresh input record with the parameter set to the given value.

    Args:
        in: base input record, left untouched
        value: the new parameter value

    Returns:
        a copy of the base record with only this parameter overridden
*/
func (p Parameter) with_value(in *BiomassInput, value float64) *BiomassInput {
	out := in.clone()

	switch p {
	case ParameterFlowRate:
		out.FlowRate = value
	case ParameterExcessAir:
		out.ExcessAir = value
	case ParameterFurnaceEfficiency:
		out.FurnaceEfficiency = value
	case ParameterMoisture:
		out.Moisture = value
	case ParameterCarbon:
		out.Carbon = value
	case ParameterHydrogen:
		out.Hydrogen = value
	case ParameterOxygen:
		out.Oxygen = value
	case ParameterDuctDiameter:
		out.DuctDiameter = value
	case ParameterReportedPCI:
		out.ReportedPCI = value
	default:
		panic(p)
	}

	return out
}

// Physical unit of the parameter, for reporting.
func (p Parameter) get_unit() string {
	switch p {
	case ParameterFlowRate:
		return "ton/hour"
	case ParameterExcessAir, ParameterFurnaceEfficiency, ParameterMoisture,
		ParameterCarbon, ParameterHydrogen, ParameterOxygen:
		return "%"
	case ParameterDuctDiameter:
		return "inch"
	case ParameterReportedPCI:
		return "kJ/kg"
	}
	return ""
}
