package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParameter(t *testing.T) {
	for _, p := range get_sweepable_parameters() {
		parsed, err := parse_parameter(string(p))
		assert.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := parse_parameter("sulfur")
	assert.Error(t, err)

	_, err = parse_parameter("")
	assert.Error(t, err)
}

func TestParameterGetValue(t *testing.T) {
	in := default_biomass_input()

	assert.Equal(t, 3000.0, ParameterFlowRate.get_value(in))
	assert.Equal(t, 30.0, ParameterExcessAir.get_value(in))
	assert.Equal(t, 90.0, ParameterFurnaceEfficiency.get_value(in))
	assert.Equal(t, 35.09, ParameterMoisture.get_value(in))
	assert.Equal(t, 50.29, ParameterCarbon.get_value(in))
	assert.Equal(t, 30.0, ParameterDuctDiameter.get_value(in))
	assert.Equal(t, 11367.0, ParameterReportedPCI.get_value(in))
}

func TestParameterWithValue(t *testing.T) {
	in := default_biomass_input()

	out := ParameterExcessAir.with_value(in, 45.0)
	require.NotSame(t, in, out)
	assert.Equal(t, 45.0, out.ExcessAir)

	// only the targeted field changes
	assert.Equal(t, in.FlowRate, out.FlowRate)
	assert.Equal(t, in.Moisture, out.Moisture)

	// the base record is never written
	assert.Equal(t, 30.0, in.ExcessAir)
}

func TestParameterGetUnit(t *testing.T) {
	assert.Equal(t, "ton/hour", ParameterFlowRate.get_unit())
	assert.Equal(t, "%", ParameterExcessAir.get_unit())
	assert.Equal(t, "%", ParameterMoisture.get_unit())
	assert.Equal(t, "inch", ParameterDuctDiameter.get_unit())
	assert.Equal(t, "kJ/kg", ParameterReportedPCI.get_unit())
}
