package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBiomassInputValidate(t *testing.T) {
	assert.NoError(t, default_biomass_input().validate())

	// each constraint rejects on its own
	cases := []struct {
		name   string
		mutate func(in *BiomassInput)
	}{
		{"composition off by more than 0.5", func(in *BiomassInput) { in.Carbon += 2.0 }},
		{"moisture above 60", func(in *BiomassInput) { in.Moisture = 65.0 }},
		{"efficiency below 10", func(in *BiomassInput) { in.FurnaceEfficiency = 5.0 }},
		{"efficiency above 100", func(in *BiomassInput) { in.FurnaceEfficiency = 101.0 }},
		{"negative excess air", func(in *BiomassInput) { in.ExcessAir = -1.0 }},
		{"zero flow rate", func(in *BiomassInput) { in.FlowRate = 0.0 }},
		{"zero reported PCI", func(in *BiomassInput) { in.ReportedPCI = 0.0 }},
		{"zero duct diameter", func(in *BiomassInput) { in.DuctDiameter = 0.0 }},
		{"altitude above 5000", func(in *BiomassInput) { in.Altitude = 6000.0 }},
		{"dry bulb above 50", func(in *BiomassInput) { in.DryBulbTemp = 55.0 }},
		{"relative humidity above 100", func(in *BiomassInput) { in.RelativeHumidity = 120.0 }},
	}
	for _, c := range cases {
		in := default_biomass_input()
		c.mutate(in)
		assert.Error(t, in.validate(), c.name)
	}
}

func TestBiomassInputNormalized(t *testing.T) {
	in := default_biomass_input()
	in.Carbon = 50.0
	in.Hydrogen = 6.0
	in.Oxygen = 42.0
	in.Nitrogen = 0.5
	in.Sulfur = 0.1
	in.Ash = 0.8

	out := in.normalized()
	assert.InDelta(t, 100.0, out.composition_sum(), 1e-9)

	// ratios between the components survive the rescaling
	assert.InDelta(t, in.Carbon/in.Hydrogen, out.Carbon/out.Hydrogen, 1e-9)

	// the source record is untouched
	assert.Equal(t, 50.0, in.Carbon)

	// a zero composition passes through unchanged
	zero := &BiomassInput{}
	assert.Equal(t, 0.0, zero.normalized().composition_sum())
}

func TestBiomassInputClone(t *testing.T) {
	in := default_biomass_input()
	dup := in.clone()
	dup.ExcessAir = 99.0

	assert.Equal(t, 30.0, in.ExcessAir)
	assert.Equal(t, 99.0, dup.ExcessAir)
}
