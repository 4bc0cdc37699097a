package main

import (
	"fmt"
	"math"
)

/*
Input record for one combustion calculation.

    The elemental composition is given on the dry basis in %, the moisture
    on the total basis in %. Operating parameters: biomass flow rate in
    ton/hour, reported lower heating value in kJ/kg, furnace efficiency and
    excess air in %, internal duct diameter in inches.

    The record is treated as immutable once constructed: the sweep and
    optimization loops never write to a shared input, they derive fresh
    copies through Parameter.with_value.
*/
type BiomassInput struct {
	// project data
	ProjectCode  string `json:"project_code"`
	DocumentCode string `json:"document_code"`
	Analyst      string `json:"analyst"`

	// environmental data
	City             string  `json:"city"`
	Altitude         float64 `json:"altitude"`          // m
	RelativeHumidity float64 `json:"relative_humidity"` // %
	DryBulbTemp      float64 `json:"dry_bulb_temp"`     // degree C

	// analysis data
	BiomassType       string  `json:"biomass_type"`
	ReportedPCI       float64 `json:"reported_pci"`      // kJ/kg
	FurnaceEfficiency float64 `json:"furnace_efficiency"` // %
	ExcessAir         float64 `json:"excess_air"`        // %
	DuctDiameter      float64 `json:"duct_diameter"`     // inch

	// elemental composition, % dry basis
	Carbon   float64 `json:"carbon"`
	Hydrogen float64 `json:"hydrogen"`
	Oxygen   float64 `json:"oxygen"`
	Nitrogen float64 `json:"nitrogen"`
	Sulfur   float64 `json:"sulfur"`
	Ash      float64 `json:"ash"`
	Moisture float64 `json:"moisture"` // % total basis

	// biomass flow rate, ton/hour
	FlowRate float64 `json:"flow_rate"`
}

// Reference bagasse input (Bogota conditions).
func default_biomass_input() *BiomassInput {
	return &BiomassInput{
		City:              "Bogotá",
		Altitude:          2640.0,
		RelativeHumidity:  75.0,
		DryBulbTemp:       15.0,
		BiomassType:       "Bagazo de caña",
		ReportedPCI:       11367.0,
		FurnaceEfficiency: 90.0,
		ExcessAir:         30.0,
		DuctDiameter:      30.0,
		Carbon:            50.29,
		Hydrogen:          5.82,
		Oxygen:            42.94,
		Nitrogen:          0.22,
		Sulfur:            0.08,
		Ash:               0.66,
		Moisture:          35.09,
		FlowRate:          3000.0,
	}
}

// Sum of the six dry-basis composition percentages.
func (self *BiomassInput) composition_sum() float64 {
	return self.Carbon + self.Hydrogen + self.Oxygen + self.Nitrogen + self.Sulfur + self.Ash
}

/*
Validate the input record at the boundary.

    Returns:
        nil when the record may enter the calculation pipeline, otherwise
        the first violated constraint as an error.

    Notes:
        The pipeline itself performs no range checking; every rejection
        happens here, before any calculation runs.
*/
func (self *BiomassInput) validate() error {
	sum := self.composition_sum()
	if math.Abs(sum-100.0) > 0.5 {
		return fmt.Errorf("dry-basis composition must sum to 100 +/- 0.5%%, got %.2f", sum)
	}
	if self.Moisture < 0.0 || self.Moisture > 60.0 {
		return fmt.Errorf("moisture must be between 0 and 60%%, got %.2f", self.Moisture)
	}
	if self.FurnaceEfficiency < 10.0 || self.FurnaceEfficiency > 100.0 {
		return fmt.Errorf("furnace efficiency must be between 10 and 100%%, got %.2f", self.FurnaceEfficiency)
	}
	if self.ExcessAir < 0.0 {
		return fmt.Errorf("excess air must not be negative, got %.2f", self.ExcessAir)
	}
	if self.FlowRate <= 0.0 {
		return fmt.Errorf("flow rate must be positive, got %.2f", self.FlowRate)
	}
	if self.ReportedPCI <= 0.0 {
		return fmt.Errorf("reported PCI must be positive, got %.2f", self.ReportedPCI)
	}
	if self.DuctDiameter <= 0.0 {
		return fmt.Errorf("duct diameter must be positive, got %.2f", self.DuctDiameter)
	}
	if self.Altitude < 0.0 || self.Altitude > 5000.0 {
		return fmt.Errorf("altitude must be between 0 and 5000 m, got %.2f", self.Altitude)
	}
	if self.DryBulbTemp < -20.0 || self.DryBulbTemp > 50.0 {
		return fmt.Errorf("dry bulb temperature must be between -20 and 50 degree C, got %.2f", self.DryBulbTemp)
	}
	if self.RelativeHumidity < 0.0 || self.RelativeHumidity > 100.0 {
		return fmt.Errorf("relative humidity must be between 0 and 100%%, got %.2f", self.RelativeHumidity)
	}
	return nil
}

/*
Return a copy with the six dry-basis percentages rescaled to sum to
exactly 100.

    Notes:
        Normalization is decided once, here at the boundary. The equation
        library assumes normalized composition and never rescales on its
        own. A composition summing to zero is returned unchanged.
*/
func (self *BiomassInput) normalized() *BiomassInput {
	sum := self.composition_sum()
	out := *self

	if sum <= 0.0 {
		return &out
	}

	scale := 100.0 / sum
	out.Carbon *= scale
	out.Hydrogen *= scale
	out.Oxygen *= scale
	out.Nitrogen *= scale
	out.Sulfur *= scale
	out.Ash *= scale

	return &out
}

// Shallow copy; the record holds no reference fields.
func (self *BiomassInput) clone() *BiomassInput {
	out := *self
	return &out
}
