package main

import (
	"math"
)

// Fuel composition on the wet (as fired) basis, %
type WetComposition struct {
	C   float64 `json:"c"`
	H   float64 `json:"h"`
	O   float64 `json:"o"`
	N   float64 `json:"n"`
	S   float64 `json:"s"`
	Ash float64 `json:"ash"`
	H2O float64 `json:"h2o"`
}

/*
Complete result record of one pipeline invocation.

    Created fresh by every call to calculate_all and never mutated
    afterwards. Energies in MW, temperatures in K, product masses in
    kg per kg of fuel.
*/
type CombustionResults struct {
	// fuel properties
	Pcs            float64        `json:"pcs" csv:"pcs"`
	PciCalculated  float64        `json:"pci_calculated" csv:"pci_calculated"`
	CompositionWet WetComposition `json:"composition_wet_base" csv:"-"`

	// air properties
	AtmosphericPressure float64 `json:"atmospheric_pressure" csv:"atmospheric_pressure"` // kPa
	AirDensity          float64 `json:"air_density" csv:"air_density"`                   // kg/m3
	AbsoluteHumidity    float64 `json:"absolute_humidity" csv:"absolute_humidity"`       // kg/kgDA
	AirEnthalpy         float64 `json:"air_enthalpy" csv:"air_enthalpy"`                 // kJ/kgDA

	// stoichiometry
	TheoreticalAir      float64 `json:"theoretical_air" csv:"theoretical_air"` // kg air / kg fuel
	RealAir             float64 `json:"real_air" csv:"real_air"`               // kg air / kg fuel
	ExcessAirPercentage float64 `json:"excess_air_percentage" csv:"excess_air_percentage"`

	// combustion products, kg / kg fuel
	Co2          float64 `json:"co2" csv:"co2"`
	H2o          float64 `json:"h2o" csv:"h2o"`
	So2          float64 `json:"so2" csv:"so2"`
	O2Excess     float64 `json:"o2_excess" csv:"o2_excess"`
	N2           float64 `json:"n2" csv:"n2"`
	TotalGasMass float64 `json:"total_gas_mass" csv:"total_gas_mass"`

	// volumetric fractions, %
	Co2FractionVol float64 `json:"co2_fraction_vol" csv:"co2_fraction_vol"`
	H2oFractionVol float64 `json:"h2o_fraction_vol" csv:"h2o_fraction_vol"`
	So2FractionVol float64 `json:"so2_fraction_vol" csv:"so2_fraction_vol"`
	O2FractionVol  float64 `json:"o2_fraction_vol" csv:"o2_fraction_vol"`
	N2FractionVol  float64 `json:"n2_fraction_vol" csv:"n2_fraction_vol"`

	// energy balance
	TotalEnergyReleased float64         `json:"total_energy_released" csv:"total_energy_released"` // MW
	UsefulEnergy        float64         `json:"useful_energy" csv:"useful_energy"`                 // MW
	AdiabaticFlameTemp  float64         `json:"adiabatic_flame_temp" csv:"adiabatic_flame_temp"`   // K
	AdiabaticSolver     IterativeResult `json:"adiabatic_solver" csv:"-"`
	OutletGasTemp       float64         `json:"outlet_gas_temp" csv:"outlet_gas_temp"` // K
	ChimneyLosses       float64         `json:"chimney_losses" csv:"chimney_losses"`   // MW
	RealEfficiency      float64         `json:"real_efficiency" csv:"real_efficiency"` // %

	// fluid dynamics
	GasDensity     float64         `json:"gas_density" csv:"gas_density"`         // kg/m3
	VolumetricFlow float64         `json:"volumetric_flow" csv:"volumetric_flow"` // m3/s
	DuctArea       float64         `json:"duct_area" csv:"duct_area"`             // m2
	GasVelocity    float64         `json:"gas_velocity" csv:"gas_velocity"`       // m/s
	ReynoldsNumber float64         `json:"reynolds_number" csv:"reynolds_number"`
	FrictionFactor float64         `json:"friction_factor" csv:"friction_factor"`
	FrictionSolver IterativeResult `json:"friction_solver" csv:"-"`
	PressureDrop   float64         `json:"pressure_drop" csv:"pressure_drop"` // Pa/m

	// heat transfer
	ThermalResistance       float64 `json:"thermal_resistance" csv:"thermal_resistance"`             // m K / W
	HeatTransferCoefficient float64 `json:"heat_transfer_coefficient" csv:"heat_transfer_coefficient"` // W / m K
	HeatLossPerMeter        float64 `json:"heat_loss_per_meter" csv:"heat_loss_per_meter"`           // W/m
	ExternalWallTemp        float64 `json:"external_wall_temp" csv:"external_wall_temp"`             // K
	RefractoryGradient      float64 `json:"refractory_gradient" csv:"refractory_gradient"`           // K
	InsulationEfficiency    float64 `json:"insulation_efficiency" csv:"insulation_efficiency"`       // %

	// emissions
	Co2EmissionFactor      float64 `json:"co2_emission_factor" csv:"co2_emission_factor"` // kg CO2 / kg fuel
	Co2ConcentrationDry    float64 `json:"co2_concentration_dry" csv:"co2_concentration_dry"` // % vol, dry basis
	VolumetricHeatingValue float64 `json:"volumetric_heating_value" csv:"volumetric_heating_value"` // kJ/m3

	// mass balance
	FlowRateKgS   float64 `json:"flow_rate_kg_s" csv:"flow_rate_kg_s"`   // kg/s
	MassFlowGases float64 `json:"mass_flow_gases" csv:"mass_flow_gases"` // kg/s
}

/*
Calculator for one biomass combustion case.

    Holds the normalized input record and nothing else; every invocation of
    calculate_all produces an independent result record, so a calculator
    may be shared across goroutines.
*/
type CombustionCalculator struct {
	input *BiomassInput
}

/*
Args:
	input: validated input record; the dry-basis composition is normalized
	       to exactly 100% on construction (boundary decision, the equation
	       library never rescales)
*/
func NewCombustionCalculator(input *BiomassInput) *CombustionCalculator {
	return &CombustionCalculator{input: input.normalized()}
}

/*
Solve the adiabatic flame temperature from the energy balance.

    Args:
        pci: lower heating value of the fuel, kJ/kg
        products: combustion product masses, kg / kg fuel

    Returns:
        adiabatic flame temperature, K, with convergence information

    Notes:
        Finds T where the released chemical energy equals the sensible heat
        absorbed by the products, PCI = sum(m_i Cp_i (T - 298)). Fixed-point
        iteration seeded at 2000 K, at most 20 iterations, tolerance 0.5 K.
        The result is floored at 298 K.
*/
func solve_adiabatic_flame_temperature(pci float64, products CombustionProducts) IterativeResult {
	props := get_gas_properties()

	// total heat capacity of the products, kJ/(K kg fuel)
	heat_capacity := products.CO2*props[GasCO2].Cp +
		products.H2O*props[GasH2O].Cp +
		products.SO2*props[GasSO2].Cp +
		products.O2Excess*props[GasO2].Cp +
		products.N2*props[GasN2].Cp

	if heat_capacity <= 0.0 {
		return IterativeResult{Value: 298.0, Converged: true, Iterations: 0}
	}

	t := 2000.0
	for i := 1; i <= 20; i++ {
		t_new := 298.0 + pci/heat_capacity

		if math.Abs(t_new-t) < 0.5 {
			return IterativeResult{Value: math.Max(t_new, 298.0), Converged: true, Iterations: i}
		}
		t = t_new
	}

	return IterativeResult{Value: math.Max(t, 298.0), Converged: false, Iterations: 20}
}

/*
Run the full eight-stage calculation pipeline.

    Returns:
        one complete result record

    Notes:
        The stage order is load-bearing: every later stage consumes values
        produced by an earlier one. Out-of-range inputs are not rejected
        here (the boundary validates); degenerate zero denominators are
        guarded in place and yield zero results for the dependent
        quantities.
*/
func (self *CombustionCalculator) calculate_all() *CombustionResults {
	in := self.input
	r := &CombustionResults{}

	// ---- stage 1: fuel properties ----

	moisture_factor := (100.0 - in.Moisture) / 100.0
	r.CompositionWet = WetComposition{
		C:   in.Carbon * moisture_factor,
		H:   in.Hydrogen * moisture_factor,
		O:   in.Oxygen * moisture_factor,
		N:   in.Nitrogen * moisture_factor,
		S:   in.Sulfur * moisture_factor,
		Ash: in.Ash * moisture_factor,
		H2O: in.Moisture,
	}

	heating := get_dulong_heating_value(in.Carbon, in.Hydrogen, in.Oxygen, in.Sulfur, in.Moisture)
	r.Pcs = heating.PCS
	r.PciCalculated = heating.PCI

	r.TheoreticalAir = get_theoretical_air_fuel_ratio(in.Carbon, in.Hydrogen, in.Oxygen, in.Sulfur)
	r.RealAir = r.TheoreticalAir * (1.0 + in.ExcessAir/100.0)
	r.ExcessAirPercentage = in.ExcessAir

	// ---- stage 2: air properties ----

	r.AtmosphericPressure = get_pressure_altitude(in.Altitude)

	t_amb_k := in.DryBulbTemp + 273.15
	pressure_pa := r.AtmosphericPressure * kpa_to_pa
	r.AirDensity = pressure_pa / (get_r_air() * t_amb_k)

	r.AbsoluteHumidity = get_absolute_humidity(in.RelativeHumidity, in.DryBulbTemp, r.AtmosphericPressure)
	r.AirEnthalpy = get_moist_air_enthalpy(in.DryBulbTemp, r.AbsoluteHumidity)

	// ---- stage 3: stoichiometry ----

	products := get_combustion_products(
		in.Carbon, in.Hydrogen, in.Oxygen, in.Sulfur,
		in.Moisture, in.Ash, in.ExcessAir,
	)
	r.Co2 = products.CO2
	r.H2o = products.H2O
	r.So2 = products.SO2
	r.O2Excess = products.O2Excess
	r.N2 = products.N2
	r.TotalGasMass = products.TotalGases

	// ---- stage 4: mass balance ----

	r.FlowRateKgS = in.FlowRate * ton_to_kg / hour_to_sec
	r.MassFlowGases = r.FlowRateKgS * (1.0 + r.RealAir)

	// ---- stage 5: energy balance ----

	// kW
	total_energy := r.FlowRateKgS * in.ReportedPCI
	useful_energy := total_energy * in.FurnaceEfficiency / 100.0

	r.TotalEnergyReleased = total_energy / 1000.0
	r.UsefulEnergy = useful_energy / 1000.0
	r.ChimneyLosses = (total_energy - useful_energy) / 1000.0
	r.RealEfficiency = in.FurnaceEfficiency

	r.AdiabaticSolver = solve_adiabatic_flame_temperature(r.PciCalculated, products)
	r.AdiabaticFlameTemp = r.AdiabaticSolver.Value

	// outlet gas temperature from the useful energy and an assumed average
	// product specific heat
	temp_rise := useful_energy / (r.MassFlowGases * get_cp_gases_avg())
	r.OutletGasTemp = t_amb_k + temp_rise

	// ---- stage 6: fluid dynamics ----

	temp_avg_k := (r.OutletGasTemp + t_amb_k) / 2.0
	gas_composition := map[string]float64{
		GasCO2: r.Co2,
		GasH2O: r.H2o,
		GasSO2: r.So2,
		GasO2:  r.O2Excess,
		GasN2:  r.N2,
	}
	r.GasDensity = get_gas_mixture_density(temp_avg_k, pressure_pa, gas_composition)

	diameter_m := in.DuctDiameter * inch_to_m
	r.DuctArea = math.Pi * diameter_m * diameter_m / 4.0

	if r.GasDensity > 0.0 {
		r.VolumetricFlow = r.MassFlowGases / r.GasDensity
		r.GasVelocity = r.VolumetricFlow / r.DuctArea
		r.ReynoldsNumber = get_reynolds_number(r.GasVelocity, diameter_m, r.GasDensity)
		r.FrictionSolver = get_colebrook_friction_factor(
			r.ReynoldsNumber, diameter_m, get_refractory_properties().Roughness)
		r.FrictionFactor = r.FrictionSolver.Value
		r.PressureDrop = get_pressure_drop_per_length(
			r.FrictionFactor, r.GasDensity, r.GasVelocity, diameter_m)
	}

	// ---- stage 7: heat transfer ----

	refractory := get_refractory_properties()

	r_conv_int := 1.0 / (get_h_internal() * math.Pi * diameter_m)
	r_cond := math.Log((diameter_m/2.0+refractory.Thickness)/(diameter_m/2.0)) /
		(2.0 * math.Pi * refractory.ThermalConductivity)
	r_conv_ext := 1.0 / (get_h_external() * math.Pi * (diameter_m + 2.0*refractory.Thickness))

	r.ThermalResistance = r_conv_int + r_cond + r_conv_ext
	r.HeatTransferCoefficient = 1.0 / r.ThermalResistance

	delta_t := r.OutletGasTemp - t_amb_k
	r.HeatLossPerMeter = r.HeatTransferCoefficient * delta_t

	r.ExternalWallTemp = t_amb_k + r.HeatLossPerMeter*r_conv_ext
	r.RefractoryGradient = r.HeatLossPerMeter * r_cond

	heat_loss_bare := get_h_external() * math.Pi * diameter_m * delta_t
	if heat_loss_bare != 0.0 {
		r.InsulationEfficiency = (heat_loss_bare - r.HeatLossPerMeter) / heat_loss_bare * 100.0
	}

	// ---- stage 8: emissions ----

	r.Co2EmissionFactor = 44.0 / 12.0 * r.CompositionWet.C / 100.0

	dry_gases := r.Co2 + r.O2Excess + r.N2 + r.So2
	if dry_gases > 0.0 {
		r.Co2ConcentrationDry = r.Co2 / dry_gases * 100.0
	}

	r.VolumetricHeatingValue = r.PciCalculated * get_fuel_bulk_density()

	// volumetric fractions of the five product species, derived last
	self.fill_volumetric_fractions(r)

	return r
}

/*
Derive the volumetric fractions of the five product species from their
mass to molar-mass ratios, normalized to the total.

    Notes:
        All five fractions are reported as zero when the products carry no
        moles at all (degenerate empty-product input).
*/
func (self *CombustionCalculator) fill_volumetric_fractions(r *CombustionResults) {
	props := get_gas_properties()

	co2_mol := r.Co2 / props[GasCO2].MolarMass
	h2o_mol := r.H2o / props[GasH2O].MolarMass
	so2_mol := r.So2 / props[GasSO2].MolarMass
	o2_mol := r.O2Excess / props[GasO2].MolarMass
	n2_mol := r.N2 / props[GasN2].MolarMass

	total := co2_mol + h2o_mol + so2_mol + o2_mol + n2_mol
	if total <= 0.0 {
		return
	}

	r.Co2FractionVol = co2_mol / total * 100.0
	r.H2oFractionVol = h2o_mol / total * 100.0
	r.So2FractionVol = so2_mol / total * 100.0
	r.O2FractionVol = o2_mol / total * 100.0
	r.N2FractionVol = n2_mol / total * 100.0
}
