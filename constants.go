package main

// Universal gas constant, J/(mol K)
func get_r_universal() float64 {
	return 8.314
}

// Specific gas constant of dry air, J/(kg K)
func get_r_air() float64 {
	return 287.05
}

// Latent heat of vaporization of water at 25 degree C, kJ/kg
func get_hv_water() float64 {
	return 2442.0
}

// Dynamic viscosity of air near ambient temperature, Pa s
func get_mu_air() float64 {
	return 1.8e-5
}

// Oxygen mass fraction of dry air
func get_o2_mass_fraction() float64 {
	return 0.232
}

// Nitrogen mass fraction of dry air
func get_n2_mass_fraction() float64 {
	return 0.768
}

// Conversion factors
const (
	ton_to_kg   = 1000.0
	hour_to_sec = 3600.0
	inch_to_m   = 0.0254
	mmhg_to_kpa = 0.133322
	kpa_to_pa   = 1000.0
)

// Antoine coefficients for water (pressure in mmHg, temperature in degree C)
type AntoineCoefficients struct {
	A float64
	B float64
	C float64
}

func get_antoine_water() AntoineCoefficients {
	return AntoineCoefficients{A: 8.07131, B: 1730.63, C: 233.426}
}

/*
Properties of a combustion gas species at 298 K.

	MolarMass: molar mass, g/mol
	Cp: specific heat at constant pressure, kJ/(kg K)
	Density: density at standard conditions, kg/m3
*/
type GasProperties struct {
	MolarMass float64
	Cp        float64
	Density   float64
}

// Combustion product species names
const (
	GasCO2 = "CO2"
	GasH2O = "H2O"
	GasSO2 = "SO2"
	GasO2  = "O2"
	GasN2  = "N2"
)

// Typical gas properties at 298 K
func get_gas_properties() map[string]GasProperties {
	return map[string]GasProperties{
		GasCO2: {MolarMass: 44.01, Cp: 0.844, Density: 1.977},
		GasH2O: {MolarMass: 18.015, Cp: 1.86, Density: 0.804},
		GasO2:  {MolarMass: 31.999, Cp: 0.918, Density: 1.429},
		GasN2:  {MolarMass: 28.014, Cp: 1.04, Density: 1.251},
		GasSO2: {MolarMass: 64.066, Cp: 0.64, Density: 2.927},
	}
}

/*
Properties of the refractory lining of the flue gas duct.

	ThermalConductivity: W/(m K)
	Thickness: m
	Emissivity: -
	Roughness: absolute roughness of the internal surface, m
*/
type RefractoryProperties struct {
	ThermalConductivity float64
	Thickness           float64
	Emissivity          float64
	Roughness           float64
}

func get_refractory_properties() RefractoryProperties {
	return RefractoryProperties{
		ThermalConductivity: 0.5,
		Thickness:           0.15,
		Emissivity:          0.8,
		Roughness:           0.00015,
	}
}

// Internal convection coefficient of the duct, W/(m2 K)
func get_h_internal() float64 {
	return 50.0
}

// External convection coefficient of the duct, W/(m2 K)
func get_h_external() float64 {
	return 10.0
}

// Assumed average specific heat of the combustion gases, kJ/(kg K)
func get_cp_gases_avg() float64 {
	return 1.1
}

// Typical bulk density of bagasse, kg/m3
func get_fuel_bulk_density() float64 {
	return 1200.0
}

/*
Design limits used by the analysis layer when no explicit constraint is
supplied by the caller.

	MaxVelocity: maximum duct gas velocity, m/s
	MaxPressureDrop: maximum pressure drop, Pa/m
	MinEfficiency: minimum acceptable furnace efficiency, %
	MaxTempExternal: maximum external wall temperature, degree C
*/
type DesignLimits struct {
	MaxVelocity     float64
	MaxPressureDrop float64
	MinEfficiency   float64
	MaxTempExternal float64
}

func get_design_limits() DesignLimits {
	return DesignLimits{
		MaxVelocity:     20.0,
		MaxPressureDrop: 500.0,
		MinEfficiency:   70.0,
		MaxTempExternal: 60.0,
	}
}
