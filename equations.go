package main

import (
	"math"
)

/*
Result of a fixed-cap iterative solver.

    Value: the final iterate (also returned on non-convergence)
    Converged: whether successive iterates met the tolerance within the cap
    Iterations: number of iterations actually performed
*/
type IterativeResult struct {
	Value      float64 `json:"value"`
	Converged  bool    `json:"converged"`
	Iterations int     `json:"iterations"`
}

/*
Calculate atmospheric pressure from altitude.

    Args:
        altitude_m: altitude above sea level, m

    Returns:
        atmospheric pressure, kPa

    Notes:
        Standard-atmosphere troposphere model below 11000 m,
        P = P0 (1 - L h / T0)^(g M / (R L)).
        Above 11000 m an exponential decay with an 8500 m scale height is
        used instead.
*/
func get_pressure_altitude(altitude_m float64) float64 {
	const (
		p0 = 101.325 // sea level pressure, kPa
		l  = 0.0065  // temperature lapse rate, K/m
		t0 = 288.15  // standard temperature, K
		g  = 9.81    // gravitational acceleration, m/s2
		m  = 0.02896 // molar mass of air, kg/mol
	)

	if altitude_m < 11000.0 {
		exponent := g * m / (get_r_universal() * l)
		temp_ratio := 1.0 - l*altitude_m/t0
		return p0 * math.Pow(temp_ratio, exponent)
	}

	return p0 * math.Exp(-altitude_m/8500.0)
}

/*
Heating values of a solid fuel.

    PCS: higher heating value, kJ/kg
    PCI: lower heating value, kJ/kg
    WaterFromCombustion: water formed per 100 kg of fuel (9H + moisture), kg
*/
type HeatingValues struct {
	PCS                 float64 `json:"pcs"`
	PCI                 float64 `json:"pci"`
	WaterFromCombustion float64 `json:"water_from_combustion"`
}

/*
Calculate the higher and lower heating values with the Dulong correlation.

    Args:
        carbon: carbon content, % dry basis
        hydrogen: hydrogen content, % dry basis
        oxygen: oxygen content, % dry basis
        sulfur: sulfur content, % dry basis
        moisture: total moisture content, %

    Returns:
        heating values, kJ/kg

    Notes:
        PCS = 338.2 C + 1442.8 (H - O/8) + 94.2 S
        PCI = PCS - 2442 (9 H + moisture) / 100
        The composition is assumed to be normalized to 100% at the boundary;
        this function performs no rescaling of its own.
*/
func get_dulong_heating_value(carbon, hydrogen, oxygen, sulfur, moisture float64) HeatingValues {
	pcs := 338.2*carbon + 1442.8*(hydrogen-oxygen/8.0) + 94.2*sulfur

	// water of combustion plus fuel moisture, kg per 100 kg fuel
	water := 9.0*hydrogen + moisture

	pci := pcs - get_hv_water()*water/100.0

	return HeatingValues{
		PCS:                 pcs,
		PCI:                 pci,
		WaterFromCombustion: water,
	}
}

/*
Calculate the theoretical (stoichiometric) air to fuel mass ratio.

    Args:
        carbon: carbon content, %
        hydrogen: hydrogen content, %
        oxygen: oxygen content, %
        sulfur: sulfur content, %

    Returns:
        theoretical air, kg air / kg fuel
*/
func get_theoretical_air_fuel_ratio(carbon, hydrogen, oxygen, sulfur float64) float64 {
	// stoichiometric oxygen demand, kg O2 / kg fuel
	o2_required := (2.667*carbon + 8.0*hydrogen - 1.333*oxygen + 2.0*sulfur) / 100.0

	return o2_required / get_o2_mass_fraction()
}

/*
Combustion product masses per kg of fuel as fired.

    All masses in kg / kg fuel.
*/
type CombustionProducts struct {
	CO2        float64 `json:"co2"`
	H2O        float64 `json:"h2o"`
	SO2        float64 `json:"so2"`
	O2Excess   float64 `json:"o2_excess"`
	N2         float64 `json:"n2"`
	Ash        float64 `json:"ash"`
	AirReal    float64 `json:"air_real"`
	TotalGases float64 `json:"total_gases"`
}

/*
Calculate the combustion product masses per kg of fuel.

    Args:
        carbon: carbon content, % dry basis
        hydrogen: hydrogen content, % dry basis
        oxygen: oxygen content, % dry basis
        sulfur: sulfur content, % dry basis
        moisture: total moisture content, %
        ash: ash content, % dry basis
        excess_air: excess air, %

    Returns:
        combustion product masses, kg / kg fuel

    Notes:
        The moisture factor (100 - moisture)/100 converts the dry-basis
        composition to the wet (as fired) basis. CO2 uses the 44/12 mass
        ratio, SO2 the 64/32 ratio. H2O combines the water of combustion
        (9H) with the fuel moisture.
*/
func get_combustion_products(carbon, hydrogen, oxygen, sulfur, moisture, ash, excess_air float64) CombustionProducts {
	moisture_factor := (100.0 - moisture) / 100.0

	co2 := 3.67 * carbon * moisture_factor / 100.0
	h2o_combustion := 9.0 * hydrogen * moisture_factor / 100.0
	h2o_fuel := moisture / 100.0
	h2o := h2o_combustion + h2o_fuel
	so2 := 2.0 * sulfur * moisture_factor / 100.0

	// theoretical air on the wet basis
	air_theoretical := get_theoretical_air_fuel_ratio(
		carbon*moisture_factor,
		hydrogen*moisture_factor,
		oxygen*moisture_factor,
		sulfur*moisture_factor,
	)

	air_real := air_theoretical * (1.0 + excess_air/100.0)

	o2_excess := get_o2_mass_fraction() * air_theoretical * excess_air / 100.0
	n2 := get_n2_mass_fraction() * air_real

	ash_mass := ash * moisture_factor / 100.0

	return CombustionProducts{
		CO2:        co2,
		H2O:        h2o,
		SO2:        so2,
		O2Excess:   o2_excess,
		N2:         n2,
		Ash:        ash_mass,
		AirReal:    air_real,
		TotalGases: co2 + h2o + so2 + o2_excess + n2,
	}
}

/*
Calculate the density of a gas mixture with the ideal gas law.

    Args:
        temp_k: gas temperature, K
        pressure_pa: absolute pressure, Pa
        composition: species name to mass, kg (any consistent basis)

    Returns:
        density of the mixture, kg/m3

    Notes:
        rho = P M_avg / (R T) with the composition-weighted average molar
        mass. Species absent from the property table are ignored. Returns
        zero when the mixture carries no moles at all.
*/
func get_gas_mixture_density(temp_k float64, pressure_pa float64, composition map[string]float64) float64 {
	props := get_gas_properties()

	var total_moles, total_mass float64
	for gas, mass_kg := range composition {
		p, ok := props[gas]
		if !ok {
			continue
		}
		total_moles += mass_kg / (p.MolarMass / 1000.0)
		total_mass += mass_kg
	}

	if total_moles <= 0.0 {
		return 0.0
	}

	avg_molar_mass := total_mass / total_moles

	return pressure_pa * avg_molar_mass / (get_r_universal() * temp_k)
}

/*
Calculate the Reynolds number of the duct flow.

    Args:
        velocity: gas velocity, m/s
        diameter_m: internal duct diameter, m
        density: gas density, kg/m3

    Returns:
        Reynolds number, -
*/
func get_reynolds_number(velocity, diameter_m, density float64) float64 {
	return density * velocity * diameter_m / get_mu_air()
}

/*
Calculate the Darcy friction factor with the Colebrook-White equation.

    Args:
        re: Reynolds number, -
        diameter_m: internal duct diameter, m
        roughness: absolute roughness of the duct, m

    Returns:
        friction factor with convergence information

    Notes:
        Laminar branch f = 64/Re below Re = 2300. Turbulent flow uses
        fixed-point iteration seeded at f = 0.02 with at most 10 iterations;
        successive iterates closer than 1e-6 count as converged. On
        non-convergence the last iterate is returned with Converged false.
*/
func get_colebrook_friction_factor(re, diameter_m, roughness float64) IterativeResult {
	if re < 2300.0 {
		return IterativeResult{Value: 64.0 / re, Converged: true, Iterations: 0}
	}

	f := 0.02
	for i := 1; i <= 10; i++ {
		term := roughness/diameter_m + 3.7*re*math.Sqrt(f)
		f_new := 1.0 / math.Pow(-2.0*math.Log10(term), 2.0)

		if math.Abs(f_new-f) < 1e-6 {
			return IterativeResult{Value: f_new, Converged: true, Iterations: i}
		}
		f = f_new
	}

	return IterativeResult{Value: f, Converged: false, Iterations: 10}
}

/*
Calculate the pressure drop per unit duct length (Darcy-Weisbach).

    Args:
        friction_factor: Darcy friction factor, -
        density: gas density, kg/m3
        velocity: gas velocity, m/s
        diameter_m: internal duct diameter, m

    Returns:
        pressure drop per unit length, Pa/m
*/
func get_pressure_drop_per_length(friction_factor, density, velocity, diameter_m float64) float64 {
	return friction_factor * (1.0 / diameter_m) * (density * velocity * velocity / 2.0)
}
