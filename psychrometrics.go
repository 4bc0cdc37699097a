package main

import (
	"math"
)

/*
Calculate the saturated vapor pressure of water using the Antoine equation.

    Args:
        t_c: dry bulb temperature, degree C

    Returns:
        saturated vapor pressure, mmHg

    Notes:
        log10(P) = A - B / (C + T)
        The coefficients are fitted for the ambient range the system targets
        (about -20 to 50 degree C). The function itself performs no bounds
        checking; callers validate the temperature at the boundary.
*/
func get_saturated_vapor_pressure(t_c float64) float64 {
	a := get_antoine_water()

	log10_p := a.A - a.B/(a.C+t_c)

	return math.Pow(10.0, log10_p)
}

/*
Calculate the absolute humidity of moist air.

    Args:
        rh: relative humidity, %
        t_c: dry bulb temperature, degree C
        p_atm_kpa: atmospheric pressure, kPa

    Returns:
        absolute humidity, kg/kgDA

    Notes:
        w = 0.622 p_v / (p_atm - p_v)
        Diverges as the partial vapor pressure approaches the atmospheric
        pressure; relative humidity and altitude are kept within physically
        sane bounds at the boundary.
*/
func get_absolute_humidity(rh float64, t_c float64, p_atm_kpa float64) float64 {
	// saturated vapor pressure, mmHg
	p_sat := get_saturated_vapor_pressure(t_c)

	// partial vapor pressure, mmHg
	p_v := rh / 100.0 * p_sat

	// partial vapor pressure, kPa
	p_v_kpa := p_v * mmhg_to_kpa

	return 0.622 * p_v_kpa / (p_atm_kpa - p_v_kpa)
}

/*
Calculate the specific enthalpy of moist air.

    Args:
        t_c: dry bulb temperature, degree C
        x: absolute humidity, kg/kgDA

    Returns:
        enthalpy of the moist air, kJ/kgDA
*/
func get_moist_air_enthalpy(t_c float64, x float64) float64 {
	h_air := 1.006 * t_c
	h_water := x * (2501.0 + 1.86*t_c)

	return h_air + h_water
}
