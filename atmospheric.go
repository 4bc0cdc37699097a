package main

import (
	_ "embed"
	"sort"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

//go:embed cities.csv
var cities_csv []byte

/*
Reference climate of a city.

    Altitude in m, average temperature in degree C, average relative
    humidity in %, pressure in mmHg, air density in kg/m3.
*/
type City struct {
	Name        string  `csv:"name" json:"name"`
	Altitude    float64 `csv:"altitude" json:"altitude"`
	AvgTemp     float64 `csv:"avg_temp" json:"avg_temp"`
	AvgHumidity float64 `csv:"avg_humidity" json:"avg_humidity"`
	Pressure    float64 `csv:"pressure" json:"pressure"`
	AirDensity  float64 `csv:"air_density" json:"air_density"`
}

var (
	city_table      []*City
	city_table_once sync.Once
)

// The embedded reference-city table.
func get_city_table() []*City {
	city_table_once.Do(func() {
		if err := gocsv.UnmarshalBytes(cities_csv, &city_table); err != nil {
			log.Fatalf("load city table: %v", err)
		}
	})
	return city_table
}

/*
Look up the reference climate of a city by name (case-insensitive).

    Cities not present in the table fall back to Bogotá.
*/
func get_city_conditions(name string) *City {
	var bogota *City
	for _, c := range get_city_table() {
		if strings.EqualFold(c.Name, name) {
			return c
		}
		if c.Name == "Bogotá" {
			bogota = c
		}
	}
	return bogota
}

// All reference cities, ordered by altitude.
func get_all_cities() []*City {
	table := get_city_table()
	cities := make([]*City, len(table))
	copy(cities, table)

	sort.SliceStable(cities, func(i, j int) bool {
		return cities[i].Altitude < cities[j].Altitude
	})

	return cities
}

// Atmospheric properties derived for one location.
type AtmosphericConditions struct {
	Altitude         float64 `json:"altitude"`          // m
	Temperature      float64 `json:"temperature"`       // degree C
	RelativeHumidity float64 `json:"relative_humidity"` // %
	Pressure         float64 `json:"pressure"`          // kPa
	AirDensity       float64 `json:"air_density"`       // kg/m3
	AbsoluteHumidity float64 `json:"absolute_humidity"` // kg/kgDA
	AirEnthalpy      float64 `json:"air_enthalpy"`      // kJ/kgDA
	VaporPressure    float64 `json:"vapor_pressure"`    // mmHg
	OxygenFraction   float64 `json:"oxygen_fraction"`   // volume fraction
}

/*
Calculate the atmospheric properties of a custom location.

    Args:
        altitude: altitude above sea level, m
        temperature: dry bulb temperature, degree C
        relative_humidity: relative humidity, %

    Returns:
        the derived atmospheric conditions
*/
func calculate_custom_conditions(altitude, temperature, relative_humidity float64) *AtmosphericConditions {
	pressure := get_pressure_altitude(altitude)

	temp_k := temperature + 273.15
	air_density := pressure * kpa_to_pa / (get_r_air() * temp_k)

	abs_humidity := get_absolute_humidity(relative_humidity, temperature, pressure)

	return &AtmosphericConditions{
		Altitude:         altitude,
		Temperature:      temperature,
		RelativeHumidity: relative_humidity,
		Pressure:         pressure,
		AirDensity:       air_density,
		AbsoluteHumidity: abs_humidity,
		AirEnthalpy:      get_moist_air_enthalpy(temperature, abs_humidity),
		VaporPressure:    get_saturated_vapor_pressure(temperature),
		OxygenFraction:   get_oxygen_fraction(altitude),
	}
}

/*
Available oxygen volume fraction at altitude.

    Linear decrease of 0.000005 per meter from the 0.21 sea-level value,
    floored at 0.15.
*/
func get_oxygen_fraction(altitude float64) float64 {
	fraction := 0.21 - altitude*0.000005
	if fraction < 0.15 {
		return 0.15
	}
	return fraction
}

/*
Correction factor for volumetric air flow at altitude, sea-level pressure
over local pressure (constant temperature assumed).
*/
func get_altitude_correction_factor(altitude float64) float64 {
	return 101.325 / get_pressure_altitude(altitude)
}

// Range check outcome of a set of atmospheric conditions.
type ConditionsValidation struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

/*
Validate atmospheric conditions against the supported ranges.

    Hard violations land in Errors and clear IsValid; soft findings land
    in Warnings only.
*/
func validate_conditions(altitude, temperature, relative_humidity float64) *ConditionsValidation {
	v := &ConditionsValidation{
		IsValid:  true,
		Warnings: make([]string, 0),
		Errors:   make([]string, 0),
	}

	if altitude < 0.0 || altitude > 5000.0 {
		v.Errors = append(v.Errors, "altitude out of range (0-5000 m)")
		v.IsValid = false
	}
	if temperature < -20.0 || temperature > 50.0 {
		v.Errors = append(v.Errors, "temperature out of range (-20 to 50 degree C)")
		v.IsValid = false
	}
	if relative_humidity < 0.0 || relative_humidity > 100.0 {
		v.Errors = append(v.Errors, "relative humidity must be between 0 and 100%")
		v.IsValid = false
	}

	if altitude > 3000.0 {
		v.Warnings = append(v.Warnings, "high altitude may require significant combustion air adjustments")
	}
	if relative_humidity > 90.0 {
		v.Warnings = append(v.Warnings, "high humidity may affect combustion efficiency")
	}
	if get_pressure_altitude(altitude) < 70.0 {
		v.Warnings = append(v.Warnings, "low atmospheric pressure detected")
	}

	return v
}
