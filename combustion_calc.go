package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

/*
Load the input record from a JSON file or an HTTP URL.

    Args:
        input_path: path or URL of the input JSON; the reference bagasse
                    input is used when empty

    Returns:
        the input record, or the read/decode error
*/
func load_biomass_input(input_path string) (*BiomassInput, error) {
	in := default_biomass_input()
	if input_path == "" {
		log.Printf("no input file given, using the reference bagasse input")
		return in, nil
	}

	var bytes []byte
	if strings.HasPrefix(input_path, "http") {
		resp, err := http.Get(input_path)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		bytes, err = ioutil.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
	} else {
		file, err := os.Open(input_path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		bytes, err = ioutil.ReadAll(file)
		if err != nil {
			return nil, err
		}
	}

	if err := json.Unmarshal(bytes, in); err != nil {
		return nil, err
	}

	return in, nil
}

/*
Run one command of the calculator.

    Args:
        cfg: application configuration
        mode: calc, sweep, multi, optimize or serve
        input_path: input JSON path or URL
        param: swept/optimized parameter name (sweep, multi, optimize)
        range_percent: sweep half width, %
        num_points: sweep sample count
        objective: optimization objective name
*/
func run(
	cfg *Config,
	mode string,
	input_path string,
	param string,
	range_percent float64,
	num_points int,
	objective string,
) {
	if mode == "serve" {
		upgrader := websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		}
		NewServer(cfg.Addr, upgrader).Serve()
		return
	}

	// ---- preparation ----

	if _, err := os.Stat(cfg.OutputDataDir); os.IsNotExist(err) {
		os.Mkdir(cfg.OutputDataDir, 0755)
	}

	log.Printf("Load input data")
	in, err := load_biomass_input(input_path)
	if err != nil {
		log.Fatalf("load input: %v", err)
	}
	if err := in.validate(); err != nil {
		log.Fatalf("invalid input: %v", err)
	}

	recorder := NewRecorder(cfg.OutputDataDir)

	// ---- calculation ----

	switch mode {
	case "calc":
		log.Printf("Run the combustion pipeline")
		results := NewCombustionCalculator(in).calculate_all()

		log.Printf("PCS: %.0f kJ/kg, PCI: %.0f kJ/kg", results.Pcs, results.PciCalculated)
		log.Printf("adiabatic flame temperature: %.0f K (converged: %t)",
			results.AdiabaticFlameTemp, results.AdiabaticSolver.Converged)
		log.Printf("outlet gas temperature: %.0f K", results.OutletGasTemp)
		log.Printf("gas velocity: %.2f m/s, pressure drop: %.2f Pa/m",
			results.GasVelocity, results.PressureDrop)

		if err := recorder.save_results(results, "combustion_results.csv"); err != nil {
			log.Fatalf("save results: %v", err)
		}

	case "sweep":
		parameter, err := parse_parameter(param)
		if err != nil {
			log.Fatalf("%v", err)
		}

		log.Printf("Sweep `%s` over +/- %.0f%%, %d points", parameter, range_percent, num_points)
		analysis, err := NewSensitivityAnalyzer(in).analyze_parameter(parameter, range_percent, num_points)
		if err != nil {
			log.Fatalf("%v", err)
		}

		log.Printf("max relative sensitivity: temperature %.1f%%, velocity %.1f%%, efficiency %.1f%%",
			analysis.Metrics.MaxTemperatureSens,
			analysis.Metrics.MaxVelocitySens,
			analysis.Metrics.MaxEfficiencySens)

		name := fmt.Sprintf("sweep_%s.csv", parameter)
		if err := recorder.save_sweep(analysis.Results, name); err != nil {
			log.Fatalf("save sweep: %v", err)
		}

	case "multi":
		parameters := get_sweepable_parameters()
		if param != "" {
			parameters = parameters[:0]
			for _, name := range strings.Split(param, ",") {
				p, err := parse_parameter(strings.TrimSpace(name))
				if err != nil {
					log.Fatalf("%v", err)
				}
				parameters = append(parameters, p)
			}
		}

		log.Printf("Multi-parameter analysis of %d parameters", len(parameters))
		analysis, err := NewSensitivityAnalyzer(in).multi_param_analysis(parameters, range_percent)
		if err != nil {
			log.Fatalf("%v", err)
		}

		for _, rec := range analysis.Recommendations {
			log.Printf("recommendation: %s", rec)
		}

		if err := recorder.save_ranking(analysis.SensitivityRanking, "sensitivity_ranking.csv"); err != nil {
			log.Fatalf("save ranking: %v", err)
		}

	case "optimize":
		parameter, err := parse_parameter(param)
		if err != nil {
			log.Fatalf("%v", err)
		}
		obj, err := parse_objective(objective)
		if err != nil {
			log.Fatalf("%v", err)
		}

		log.Printf("Optimize `%s` for objective `%s`", parameter, obj)
		outcome := NewOptimizer(in).optimize_parameter(parameter, obj, nil)

		if !outcome.Feasible {
			log.Printf("no feasible solution, keeping the base value %.3f", outcome.OriginalValue)
		} else {
			log.Printf("optimal value: %.3f %s (base %.3f, improvement %.3f)",
				outcome.OptimalValue, parameter.get_unit(), outcome.OriginalValue, outcome.Improvement)
		}

		if err := recorder.save_results(outcome.Results, "optimal_results.csv"); err != nil {
			log.Fatalf("save results: %v", err)
		}

	default:
		log.Fatalf("unknown mode `%s`", mode)
	}
}

func main() {
	var input_path string
	flag.StringVar(&input_path, "input", "", "input JSON file or URL (reference bagasse input when empty)")

	var config_path string
	flag.StringVar(&config_path, "config", "conf/config.ini", "configuration file")

	var mode string
	flag.StringVar(&mode, "mode", "calc", "calc, sweep, multi, optimize or serve")

	var param string
	flag.StringVar(&param, "param", "", "parameter to sweep or optimize")

	var range_percent float64
	flag.Float64Var(&range_percent, "range", 0, "sweep half width in % (configuration default when 0)")

	var num_points int
	flag.IntVar(&num_points, "points", 0, "sweep sample count (configuration default when 0)")

	var objective string
	flag.StringVar(&objective, "objective", "efficiency", "optimization objective: efficiency, temperature or velocity")

	flag.Parse()

	cfg := load_config(config_path)
	if range_percent == 0 {
		range_percent = cfg.RangePercent
	}
	if num_points == 0 {
		num_points = cfg.NumPoints
	}

	start := time.Now()

	run(cfg, mode, input_path, param, range_percent, num_points, objective)

	log.Printf("elapsed_time: %v", time.Since(start))
}
