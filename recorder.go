package main

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// One sweep sample as a CSV row.
type SweepRow struct {
	ParameterValue float64 `csv:"parameter_value"`
	Temperature    float64 `csv:"temperature"`    // degree C
	Velocity       float64 `csv:"velocity"`       // m/s
	PressureDrop   float64 `csv:"pressure_drop"`  // Pa/m
	Efficiency     float64 `csv:"efficiency"`     // %
}

/*
Writes calculation output as CSV files into one output directory.

    The recorder only formats and saves; it never mutates the records it
    is given.
*/
type Recorder struct {
	output_data_dir string
}

func NewRecorder(output_data_dir string) *Recorder {
	return &Recorder{output_data_dir: output_data_dir}
}

func (self *Recorder) save_csv(name string, in interface{}) error {
	path := filepath.Join(self.output_data_dir, name)
	log.Printf("Save `%s`", path)

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(in, file)
}

// Save one result record as a single-row CSV file.
func (self *Recorder) save_results(r *CombustionResults, name string) error {
	rows := []*CombustionResults{r}
	return self.save_csv(name, &rows)
}

// Save a sweep with one row per sample, in sample order.
func (self *Recorder) save_sweep(s *SensibilityResults, name string) error {
	rows := make([]*SweepRow, len(s.ParameterValues))
	for i, value := range s.ParameterValues {
		rows[i] = &SweepRow{
			ParameterValue: value,
			Temperature:    s.Temperatures[i],
			Velocity:       s.Velocities[i],
			PressureDrop:   s.PressureDrops[i],
			Efficiency:     s.Efficiencies[i],
		}
	}
	return self.save_csv(name, &rows)
}

// Save a sensitivity ranking, most sensitive parameter first.
func (self *Recorder) save_ranking(ranking []SensitivityRanking, name string) error {
	rows := make([]*SensitivityRanking, len(ranking))
	for i := range ranking {
		rows[i] = &ranking[i]
	}
	return self.save_csv(name, &rows)
}
