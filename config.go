package main

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Application configuration
type Config struct {
	Addr          string
	OutputDataDir string
	RangePercent  float64
	NumPoints     int
}

/*
Load the application configuration from an ini file.

    Args:
        path: path of the configuration file

    Returns:
        the configuration; every missing key (or a missing file) falls back
        to its default value
*/
func load_config(path string) *Config {
	file, err := ini.Load(path)
	if err != nil {
		log.Printf("configuration file `%s` not loaded, using defaults: %v", path, err)
		file = ini.Empty()
	}

	return &Config{
		Addr:          file.Section("server").Key("addr").MustString(":8000"),
		OutputDataDir: file.Section("output").Key("data_dir").MustString("out"),
		RangePercent:  file.Section("analysis").Key("range_percent").MustFloat64(50),
		NumPoints:     file.Section("analysis").Key("num_points").MustInt(20),
	}
}
