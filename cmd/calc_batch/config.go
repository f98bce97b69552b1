package main

import (
	"flag"
	"fmt"
)

type cliConfig struct {
	SuitePath string
	Workers   int
	Output    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/batch/smoke.yaml", "Path to batch suite YAML")
	flag.IntVar(&cfg.Workers, "workers", 0, "Number of concurrent workers (0 uses the suite setting)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")

	flag.Parse()
	return cfg
}

func (c cliConfig) validate() error {
	if c.SuitePath == "" {
		return fmt.Errorf("suite path is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
