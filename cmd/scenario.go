package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wardsim/wardsim/sim"
)

// Scenario is the YAML scenario file: a RunConfig plus the replication count.
type Scenario struct {
	sim.RunConfig `yaml:",inline"`
	Replications  int `yaml:"replications,omitempty"`
}

// LoadScenario reads, parses, and validates a scenario file. Fields absent
// from the file keep their DefaultRunConfig values.
func LoadScenario(path string) (sim.RunConfig, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.RunConfig{}, 0, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario := Scenario{RunConfig: sim.DefaultRunConfig(), Replications: 10}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return sim.RunConfig{}, 0, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if scenario.Replications < 1 {
		return sim.RunConfig{}, 0, fmt.Errorf("invalid scenario: replications must be >= 1, got %d", scenario.Replications)
	}
	if err := scenario.RunConfig.Validate(); err != nil {
		return sim.RunConfig{}, 0, fmt.Errorf("invalid scenario: %w", err)
	}

	return scenario.RunConfig, scenario.Replications, nil
}
