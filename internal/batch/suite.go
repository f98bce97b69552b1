package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultTolerance = 1e-9

type Suite struct {
	Name      string  `yaml:"name"`
	Workers   int     `yaml:"workers"`
	Tolerance float64 `yaml:"tolerance"`
	Cases     []Case  `yaml:"cases"`
}

// Case is one expression and what it is expected to produce. Postfix, Result
// and Error are optional; a case with none of them only has to succeed.
type Case struct {
	ID         string   `yaml:"id"`
	Expression string   `yaml:"expression"`
	Postfix    string   `yaml:"postfix,omitempty"`
	Result     *float64 `yaml:"result,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

func (c Case) ExpectsError() bool {
	return c.Error != ""
}

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if err := validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func validate(s *Suite) error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("suite has no cases")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true
		if c.Expression == "" {
			return fmt.Errorf("case %q has no expression", c.ID)
		}
		if c.Result != nil && c.ExpectsError() {
			return fmt.Errorf("case %q expects both a result and an error", c.ID)
		}
	}

	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	if s.Workers == 0 {
		s.Workers = 1
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", s.Tolerance)
	}
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}
	return nil
}
