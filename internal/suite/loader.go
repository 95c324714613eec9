package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

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
	if len(s.Formulas) == 0 {
		return nil, fmt.Errorf("suite has no formulas")
	}

	seen := make(map[string]bool, len(s.Formulas))
	for i, c := range s.Formulas {
		if c.ID == "" {
			return nil, fmt.Errorf("formula at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate formula id %q", c.ID)
		}
		seen[c.ID] = true

		if err := validateExpectation(c.Expect); err != nil {
			return nil, fmt.Errorf("formula %q: %w", c.ID, err)
		}
	}

	return &s, nil
}

func validateExpectation(e Expectation) error {
	if e.Error != "" {
		if _, ok := apperr.ParseKind(e.Error); !ok {
			return fmt.Errorf("unknown error kind %q", e.Error)
		}
		if e.wantsResult() {
			return fmt.Errorf("expects both an error and a result")
		}
		return nil
	}

	switch e.Classification {
	case "", truthtable.Tautology, truthtable.Contradiction, truthtable.Contingent:
	default:
		return fmt.Errorf("unknown classification %q", e.Classification)
	}
	if e.Rows != nil && *e.Rows < 1 {
		return fmt.Errorf("rows must be positive, got %d", *e.Rows)
	}
	return nil
}
