package suite

import "github.com/DjordjeVuckovic/truth-table/internal/truthtable"

// Suite is a named list of formulas with the results they must produce.
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Formulas    []Case `yaml:"formulas"`
}

type Case struct {
	ID          string      `yaml:"id"`
	Description string      `yaml:"description"`
	Formula     string      `yaml:"formula"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation lists what to check; zero fields are not checked. Error names an
// apperr.Kind, and a case expecting an error must not expect anything else.
type Expectation struct {
	Classification truthtable.Classification `yaml:"classification,omitempty"`
	Variables      []string                  `yaml:"variables,omitempty"`
	Normalized     string                    `yaml:"normalized,omitempty"`
	Rows           *int                      `yaml:"rows,omitempty"`
	Error          string                    `yaml:"error,omitempty"`
}

func (e Expectation) wantsResult() bool {
	return e.Classification != "" || e.Variables != nil || e.Normalized != "" || e.Rows != nil
}
