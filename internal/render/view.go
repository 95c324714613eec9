// Package render presents truth tables as bordered monospace text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

// View is the wire shape of a truth table. Each entry of Table maps a column
// label to its value in that row.
type View struct {
	Variables      []string                  `json:"variables"`
	Columns        []string                  `json:"columns"`
	Table          []map[string]bool         `json:"table"`
	Normalized     string                    `json:"normalized"`
	Classification truthtable.Classification `json:"classification"`
}

func NewView(res *truthtable.Result) View {
	table := make([]map[string]bool, len(res.Rows))
	for i, row := range res.Rows {
		entry := make(map[string]bool, len(res.Columns))
		for c, col := range res.Columns {
			entry[col.Label] = row.Values[c]
		}
		table[i] = entry
	}

	return View{
		Variables:      res.Variables,
		Columns:        res.Labels(),
		Table:          table,
		Normalized:     res.Normalized,
		Classification: res.Classification(),
	}
}

func WriteJSON(w io.Writer, res *truthtable.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewView(res)); err != nil {
		return fmt.Errorf("encode truth table: %w", err)
	}
	return nil
}

func WriteJSONFile(res *truthtable.Result, path string) error {
	data, err := json.MarshalIndent(NewView(res), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal truth table: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write truth table: %w", err)
	}
	return nil
}
