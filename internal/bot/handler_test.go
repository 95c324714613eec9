package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

func newTestHandler() *Handler {
	return NewHandler(nil, truthtable.NewGenerator(truthtable.WithMaxVariables(4)))
}

func TestHandler_Handle(t *testing.T) {
	h := newTestHandler()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		handled  bool
		contains []string
	}{
		{
			name:     "slash trigger",
			text:     "/truthtable p && q",
			handled:  true,
			contains: []string{"| p     | q     | p ∧ q |", "Result: Contingent", "Variables: 2, Rows: 4"},
		},
		{
			name:     "short trigger with mention",
			text:     "/tt@logic_bot p || !p",
			handled:  true,
			contains: []string{"Result: Tautology", "Variables: 1, Rows: 2"},
		},
		{
			name:     "word trigger is case insensitive",
			text:     "  TRUTH   p and not p ",
			handled:  true,
			contains: []string{"Result: Contradiction"},
		},
		{
			name:     "trigger alone",
			text:     "/tt",
			handled:  true,
			contains: []string{"Usage: /tt <formula>"},
		},
		{
			name:     "syntax error",
			text:     "/tt (p && q",
			handled:  true,
			contains: []string{"Error: unmatched parenthesis"},
		},
		{
			name:     "too many variables",
			text:     "/tt a & b & c & d & e",
			handled:  true,
			contains: []string{"Error: formula has 5 variables, at most 4 are allowed"},
		},
		{
			name:    "unrelated text",
			text:    "truthful statements only",
			handled: false,
		},
		{
			name:    "empty message",
			text:    "",
			handled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := h.Handle(ctx, tt.text)
			assert.Equal(t, tt.handled, reply.Handled)
			for _, s := range tt.contains {
				assert.Contains(t, reply.Text, s)
			}
			if !tt.handled {
				assert.Empty(t, reply.Text)
			}
		})
	}
}

func TestHandler_CustomTriggers(t *testing.T) {
	h := NewHandler([]string{"!logic"}, truthtable.NewGenerator())

	reply := h.Handle(context.Background(), "!logic p -> q")
	assert.True(t, reply.Handled)
	assert.True(t, strings.HasPrefix(reply.Text, "+-------+"))

	assert.False(t, h.Handle(context.Background(), "/tt p").Handled)
}

func TestHandler_MaxFormulaLength(t *testing.T) {
	h := NewHandler(nil, truthtable.NewGenerator(), WithMaxFormulaLength(6))

	reply := h.Handle(context.Background(), "/tt p ∧ q ∧ r")
	assert.True(t, reply.Handled)
	assert.Equal(t, "Error: formula is longer than 6 characters", reply.Text)

	reply = h.Handle(context.Background(), "/tt p ∧ q")
	assert.Contains(t, reply.Text, "Result: Contingent")
}
