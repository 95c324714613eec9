// Package bot answers chat commands of the form "<trigger> <formula>" with a
// rendered truth table. It is transport agnostic: webhooks and the REPL feed it text.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/render"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

var DefaultTriggers = []string{"/truthtable", "/tt", "truth"}

type Reply struct {
	Text string `json:"reply"`
	// Handled is false when the message did not start with a trigger.
	Handled bool `json:"handled"`
}

type Handler struct {
	triggers  []string
	generator *truthtable.Generator
	maxLength int
}

type Option func(*Handler)

// WithMaxFormulaLength rejects formulas longer than n runes before parsing.
func WithMaxFormulaLength(n int) Option {
	return func(h *Handler) {
		h.maxLength = n
	}
}

func NewHandler(triggers []string, generator *truthtable.Generator, opts ...Option) *Handler {
	if len(triggers) == 0 {
		triggers = DefaultTriggers
	}
	h := &Handler{
		triggers:  triggers,
		generator: generator,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle answers one message. Formula errors become the reply text.
func (h *Handler) Handle(ctx context.Context, text string) Reply {
	trigger, formula, ok := h.match(text)
	if !ok {
		return Reply{}
	}

	if formula == "" {
		return Reply{Text: h.usage(trigger), Handled: true}
	}
	if h.maxLength > 0 && utf8.RuneCountInString(formula) > h.maxLength {
		return Reply{Text: fmt.Sprintf("Error: formula is longer than %d characters", h.maxLength), Handled: true}
	}

	res, err := h.generator.Generate(formula)
	if err != nil {
		if !apperr.IsUserError(err) {
			slog.ErrorContext(ctx, "Truth table failed", "formula", formula, "error", err)
			return Reply{Text: "Error: internal error", Handled: true}
		}
		slog.DebugContext(ctx, "Formula rejected", "formula", formula, "kind", apperr.KindOf(err).String())
		return Reply{Text: "Error: " + err.Error(), Handled: true}
	}

	slog.DebugContext(ctx, "Truth table rendered", "normalized", res.Normalized, "rows", len(res.Rows))
	return Reply{Text: render.String(res), Handled: true}
}

// match splits text into a trigger and the formula after it. Slash commands may
// carry a bot mention, as in "/tt@my_bot p && q".
func (h *Handler) match(text string) (string, string, bool) {
	text = strings.TrimSpace(text)

	end := strings.IndexFunc(text, unicode.IsSpace)
	if end < 0 {
		end = len(text)
	}
	word, rest := text[:end], strings.TrimSpace(text[end:])

	if strings.HasPrefix(word, "/") {
		if at := strings.IndexByte(word, '@'); at > 0 {
			word = word[:at]
		}
	}

	for _, t := range h.triggers {
		if strings.EqualFold(word, t) {
			return t, rest, true
		}
	}
	return "", "", false
}

func (h *Handler) usage(trigger string) string {
	return fmt.Sprintf("Usage: %s <formula>\n"+
		"Example: %s (p && q) => r\n"+
		"Operators: ! ~ ¬ (not), && & ∧ and, || ∨ or, ^ ⊕ xor, -> => → (implies), <-> <=> ↔ (iff), T F ⊤ ⊥\n",
		trigger, trigger)
}
