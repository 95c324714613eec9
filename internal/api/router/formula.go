package router

import (
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/truth-table/internal/apperr"
	"github.com/DjordjeVuckovic/truth-table/internal/bot"
	"github.com/DjordjeVuckovic/truth-table/internal/parser"
	"github.com/DjordjeVuckovic/truth-table/internal/render"
	"github.com/DjordjeVuckovic/truth-table/internal/sat"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
)

const defaultMaxFormulaLength = 500

type FormulaRouter struct {
	e                *echo.Echo
	generator        *truthtable.Generator
	parser           *parser.Parser
	bot              *bot.Handler
	maxFormulaLength int
}

type FormulaRouterOption func(*FormulaRouter)

func WithMaxFormulaLength(n int) FormulaRouterOption {
	return func(r *FormulaRouter) {
		r.maxFormulaLength = n
	}
}

func NewFormulaRouter(e *echo.Echo, generator *truthtable.Generator, botHandler *bot.Handler, opts ...FormulaRouterOption) *FormulaRouter {
	r := &FormulaRouter{
		e:                e,
		generator:        generator,
		parser:           parser.NewParser(),
		bot:              botHandler,
		maxFormulaLength: defaultMaxFormulaLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *FormulaRouter) Bind() {
	g := r.e.Group("/api")
	g.POST("/truth-table", r.truthTableHandler)
	g.POST("/classify", r.classifyHandler)
	g.POST("/bot", r.botHandler)
}

// truthTableHandler godoc
// @Summary Build a truth table
// @Description Parses a propositional formula and returns one row per assignment of its variables
// @Tags formulas
// @Accept json
// @Produce json
// @Param request body FormulaRequest true "Formula"
// @Success 200 {object} Response[render.View]
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /api/truth-table [post]
func (r *FormulaRouter) truthTableHandler(c echo.Context) error {
	formula, err := r.bindFormula(c)
	if err != nil {
		return err
	}

	res, err := r.generator.Generate(formula)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(render.NewView(res)))
}

// classifyHandler godoc
// @Summary Classify a formula
// @Description Decides tautology, contradiction or contingency with a SAT solver, without enumerating rows
// @Tags formulas
// @Accept json
// @Produce json
// @Param request body FormulaRequest true "Formula"
// @Success 200 {object} Response[sat.Report]
// @Failure 400 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /api/classify [post]
func (r *FormulaRouter) classifyHandler(c echo.Context) error {
	formula, err := r.bindFormula(c)
	if err != nil {
		return err
	}
	if strings.TrimSpace(formula) == "" {
		return apperr.NewEmptyFormula()
	}

	root, err := r.parser.Parse(formula)
	if err != nil {
		return err
	}

	report, err := sat.Classify(root)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok(report))
}

// botHandler godoc
// @Summary Chat command webhook
// @Description Answers "<trigger> <formula>" messages with a monospace truth table
// @Tags bot
// @Accept json
// @Produce json
// @Param request body BotRequest true "Message"
// @Success 200 {object} Response[bot.Reply]
// @Failure 400 {object} map[string]any
// @Router /api/bot [post]
func (r *FormulaRouter) botHandler(c echo.Context) error {
	var req BotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	reply := r.bot.Handle(c.Request().Context(), req.Text)
	return c.JSON(http.StatusOK, ok(reply))
}

func (r *FormulaRouter) bindFormula(c echo.Context) (string, error) {
	var req FormulaRequest
	if err := c.Bind(&req); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if n := utf8.RuneCountInString(req.Formula); n > r.maxFormulaLength {
		return "", apperr.NewValidation(fmt.Sprintf("formula is %d characters long, at most %d are allowed", n, r.maxFormulaLength))
	}
	return req.Formula, nil
}
