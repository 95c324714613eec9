// Package main Truth Table API
// @title Truth Table API
// @version 1.0
// @description Builds truth tables for propositional formulas and classifies them as tautology, contradiction or contingent
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/truth-table/docs"
	"github.com/DjordjeVuckovic/truth-table/internal/api/router"
	"github.com/DjordjeVuckovic/truth-table/internal/api/server"
	"github.com/DjordjeVuckovic/truth-table/internal/bot"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	pkgserver "github.com/DjordjeVuckovic/truth-table/pkg/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	generator := truthtable.NewGenerator(truthtable.WithMaxVariables(cfg.MaxVariables))
	botHandler := bot.NewHandler(cfg.BotTriggers, generator, bot.WithMaxFormulaLength(cfg.MaxFormulaLength))

	healthChecker := pkgserver.NewProbeHealthChecker(engineProbe(generator))

	s := server.New(cfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Truth Table API is running")
	})

	formulaRouter := router.NewFormulaRouter(s.Echo, generator, botHandler,
		router.WithMaxFormulaLength(cfg.MaxFormulaLength))
	formulaRouter.Bind()

	slog.Info("Engine configured",
		"maxVariables", cfg.MaxVariables,
		"maxFormulaLength", cfg.MaxFormulaLength,
		"botTriggers", cfg.BotTriggers,
	)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

// engineProbe runs the law of excluded middle through the generator.
func engineProbe(g *truthtable.Generator) pkgserver.ProbeFunc {
	return func(ctx context.Context) error {
		res, err := g.Generate("p ∨ ¬p")
		if err != nil {
			return err
		}
		if c := res.Classification(); c != truthtable.Tautology {
			return fmt.Errorf("engine probe classified p ∨ ¬p as %s", c)
		}
		return nil
	}
}
