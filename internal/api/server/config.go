package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/truth-table/internal/bot"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-table/pkg/config/env"
	"github.com/DjordjeVuckovic/truth-table/pkg/utils"
)

const (
	DefaultMaxVariables     = 10
	DefaultMaxFormulaLength = 500
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string

	// MaxVariables caps truth tables served over HTTP, at most truthtable.DefaultMaxVariables.
	MaxVariables     int
	MaxFormulaLength int
	BotTriggers      []string
	LogLevel         slog.Level
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/truthtable_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := env.String("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := utils.SplitList(os.Getenv("CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxVariables, err := env.Int("MAX_VARIABLES", DefaultMaxVariables)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_VARIABLES: %w", err)
	}
	if maxVariables < 1 || maxVariables > truthtable.DefaultMaxVariables {
		return nil, fmt.Errorf("invalid MAX_VARIABLES: must be between 1 and %d", truthtable.DefaultMaxVariables)
	}

	maxLength, err := env.Int("MAX_FORMULA_LENGTH", DefaultMaxFormulaLength)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_FORMULA_LENGTH: %w", err)
	}
	if maxLength < 1 {
		return nil, errors.New("invalid MAX_FORMULA_LENGTH: must be positive")
	}

	triggers := utils.SplitList(os.Getenv("BOT_TRIGGERS"))
	if len(triggers) == 0 {
		triggers = bot.DefaultTriggers
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(env.String("LOG_LEVEL", "INFO"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		Port:             port,
		UseHttp2:         os.Getenv("USE_HTTP2") == "true",
		CorsOrigins:      origins,
		MaxVariables:     maxVariables,
		MaxFormulaLength: maxLength,
		BotTriggers:      triggers,
		LogLevel:         level,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
