package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings carries the engine-wide knobs read from the environment. Rule
// definitions themselves come from rule files (see LoadRules); the
// environment only tunes ambient behavior.
type Settings struct {
	// LogLevel is the minimum slog level: debug, info, warn or error.
	LogLevel string `env:"CHARLEN_LOG_LEVEL" envDefault:"info"`
	// LogFormat selects the log output format: text or json.
	LogFormat string `env:"CHARLEN_LOG_FORMAT" envDefault:"text"`
	// CountMode selects the character counting semantics: bytes or runes.
	CountMode string `env:"CHARLEN_COUNT_MODE" envDefault:"bytes"`
	// Locale picks the language for default violation messages.
	Locale string `env:"CHARLEN_LOCALE" envDefault:"en"`
}

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration struct
// based on its env field tags. The default .env file, if present, is loaded
// once per process before the first parse.
//
// Example:
//
//	var settings config.Settings
//	if err := config.Load(&settings); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}
