// Package config reads process settings from flags with environment
// fallbacks.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/fairychess-backend/internal/model"
)

type Config struct {
	Addr         string
	AllowOrigins string
	LogLevel     zerolog.Level
	PrettyLogs   bool
	Eligibility  model.EligibilityRule
	NoColor      bool
}

// Load parses args (without the program name) on top of the FAIRYCHESS_*
// environment.
func Load(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addr := fs.String("addr", getenv("FAIRYCHESS_ADDR", ":8080"), "listen address")
	origins := fs.String("allow-origins", getenv("FAIRYCHESS_ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	level := fs.String("log-level", getenv("FAIRYCHESS_LOG_LEVEL", "info"), "log level (trace, debug, info, warn, error)")
	pretty := fs.Bool("pretty-logs", getenb("FAIRYCHESS_PRETTY_LOGS", false), "human readable console logs")
	eligibility := fs.String("eligibility", getenv("FAIRYCHESS_ELIGIBILITY", string(model.EligibilityOwnLosses)), "fairy piece eligibility rule (own-losses, any-capture)")
	noColor := fs.Bool("no-color", getenb("NO_COLOR", false), "disable colored board output")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(*level)))
	if err != nil {
		return Config{}, fmt.Errorf("log level: %w", err)
	}
	rule, err := model.ParseEligibilityRule(*eligibility)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:         *addr,
		AllowOrigins: *origins,
		LogLevel:     lvl,
		PrettyLogs:   *pretty,
		Eligibility:  rule,
		NoColor:      *noColor,
	}, nil
}

// SetupLogging points the global zerolog logger at w.
func (c Config) SetupLogging(w io.Writer) {
	zerolog.SetGlobalLevel(c.LogLevel)
	if c.PrettyLogs {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// Origins splits AllowOrigins into its entries.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// GameOptions are the engine options implied by the configuration.
func (c Config) GameOptions() []model.Option {
	return []model.Option{model.WithEligibility(c.Eligibility)}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
