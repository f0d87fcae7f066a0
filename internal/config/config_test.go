package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"github.com/benbeisheim/fairychess-backend/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FAIRYCHESS_ADDR", "")
	t.Setenv("FAIRYCHESS_ELIGIBILITY", "")
	t.Setenv("FAIRYCHESS_LOG_LEVEL", "")

	cfg, err := Load("test", nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	require.Equal(t, model.EligibilityOwnLosses, cfg.Eligibility)
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("FAIRYCHESS_ADDR", ":9000")
	t.Setenv("FAIRYCHESS_PRETTY_LOGS", "yes")
	t.Setenv("FAIRYCHESS_ELIGIBILITY", "any-capture")

	cfg, err := Load("test", []string{"-log-level", "debug"})
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Addr)
	require.True(t, cfg.PrettyLogs)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	require.Equal(t, model.EligibilityAnyCapture, cfg.Eligibility)

	cfg, err = Load("test", []string{"-addr", ":7000", "-eligibility", "own-losses"})
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Addr)
	require.Equal(t, model.EligibilityOwnLosses, cfg.Eligibility)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := Load("test", []string{"-eligibility", "always"})
	require.Error(t, err)

	_, err = Load("test", []string{"-log-level", "loud"})
	require.Error(t, err)

	_, err = Load("test", []string{"-unknown"})
	require.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Config{LogLevel: zerolog.WarnLevel}.SetupLogging(&buf)

	log.Info().Msg("hidden")
	log.Warn().Str("game", "g1").Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"game":"g1"`)
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowOrigins: "http://a.test, http://b.test,,"}
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Origins())
	require.Empty(t, Config{}.Origins())
}
