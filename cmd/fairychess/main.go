package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/benbeisheim/fairychess-backend/internal/cli"
	"github.com/benbeisheim/fairychess-backend/internal/config"
	"github.com/benbeisheim/fairychess-backend/internal/render"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.SetupLogging(os.Stderr)

	theme := render.DefaultTheme()
	if cfg.NoColor {
		theme = render.PlainTheme()
	}

	session := cli.NewSession(os.Stdout, theme, cfg.GameOptions()...)
	if err := session.Run(os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("input error")
	}
}
