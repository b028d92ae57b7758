// @title Guest List API
// @version 1.0
// @description RSVP collection and guest list administration for a single event.
// @BasePath /
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name guestlist_session
package main

import (
	"guestlist/config"
	"guestlist/di"
	_ "guestlist/docs"
	"guestlist/helper"
	"guestlist/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
