package main

import (
	"venuebook/config"
	"venuebook/di"
	"venuebook/helper"
	"venuebook/shared/logger"

	"github.com/rs/zerolog/log"
)

//	@title			Venuebook API
//	@version		1.0
//	@description	Venue availability and booking service. Every route is also served under /api.
//	@BasePath		/
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
