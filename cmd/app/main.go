package main

import (
	"venuedesk/config"
	"venuedesk/di"
	"venuedesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
