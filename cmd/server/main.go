package main

import (
	"os"

	"syncboard/internal/app/server"
	"syncboard/internal/config"
	"syncboard/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	if err := server.Run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
