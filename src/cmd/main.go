package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	cfg "skinserv/src/configuration"
	"skinserv/src/logging"
	server "skinserv/src/server"
)

func main() {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	config := cfg.ReadProperties()

	log, err := logging.New(config.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := server.RunServer(config, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
