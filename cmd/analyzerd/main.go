package main

import (
	"log/slog"
	"os"

	"github.com/campuspulse/sentilex/config"
	"github.com/campuspulse/sentilex/internal/engine"
	"github.com/campuspulse/sentilex/internal/lexicon"
	"github.com/campuspulse/sentilex/internal/logging"
	"github.com/campuspulse/sentilex/internal/server"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	store := lexicon.NewStore()
	eng := engine.New(store, engine.DefaultParams())

	port := os.Getenv("ANALYZERD_PORT")
	if port == "" {
		port = "8090"
	}

	r := server.SetupRouter(eng, store)

	slog.Info("[Main] Starting analyzer service", slog.String("port", port))
	if err := r.Run(":" + port); err != nil {
		slog.Error("[Main] Server exited",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
}
