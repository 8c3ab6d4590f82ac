package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"

	"github.com/tefway/ferramentas/validator"
)

func main() {
	// Optional .env for local runs; real environment variables win.
	godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout))

	app := validator.NewApp(logger, validator.FromEnv())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	app.Shutdown()
}
