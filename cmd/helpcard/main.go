package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/alovak/helpcard/helpcard"
	"github.com/alovak/helpcard/internal/logging"
	"golang.org/x/exp/slog"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (optional)")
	flag.Parse()

	config, err := helpcard.LoadConfig(*configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, config.LogLevel)

	app := helpcard.NewApp(logger, config)
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	app.Shutdown()
}
