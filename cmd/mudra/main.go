package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/observability"
)

func main() {
	observability.InitLogger("mudra")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(app.DefaultConfig())
	log.Info().Str("session", a.ID()).Msg("press 'q' in the window to quit")

	if err := a.Run(ctx); err != nil {
		log.Fatal().Err(err).Str("session", a.ID()).Msg("recognition failed")
	}
}
