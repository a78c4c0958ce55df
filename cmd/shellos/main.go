package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/S3b4sten/ShellOs-Sellers-2/internal/ai"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/config"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/dashboard"
	"github.com/S3b4sten/ShellOs-Sellers-2/internal/fetch"
)

const logFileName = "shellos.log"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	config.LoadEnvFile()

	if missing := config.CheckRequired(); len(missing) > 0 {
		log.Fatal().Msgf("missing required config: %s", strings.Join(missing, ", "))
	}

	// Log to both stderr and file; stdout stays clean for the shell itself.
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}
	defer logFile.Close()

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}
	fileWriter := zerolog.ConsoleWriter{Out: logFile, NoColor: true}
	log.Logger = log.Output(io.MultiWriter(consoleWriter, fileWriter))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gateway, err := ai.NewGeminiGateway(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create AI gateway")
	}

	app := dashboard.NewApp(gateway)
	app.Seed()

	shell := newShell(app, fetch.NewImageFetcher(), os.Stdin, os.Stdout)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return shell.run(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		return ctx.Err()
	})

	if err := g.Wait(); err != nil && err != context.Canceled && err != errQuit {
		log.Fatal().Err(err).Msg("shell terminated")
	}
	log.Info().Msg("bye")
}
