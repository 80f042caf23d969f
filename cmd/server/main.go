package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-atlas/config"
	"ulascansenturk/weather-atlas/internal/api/v1/handlers"
	"ulascansenturk/weather-atlas/internal/apidoc"
	"ulascansenturk/weather-atlas/internal/metrics"
	"ulascansenturk/weather-atlas/internal/service"
	"ulascansenturk/weather-atlas/internal/weatherdata"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	ctx, mainCtxStop := context.WithCancel(context.Background())

	// The dataset is bundled with the binary; a parse failure is a packaging
	// defect and the process must not start serving.
	data, loadErr := weatherdata.Load()
	if loadErr != nil {
		logger.Fatal().Err(loadErr).Msg("failed to load weather dataset")
	}

	openAPIJSON, docErr := apidoc.JSON()
	if docErr != nil {
		logger.Fatal().Err(docErr).Msg("failed to render OpenAPI document")
	}

	atlas := service.NewWeatherAtlas(data)

	requestMetrics := metrics.New()

	handler := handlers.NewWeatherHandler(atlas, openAPIJSON, requestMetrics.Handler())

	httpServer := &http.Server{
		Addr: conf.ServerAddress,
		Handler: requestMetrics.Middleware(handler, func(r *http.Request) string {
			return handlers.RoutePattern(r.URL.Path)
		}),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			log.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	logger.Info().Int("countries", len(data)).Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil {
		log.Err(serverErr).Msg("server stopped")
	}
	<-ctx.Done()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
