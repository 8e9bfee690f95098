package main

import (
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/webtemp/connectors/temphttp"
	"github.com/weegigs/webtemp/sensor"
	"github.com/weegigs/webtemp/support"
)

func newSource(cfg support.Config) *sensor.FileSource {
	return sensor.NewFileSource(cfg.SensorPath(), sensor.WithParsePolicy(cfg.ParsePolicy()))
}

// newHandler takes the tracer provider so that it is installed before otelhttp
// captures the global provider.
func newHandler(source sensor.Source, _ *trace.TracerProvider, logger *zerolog.Logger, cfg support.Config) http.Handler {
	return withLogging(temphttp.NewHandler(
		source,
		temphttp.Logger(logger),
		temphttp.WithLayout(cfg.SensorLayout()),
	))
}

func newServer(cfg support.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Address(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

var sensorSet = wire.NewSet(
	newSource,
	wire.Bind(new(sensor.Source), new(*sensor.FileSource)),
)

var Live = wire.NewSet(
	sensorSet,
	support.TracerProvider,
	newLogger,
	newHandler,
	newServer,
)
