package temphttp

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func WithTelemetry(h http.Handler, name string, options ...otelhttp.Option) http.Handler {
	return otelhttp.NewHandler(h, name, options...)
}
