package temphttp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/webtemp/sensor"
)

const Route = "/temp"

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

func WithLayout(layout sensor.Layout) HandlerOption {
	return func(service *httpService) {
		service.layout = layout
	}
}

func NewRouter(source sensor.Source, options ...HandlerOption) chi.Router {
	service := &httpService{source: source, layout: sensor.Detailed}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(RequestID(service.log))
	r.Use(middleware.Recoverer)

	r.Method("GET", Route, service.getTemperature())

	return r
}

// NewHandler returns the router wrapped in request tracing.
func NewHandler(source sensor.Source, options ...HandlerOption) http.Handler {
	return WithTelemetry(NewRouter(source, options...), "webtemp-http")
}

type httpService struct {
	log    *zerolog.Logger
	source sensor.Source
	layout sensor.Layout
}

type readingDocument struct {
	Value      int              `json:"value"`
	Raw        string           `json:"raw"`
	ObservedAt sensor.Timestamp `json:"observedAt"`
}

func (service *httpService) getTemperature() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reading, err := service.source.Read(r.Context())
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to read temperature")
			http.Error(w, "failed to read temperature", http.StatusInternalServerError)
			return
		}

		if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
			body, err := json.MarshalContext(r.Context(), readingDocument{
				Value:      reading.Value,
				Raw:        reading.Raw,
				ObservedAt: sensor.TimestampFromTime(reading.ObservedAt),
			})
			if err != nil {
				zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode reading")
				http.Error(w, "failed to encode reading", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(body)
			return
		}

		render.HTML(w, r, service.layout.Render(reading))
	}
}
