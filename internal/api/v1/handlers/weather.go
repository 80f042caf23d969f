package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-atlas/internal/service"
)

// WeatherHandler serves the read-only weather endpoints plus the
// documentation and metrics surface. Every route is a pure function of the
// immutable dataset and the request path.
type WeatherHandler struct {
	atlas          service.WeatherAtlas
	openAPIJSON    []byte
	metricsHandler http.Handler
}

func NewWeatherHandler(atlas service.WeatherAtlas, openAPIJSON []byte, metricsHandler http.Handler) *WeatherHandler {
	return &WeatherHandler{
		atlas:          atlas,
		openAPIJSON:    openAPIJSON,
		metricsHandler: metricsHandler,
	}
}

func (h *WeatherHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	path := r.URL.Path

	switch {
	case path == "/" || path == "/docs":
		h.RedirectToDocs(w, r)
	case strings.HasPrefix(path, "/docs/"):
		h.DocsUI(w, r)
	case path == openAPIPath:
		h.OpenAPIDocument(w, r)
	case path == "/metrics" && h.metricsHandler != nil:
		h.metricsHandler.ServeHTTP(w, r)
	case path == "/countries":
		h.ListCountries(w, r)
	case strings.HasPrefix(path, "/countries/"):
		h.dispatchCountryPath(w, r)
	default:
		respondWithError(w, http.StatusNotFound, "Not Found")
	}
}

// dispatchCountryPath routes by the number of segments after /countries/:
// one segment lists a country's cities, three resolve a monthly average.
func (h *WeatherHandler) dispatchCountryPath(w http.ResponseWriter, r *http.Request) {
	segments := strings.Split(strings.TrimPrefix(r.URL.Path, "/countries/"), "/")

	for _, segment := range segments {
		if segment == "" {
			respondWithError(w, http.StatusNotFound, "Not Found")
			return
		}
	}

	switch len(segments) {
	case 1:
		h.ListCities(w, r, segments[0])
	case 3:
		h.GetMonthlyAverage(w, r, segments[0], segments[1], segments[2])
	default:
		respondWithError(w, http.StatusNotFound, "Not Found")
	}
}

func (h *WeatherHandler) ListCountries(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, h.atlas.Countries())
}

func (h *WeatherHandler) ListCities(w http.ResponseWriter, _ *http.Request, country string) {
	cities, err := h.atlas.Cities(country)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, cities)
}

func (h *WeatherHandler) GetMonthlyAverage(w http.ResponseWriter, _ *http.Request, country, city, month string) {
	temperature, err := h.atlas.MonthlyAverage(country, city, month)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, temperature)
}

func (h *WeatherHandler) respondLookupError(w http.ResponseWriter, err error) {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		respondWithError(w, http.StatusNotFound, notFound.Detail)
		return
	}

	log.Error().Err(err).Msg("unexpected lookup failure")
	respondWithError(w, http.StatusInternalServerError, "Internal Server Error")
}

// RoutePattern maps a request path to its route template so metric labels
// stay bounded regardless of the path parameter values.
func RoutePattern(path string) string {
	switch {
	case path == "/" || path == "/docs" || path == "/countries" || path == "/metrics" || path == openAPIPath:
		return path
	case strings.HasPrefix(path, "/docs/"):
		return "/docs/"
	case strings.HasPrefix(path, "/countries/"):
		switch len(strings.Split(strings.TrimPrefix(path, "/countries/"), "/")) {
		case 1:
			return "/countries/{country}"
		case 3:
			return "/countries/{country}/{city}/{month}"
		}
	}
	return "unmatched"
}
