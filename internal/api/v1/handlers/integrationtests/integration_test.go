package integration_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-atlas/internal/api/v1/handlers"
	"ulascansenturk/weather-atlas/internal/apidoc"
	"ulascansenturk/weather-atlas/internal/metrics"
	"ulascansenturk/weather-atlas/internal/service"
	"ulascansenturk/weather-atlas/internal/weatherdata"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// setupServer wires the full stack the way cmd/server does: real embedded
// dataset, real atlas service, rendered OpenAPI document, and the metrics
// middleware in front of the handler.
func setupServer(t *testing.T) *httptest.Server {
	data, err := weatherdata.Load()
	require.NoError(t, err)

	openAPIJSON, err := apidoc.JSON()
	require.NoError(t, err)

	requestMetrics := metrics.New()

	handler := handlers.NewWeatherHandler(
		service.NewWeatherAtlas(data),
		openAPIJSON,
		requestMetrics.Handler(),
	)

	server := httptest.NewServer(requestMetrics.Middleware(handler, func(r *http.Request) string {
		return handlers.RoutePattern(r.URL.Path)
	}))
	t.Cleanup(server.Close)

	return server
}

func get(t *testing.T, server *httptest.Server, path string) *http.Response {
	resp, err := server.Client().Get(server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func TestWeatherAtlasEndToEnd(t *testing.T) {
	server := setupServer(t)

	t.Run("CountriesListing", func(t *testing.T) {
		resp := get(t, server, "/countries")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var countries []string
		decodeJSON(t, resp, &countries)
		assert.Equal(t, []string{"England", "France", "Germany", "Italy", "Peru", "Portugal", "Spain"}, countries)
	})

	t.Run("CityListing", func(t *testing.T) {
		resp := get(t, server, "/countries/Spain")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var cities []string
		decodeJSON(t, resp, &cities)
		assert.Equal(t, []string{"Seville"}, cities)
	})

	t.Run("MonthlyAverage", func(t *testing.T) {
		resp := get(t, server, "/countries/England/London/January")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var temperature weatherdata.Temperature
		decodeJSON(t, resp, &temperature)
		assert.Equal(t, weatherdata.Temperature{High: 45.0, Low: 36.0}, temperature)
	})

	t.Run("NotFoundDetails", func(t *testing.T) {
		cases := []struct {
			path   string
			detail string
		}{
			{"/countries/Unknownland", "Country 'Unknownland' not found"},
			{"/countries/England/Madrid/January", "City 'Madrid' not found in country 'England'"},
			{"/countries/England/London/NotAMonth", "Month 'NotAMonth' not found for city 'London' in country 'England'"},
			{"/countries/Atlantis/Nowhere/Neverary", "Country 'Atlantis' not found"},
		}

		for _, tc := range cases {
			resp := get(t, server, tc.path)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode, tc.path)

			var errorResponse handlers.ErrorResponse
			decodeJSON(t, resp, &errorResponse)
			assert.Equal(t, tc.detail, errorResponse.Detail, tc.path)
		}
	})

	t.Run("DocsRedirects", func(t *testing.T) {
		client := &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}

		for _, path := range []string{"/", "/docs"} {
			resp, err := client.Get(server.URL + path)
			require.NoError(t, err)
			assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode, path)
			assert.Equal(t, "/docs/", resp.Header.Get("Location"), path)
			_ = resp.Body.Close()
		}
	})

	t.Run("DocsUI", func(t *testing.T) {
		resp := get(t, server, "/docs/")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "Swagger UI")
	})

	t.Run("OpenAPIDocument", func(t *testing.T) {
		resp := get(t, server, "/api-doc/openapi.json")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var document map[string]interface{}
		decodeJSON(t, resp, &document)
		assert.Contains(t, document, "paths")
		assert.Contains(t, document, "components")
	})

	t.Run("ConcurrentReads", func(t *testing.T) {
		paths := []string{
			"/countries",
			"/countries/Spain",
			"/countries/England/London/January",
			"/countries/Unknownland",
		}

		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			for _, path := range paths {
				wg.Add(1)
				go func(path string) {
					defer wg.Done()

					resp, err := server.Client().Get(server.URL + path)
					if assert.NoError(t, err) {
						assert.Contains(t, []int{http.StatusOK, http.StatusNotFound}, resp.StatusCode)
						_ = resp.Body.Close()
					}
				}(path)
			}
		}
		wg.Wait()
	})

	t.Run("MetricsAfterTraffic", func(t *testing.T) {
		resp := get(t, server, "/metrics")
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "http_requests_total")
		assert.Contains(t, string(body), `endpoint="/countries/{country}/{city}/{month}"`)
	})
}
