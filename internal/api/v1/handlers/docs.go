package handlers

import (
	_ "embed"
	"net/http"
)

const openAPIPath = "/api-doc/openapi.json"

// Minimal page that loads Swagger UI from a CDN and points it at the served
// OpenAPI document, so no UI assets are bundled into the binary.
//
//go:embed swagger.html
var swaggerHTML []byte

// RedirectToDocs sends / and /docs to the canonical /docs/ URL.
func (h *WeatherHandler) RedirectToDocs(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs/", http.StatusMovedPermanently)
}

// DocsUI serves the interactive documentation page for /docs/ and sub-paths.
func (h *WeatherHandler) DocsUI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(swaggerHTML); err != nil {
		logWriteError(err)
	}
}

// OpenAPIDocument serves the machine-readable API description, rendered once
// at startup.
func (h *WeatherHandler) OpenAPIDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.openAPIJSON); err != nil {
		logWriteError(err)
	}
}
