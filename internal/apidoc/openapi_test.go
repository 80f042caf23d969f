package apidoc_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-atlas/internal/apidoc"
)

func TestBuildProducesValidDocument(t *testing.T) {
	document := apidoc.Build()

	require.NoError(t, document.Validate(context.Background()))
}

func TestDocumentListsAllRoutes(t *testing.T) {
	document := apidoc.Build()

	require.NotNil(t, document.Paths.Find("/countries"))
	require.NotNil(t, document.Paths.Find("/countries/{country}"))
	require.NotNil(t, document.Paths.Find("/countries/{country}/{city}/{month}"))

	monthly := document.Paths.Find("/countries/{country}/{city}/{month}").Get
	require.NotNil(t, monthly)
	assert.Len(t, monthly.Parameters, 3)
	assert.NotNil(t, monthly.Responses.Status(200))
	assert.NotNil(t, monthly.Responses.Status(404))
}

func TestDocumentDeclaresComponentSchemas(t *testing.T) {
	document := apidoc.Build()

	require.Contains(t, document.Components.Schemas, "Temperature")
	require.Contains(t, document.Components.Schemas, "ErrorResponse")

	temperature := document.Components.Schemas["Temperature"].Value
	assert.Contains(t, temperature.Properties, "high")
	assert.Contains(t, temperature.Properties, "low")
	assert.ElementsMatch(t, []string{"high", "low"}, temperature.Required)
}

func TestJSONRoundTrips(t *testing.T) {
	raw, err := apidoc.JSON()
	require.NoError(t, err)

	var document map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &document))
	assert.Equal(t, "3.0.3", document["openapi"])
}
