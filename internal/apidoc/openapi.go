// Package apidoc builds the OpenAPI description of the HTTP surface. The
// document is maintained by hand as a plain value, assembled once at startup
// and served verbatim; routes and schemas here must be kept in step with the
// handlers package.
package apidoc

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	title   = "Weather Atlas API"
	version = "1.0.0"

	tagWeather = "Weather"
)

// Build assembles the OpenAPI document for the three data endpoints, their
// path parameters, the 200/404 response shapes, and the component schemas.
func Build() *openapi3.T {
	temperature := temperatureSchema()
	errorResponse := errorResponseSchema()

	// Refs keep the resolved value alongside the pointer so the document
	// validates without a loader pass.
	temperatureRef := openapi3.NewSchemaRef("#/components/schemas/Temperature", temperature)
	errorResponseRef := openapi3.NewSchemaRef("#/components/schemas/ErrorResponse", errorResponse)

	components := &openapi3.Components{
		Schemas: openapi3.Schemas{
			"Temperature":   {Value: temperature},
			"ErrorResponse": {Value: errorResponse},
		},
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       title,
			Version:     version,
			Description: "Monthly average temperatures by country, city, and month.",
		},
		Tags: openapi3.Tags{
			{Name: tagWeather, Description: "Weather data endpoints"},
		},
		Components: components,
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/countries", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "listCountries",
					Summary:     "List available countries",
					Tags:        []string{tagWeather},
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(200, jsonResponse(
							"List available countries",
							stringArraySchema(),
						)),
					),
				},
			}),
			openapi3.WithPath("/countries/{country}", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "listCountryCities",
					Summary:     "List cities within the country",
					Tags:        []string{tagWeather},
					Parameters: openapi3.Parameters{
						pathParameter("country", "Country whose cities are requested"),
					},
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(200, jsonResponse(
							"List cities within the country",
							stringArraySchema(),
						)),
						openapi3.WithStatus(404, jsonResponseRef(
							"Country not found",
							errorResponseRef,
						)),
					),
				},
			}),
			openapi3.WithPath("/countries/{country}/{city}/{month}", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "monthlyAverage",
					Summary:     "Monthly average temperature for a city",
					Tags:        []string{tagWeather},
					Parameters: openapi3.Parameters{
						pathParameter("country", "Country containing the city"),
						pathParameter("city", "City to query"),
						pathParameter("month", "Month with capitalized name, e.g. 'June'"),
					},
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(200, jsonResponseRef(
							"Monthly average temperature",
							temperatureRef,
						)),
						openapi3.WithStatus(404, jsonResponseRef(
							"Country, city, or month not found",
							errorResponseRef,
						)),
					),
				},
			}),
		),
	}
}

// JSON renders the document for serving from /api-doc/openapi.json.
func JSON() ([]byte, error) {
	return json.Marshal(Build())
}

func temperatureSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("high", openapi3.NewFloat64Schema()).
		WithProperty("low", openapi3.NewFloat64Schema())
	s.Required = []string{"high", "low"}
	return s
}

func errorResponseSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("detail", openapi3.NewStringSchema())
	s.Required = []string{"detail"}
	return s
}

func stringArraySchema() *openapi3.Schema {
	return openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())
}

func pathParameter(name, description string) *openapi3.ParameterRef {
	p := openapi3.NewPathParameter(name).
		WithDescription(description).
		WithSchema(openapi3.NewStringSchema())
	return &openapi3.ParameterRef{Value: p}
}

func jsonResponse(description string, schema *openapi3.Schema) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchema(schema),
	}
}

func jsonResponseRef(description string, ref *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Value: openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchemaRef(ref),
	}
}
