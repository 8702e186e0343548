package server

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// SelfDocPath is where the aggregator publishes a description of its own endpoints.
const SelfDocPath = "/v3/api-docs"

// SelfDocument describes the aggregator's HTTP surface as an OpenAPI 3.0 document.
func SelfDocument(cfg Config) *openapi3.T {
	docsBase := strings.TrimSuffix(cfg.docsPrefix(), "/")
	uiBase := cfg.uiPath()

	resource := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("url", openapi3.NewStringSchema()).
		WithProperty("swaggerVersion", openapi3.NewStringSchema().WithEnum("2.0", "3.0")).
		WithProperty("location", openapi3.NewStringSchema())

	uiConfig := openapi3.NewObjectSchema().
		WithProperty("deepLinking", openapi3.NewBoolSchema()).
		WithProperty("operationsSorter", openapi3.NewStringSchema()).
		WithProperty("tagsSorter", openapi3.NewStringSchema()).
		WithProperty("defaultModelExpandDepth", openapi3.NewIntegerSchema()).
		WithProperty("supportedSubmitMethods", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))

	paths := openapi3.NewPaths()
	paths.Set(docsBase+"/{service}/{file}", &openapi3.PathItem{
		Get: operation("getDocument", "Raw documentation file", "documents",
			openapi3.WithStatus(200, jsonResponse("Document bytes, served verbatim", openapi3.NewObjectSchema())),
			openapi3.WithStatus(404, textResponse("Document not found")),
		).withParameters(
			openapi3.NewPathParameter("service").WithSchema(openapi3.NewStringSchema()),
			openapi3.NewPathParameter("file").WithSchema(openapi3.NewStringSchema().WithEnum("swagger.json", "openapi.json")),
		).Operation,
	})
	paths.Set("/swagger-resources", &openapi3.PathItem{
		Get: operation("listResources", "Aggregated documentation resources", "resources",
			openapi3.WithStatus(200, jsonResponse("Resources in display order", openapi3.NewArraySchema().WithItems(resource))),
		).Operation,
	})
	paths.Set("/swagger-resources/configuration/ui", &openapi3.PathItem{
		Get: operation("uiConfiguration", "Viewer display options", "resources",
			openapi3.WithStatus(200, jsonResponse("Swagger UI options", uiConfig)),
		).Operation,
	})
	paths.Set(SelfDocPath, &openapi3.PathItem{
		Get: operation("selfDocument", "This document", "resources",
			openapi3.WithStatus(200, jsonResponse("OpenAPI 3.0 document", openapi3.NewObjectSchema())),
		).Operation,
	})
	paths.Set(uiBase+"/", &openapi3.PathItem{
		Get: operation("swaggerUI", "Swagger UI", "viewers",
			openapi3.WithStatus(200, htmlResponse("Viewer page")),
		).Operation,
	})
	paths.Set(scalarPath+"/", &openapi3.PathItem{
		Get: operation("scalarUI", "Scalar API reference", "viewers",
			openapi3.WithStatus(200, htmlResponse("Viewer page")),
		).Operation,
	})
	paths.Set("/healthz", &openapi3.PathItem{
		Get: operation("healthz", "Liveness check", "operations",
			openapi3.WithStatus(200, textResponse("ok")),
		).Operation,
	})
	paths.Set("/metrics", &openapi3.PathItem{
		Get: operation("metrics", "Prometheus metrics", "operations",
			openapi3.WithStatus(200, textResponse("Exposition format")),
		).Operation,
	})

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = "dev"
	}
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Swagger aggregate",
			Description: "Lists and serves the documentation of every discovered service.",
			Version:     version,
		},
		Paths: paths,
	}
}

type operationBuilder struct {
	*openapi3.Operation
}

func operation(id, summary, tag string, responses ...openapi3.NewResponsesOption) operationBuilder {
	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	op.Tags = []string{tag}
	op.Responses = openapi3.NewResponses(responses...)
	return operationBuilder{Operation: op}
}

func (b operationBuilder) withParameters(params ...*openapi3.Parameter) operationBuilder {
	for _, p := range params {
		b.Parameters = append(b.Parameters, &openapi3.ParameterRef{Value: p})
	}
	return b
}

func jsonResponse(description string, schema *openapi3.Schema) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: openapi3.NewResponse().WithDescription(description).WithJSONSchema(schema)}
}

func textResponse(description string) *openapi3.ResponseRef {
	return contentResponse(description, "text/plain")
}

func htmlResponse(description string) *openapi3.ResponseRef {
	return contentResponse(description, "text/html")
}

func contentResponse(description, mediaType string) *openapi3.ResponseRef {
	resp := openapi3.NewResponse().WithDescription(description).
		WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{mediaType}))
	return &openapi3.ResponseRef{Value: resp}
}
