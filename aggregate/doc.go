// Package aggregate discovers Swagger 2.0 and OpenAPI 3.0 documents stored under per-service
// folders and turns them into named resources for a single documentation UI.
package aggregate
