package fiberscalar

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/webasoo/swagger-aggregate/aggregate"
	"github.com/webasoo/swagger-aggregate/scalar"
)

// Handler returns a Fiber handler that serves the Scalar UI for the given resources.
func Handler(resources []aggregate.Resource) fiber.Handler {
	return adaptor.HTTPHandler(scalar.Handler(resources))
}

// Register attaches GET handlers for /scalar and /scalar/* to the app. The resource locations
// must already be served by the app, for example through fiberswagger.Register.
func Register(app *fiber.App, resources []aggregate.Resource) {
	wrapped := Handler(resources)
	app.Get(scalar.DefaultPath, wrapped)
	app.Get(scalar.DefaultPath+"/*", wrapped)
}
