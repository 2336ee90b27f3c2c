// Package rayid generates a unique request ID (RayID) for every incoming
// request, injecting it into the context and response headers for tracing.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the ray id on requests and responses.
const HeaderName = "X-Ray-ID"

// New creates the RayID middleware. An incoming ray id is honored so
// upstream proxies can correlate; otherwise a fresh UUID is issued.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
