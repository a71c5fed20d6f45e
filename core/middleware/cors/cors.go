package cors

import (
	"github.com/gofiber/fiber/v2"
)

// Config defines the cross-origin headers attached to every response.
type Config struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin.
	AllowOrigin string
	// AllowMethods is sent as Access-Control-Allow-Methods.
	AllowMethods string
	// AllowHeaders is sent as Access-Control-Allow-Headers.
	AllowHeaders string
}

// ConfigDefault opens the server to any origin.
var ConfigDefault = Config{
	AllowOrigin:  "*",
	AllowMethods: "GET, POST, OPTIONS",
	AllowHeaders: "Content-Type",
}

// New creates the middleware. Headers are written after the rest of the chain
// has run, so they sit on top of whatever the handler set, error responses included.
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}

	return func(c *fiber.Ctx) error {
		err := c.Next()

		c.Set(fiber.HeaderAccessControlAllowOrigin, cfg.AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, cfg.AllowMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, cfg.AllowHeaders)

		return err
	}
}
