package rayid_test

import (
	"net/http/httptest"
	"testing"

	"snapshot-manager/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRayIDGenerated(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		assert.NotEmpty(t, c.Locals("ray_id"))
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(rayid.Header))
}

func TestRayIDPropagated(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Equal(t, "ray-123", c.Locals("ray_id"))
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "ray-123")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, "ray-123", resp.Header.Get(rayid.Header))
}
