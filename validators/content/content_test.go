package contentValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(handler fiber.Handler, validators ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append(validators, handler)
	app.Patch("/reorder", handlers...)
	app.Post("/upload", handlers...)
	return app
}

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func TestReorderContentRejectsEmptyUpdates(t *testing.T) {
	app := testApp(okHandler, ReorderContent())

	req := httptest.NewRequest("PATCH", "/reorder", strings.NewReader(`{"updates":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReorderContentAcceptsWellFormedBatch(t *testing.T) {
	app := testApp(okHandler, ReorderContent())

	body := `{"updates":[{"id":1,"displayOrder":0},{"id":2,"displayOrder":1}]}`
	req := httptest.NewRequest("PATCH", "/reorder", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUploadContentRequiresModuleID(t *testing.T) {
	app := testApp(okHandler, UploadContent())

	req := httptest.NewRequest("POST", "/upload", strings.NewReader("title=Intro"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadContentRejectsNonNumericModuleID(t *testing.T) {
	app := testApp(okHandler, UploadContent())

	req := httptest.NewRequest("POST", "/upload", strings.NewReader("module_id=abc&title=Intro"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
