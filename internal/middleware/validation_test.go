package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSessionID(t *testing.T) {
	vm := NewValidationMiddleware(nil)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/sessions/:sid", vm.ValidateSessionID(), func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/01ARZ3NDEKTSV4RRFFQ69G5FAV", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	sid, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", string(sid))

	status, body := doRequest(t, app, "GET", "/sessions/nope")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestValidateIndexes(t *testing.T) {
	vm := NewValidationMiddleware(nil)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/q/:qidx/o/:oidx", vm.ValidateIndexes("qidx", "oidx"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"q": Index(c, "qidx"), "o": Index(c, "oidx")})
	})

	status, body := doRequest(t, app, "GET", "/q/2/o/7")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2.0, body["q"])
	assert.Equal(t, 7.0, body["o"])

	status, body = doRequest(t, app, "GET", "/q/two/o/x")
	assert.Equal(t, http.StatusBadRequest, status)
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
