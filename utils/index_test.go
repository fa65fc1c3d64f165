package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"movie_catalog/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeProblem(t *testing.T, body io.Reader) model.Problem {
	t.Helper()
	var p model.Problem
	require.NoError(t, json.NewDecoder(body).Decode(&p))
	return p
}

func TestErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusNotFound, "Director not found for Id: 1", nil)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	p := decodeProblem(t, resp.Body)
	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, 404, p.Status)
	assert.Equal(t, "Director not found for Id: 1", p.Detail)
}

func TestErrorResponseFallsBackToErrorText(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, fiber.StatusConflict, "", errors.New("uid taken"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	p := decodeProblem(t, resp.Body)
	assert.Equal(t, "Conflict", p.Title)
	assert.Equal(t, "uid taken", p.Detail)
}

func TestValidationErrorResponse(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		return ValidationErrorResponse(c, "bad body", []model.FieldError{{Field: "name", Message: "name is required"}})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	p := decodeProblem(t, resp.Body)
	assert.Equal(t, "Bad Request", p.Title)
	require.Len(t, p.Errors, 1)
	assert.Equal(t, "name", p.Errors[0].Field)
}

func TestErrorHandlerUnknownRoute(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	resp, err := app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	p := decodeProblem(t, resp.Body)
	assert.Equal(t, "Not Found", p.Title)
}

func TestErrorHandlerPlainError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	p := decodeProblem(t, resp.Body)
	assert.Equal(t, "Internal Server Error", p.Title)
	assert.NotContains(t, p.Detail, "boom")
}

func TestProblemTitles(t *testing.T) {
	for status, title := range map[int]string{
		fiber.StatusBadRequest:          "Bad Request",
		fiber.StatusNotFound:            "Not Found",
		fiber.StatusConflict:            "Conflict",
		fiber.StatusInternalServerError: "Internal Server Error",
		fiber.StatusServiceUnavailable:  "Service Unavailable",
	} {
		p := problem(status, "")
		assert.Equal(t, title, p.Title, "status %d", status)
		assert.Equal(t, "about:blank", p.Type)
	}
}
