package serverutils

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobiliaria-crm-be/internal/pkg/apperror"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Use(ErrorHandlerMiddleware(noopLogger{}))
	app.Get("/x", handler)
	return app
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: apperror.NotFound("Imóvel não encontrado com ID: 9"), wantStatus: 404},
		{name: "validation", err: apperror.Validation("CPF já cadastrado."), wantStatus: 400},
		{name: "invalid reference", err: apperror.InvalidReference("Uma ou mais IDs de características são inválidas."), wantStatus: 400},
		{name: "unexpected", err: errors.New("boom"), wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestErrorHandlerHidesInternalDetails(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error { return errors.New("pq: column does not exist") })

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Erro interno do servidor.")
	assert.NotContains(t, string(body), "pq:")
}

func TestRequestIDMiddleware(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error { return ctx.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set(RequestIDHeader, "meu-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "meu-id", resp.Header.Get(RequestIDHeader))
}

func TestValidateRequest(t *testing.T) {
	type body struct {
		Nome string `json:"nome" validate:"required,max=5"`
	}

	err := ValidateRequest(body{Nome: "ok"})
	assert.NoError(t, err)

	err = ValidateRequest(body{})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
