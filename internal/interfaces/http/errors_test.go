package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upl-snipe/partner-api/internal/application/dto"
	"github.com/upl-snipe/partner-api/internal/domain"
)

func responseFor(t *testing.T, err error) (int, dto.ErrorResponse, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return handleError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()
	raw, reqErr := io.ReadAll(resp.Body)
	require.NoError(t, reqErr)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body, string(raw)
}

func TestHandleError_ErrorInterno_NoFiltraDetalle(t *testing.T) {
	infraErr := fmt.Errorf("insert franchise: dial tcp 10.0.0.5:5432: connection refused")
	status, body, raw := responseFor(t, infraErr)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno del servidor", body.Message)
	assert.NotContains(t, raw, "10.0.0.5", "el detalle de infraestructura no viaja al cliente")
	assert.NotContains(t, raw, "insert franchise")
}

func TestHandleError_Sentinelas(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"transición inválida", domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{"perfil incompleto", domain.ErrProfileIncomplete, fiber.StatusConflict, "PROFILE_INCOMPLETE"},
		{"email duplicado", fmt.Errorf("crear usuario: %w", domain.ErrEmailAlreadyExists), fiber.StatusConflict, "EMAIL_EXISTS"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body, _ := responseFor(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}
