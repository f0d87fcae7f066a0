package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestEnsurePlayerIDKeepsIDAfterRequest(t *testing.T) {
	var seen []string
	app := fiber.New()
	app.Get("/who", EnsurePlayerID(), func(c *fiber.Ctx) error {
		seen = append(seen, PlayerID(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	for _, id := range []string{"alice", "bob12", "carol"} {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set("X-Player-ID", id)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	req := httptest.NewRequest(http.MethodGet, "/who?playerId=dave1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	require.Equal(t, []string{"alice", "bob12", "carol", "dave1"}, seen)
}

func TestEnsurePlayerIDRejectsAnonymous(t *testing.T) {
	app := fiber.New()
	app.Get("/who", EnsurePlayerID(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/who", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
