package users_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"vapor-store/feature/users"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleImport(t *testing.T) {
	_, store := setupStore(t)

	app := fiber.New()
	require.NoError(t, users.NewFeature(store, zap.NewNop()).Load(app))

	t.Run("Report", func(t *testing.T) {
		body := `[{"Username":"kcarroll","FullName":"Kathy Carroll","Email":"k@example.com","Age":52,"Cards":` + validCards + `},{"Username":"x"}]`
		req := httptest.NewRequest("POST", "/users/import", strings.NewReader(body))

		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		out, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "Imported kcarroll with 2 cards\nInvalid Data", string(out))
	})

	t.Run("Malformed", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/users/import", strings.NewReader(`{not json`))

		resp, err := app.Test(req, 2000)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}
