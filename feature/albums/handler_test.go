package albums

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"stack-manager/core/photos"
	"stack-manager/core/photos/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(client photos.Client) (*fiber.App, *Service) {
	svc := NewService(client, zap.NewNop())
	app := fiber.New()
	_ = NewFeature(svc).Load(app)
	return app, svc
}

func TestFeature(t *testing.T) {
	f := NewFeature(NewService(new(mocks.Client), zap.NewNop()))
	assert.Equal(t, "albums", f.Name())
	assert.True(t, f.IsEnabled())
}

func TestHandlePlan(t *testing.T) {
	app, _ := setupApp(albumClient())

	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantActions int
	}{
		{"DefaultOrder", "", fiber.StatusOK, 2},
		{"Desc", "?order=desc", fiber.StatusOK, 1},
		{"Invalid", "?order=sideways", fiber.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/albums/order/plan"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.wantStatus != fiber.StatusOK {
				return
			}
			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Len(t, body["actions"], tt.wantActions)
		})
	}
}

func TestHandlePlan_ServiceError(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListAlbums", mock.Anything).Return(nil, fmt.Errorf("timeout"))
	app, _ := setupApp(client)

	resp, err := app.Test(httptest.NewRequest("GET", "/albums/order/plan", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleRun(t *testing.T) {
	t.Run("Apply", func(t *testing.T) {
		client := albumClient()
		client.On("UpdateAlbumOrder", mock.Anything, "al2", "desc").Return(nil)
		app, _ := setupApp(client)

		resp, err := app.Test(httptest.NewRequest("POST", "/albums/order/run?order=desc", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(1), body["executed"])
		client.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		client := albumClient()
		client.On("UpdateAlbumOrder", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("forbidden"))
		app, _ := setupApp(client)

		resp, err := app.Test(httptest.NewRequest("POST", "/albums/order/run", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("InvalidOrder", func(t *testing.T) {
		app, _ := setupApp(new(mocks.Client))
		resp, err := app.Test(httptest.NewRequest("POST", "/albums/order/run?order=sideways", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("InProgress", func(t *testing.T) {
		app, svc := setupApp(new(mocks.Client))
		svc.mu.Lock()
		defer svc.mu.Unlock()

		resp, err := app.Test(httptest.NewRequest("POST", "/albums/order/run", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}
