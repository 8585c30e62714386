package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"skill-matrix/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, body io.Reader) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.NewDecoder(body).Decode(&e))
	return e
}

func newErrorApp() *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/conflict", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusConflict, "Email already exists", fiber.Map{"field": "email"}, errors.New("dup"))
	})
	app.Get("/internal", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusInternalServerError, "db password is hunter2", fiber.Map{"secret": true}, errors.New("boom"))
	})
	app.Get("/unavailable", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusServiceUnavailable, "Database unavailable", fiber.Map{"x": 1}, nil)
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("raw")
	})
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("kaboom")
	})
	return app
}

func TestErrorMiddleware(t *testing.T) {
	app := newErrorApp()

	cases := []struct {
		path    string
		status  int
		message string
		data    bool
	}{
		{"/conflict", fiber.StatusConflict, "Email already exists", true},
		{"/internal", fiber.StatusInternalServerError, "internal server error", false},
		{"/unavailable", fiber.StatusServiceUnavailable, "Database unavailable", false},
		{"/plain", fiber.StatusInternalServerError, "internal server error", false},
		{"/panic", fiber.StatusInternalServerError, "internal server error", false},
		{"/missing", fiber.StatusNotFound, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			body := decode(t, resp.Body)
			assert.Equal(t, tc.status, body.Status)
			if tc.message != "" {
				assert.Equal(t, tc.message, body.Message)
			}
			if tc.data {
				assert.JSONEq(t, `{"field":"email"}`, string(body.Data))
			} else {
				assert.Equal(t, "null", string(body.Data))
			}
		})
	}
}

func newTokens() *jwt.HMACService {
	return jwt.NewHMACService(jwt.Options{
		AccessSecret:     "a-secret",
		RefreshSecret:    "r-secret",
		AccessExpiresIn:  time.Minute,
		RefreshExpiresIn: time.Hour,
	})
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newTokens()
	userID := uuid.New()

	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/me", NewAuthMiddleware(tokens).Middleware(), func(c fiber.Ctx) error {
		id, _ := c.Locals(CtxUserIDKey).(uuid.UUID)
		return c.SendString(id.String())
	})

	access, err := tokens.GenerateAccessToken(userID, "ops@example.com")
	require.NoError(t, err)
	refresh, err := tokens.GenerateRefreshToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Equal(t, userID.String(), string(b))

	for name, header := range map[string]string{
		"missing":       "",
		"wrong scheme":  "Basic " + access,
		"refresh token": "Bearer " + refresh,
		"garbage":       "Bearer not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

type observed struct {
	method, route string
	status        int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observed
}

func (r *recordingObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	obs := &recordingObserver{}

	app := fiber.New()
	app.Use(NewMetricsMiddleware(obs).Middleware())
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/projects/:id", func(c fiber.Ctx) error {
		return NewAppError(fiber.StatusNotFound, "Project not found", nil, nil)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/projects/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observed{method: "GET", route: "/projects/:id", status: 404}, obs.seen[0])
}

func TestAccessLogMiddleware_RequestID(t *testing.T) {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Get("/", func(c fiber.Ctx) error {
		rid, _ := c.Locals(CtxRequestIDKey).(string)
		return c.SendString(rid)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(HeaderRequestID))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	_, err = uuid.Parse(resp.Header.Get(HeaderRequestID))
	assert.NoError(t, err)
}
