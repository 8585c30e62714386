package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"skill-matrix/internal/app"
	"skill-matrix/internal/config"
	"skill-matrix/internal/database"
	"skill-matrix/internal/database/migration"
	dbpostgres "skill-matrix/internal/database/postgres"
	"skill-matrix/internal/pkg/logger"
	"skill-matrix/internal/pkg/metrics"
	"skill-matrix/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type idOnly struct {
	ID uuid.UUID `json:"id"`
}

type matchBody struct {
	Outcome string `json:"outcome"`
	Matches []struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	} `json:"matches"`
	Gaps []struct {
		SkillName      string `json:"skill_name"`
		QualifiedCount int    `json:"qualified_count"`
	} `json:"gaps"`
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	host := os.Getenv("SKILLMATRIX_TEST_DB_HOST")
	if host == "" {
		t.Skip("set SKILLMATRIX_TEST_DB_HOST (and _PORT/_NAME/_USER/_PASSWORD) to run integration tests")
	}

	cfg := config.Defaults()
	cfg.Database.DBHost = host
	cfg.Database.DBPort = stringsOrDefault(os.Getenv("SKILLMATRIX_TEST_DB_PORT"), cfg.Database.DBPort)
	cfg.Database.DBName = stringsOrDefault(os.Getenv("SKILLMATRIX_TEST_DB_NAME"), cfg.Database.DBName)
	cfg.Database.DBUser = stringsOrDefault(os.Getenv("SKILLMATRIX_TEST_DB_USER"), cfg.Database.DBUser)
	cfg.Database.DBPassword = os.Getenv("SKILLMATRIX_TEST_DB_PASSWORD")
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	return cfg
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func connectTestDB(t *testing.T, ctx context.Context, cfg config.Config) database.DB {
	t.Helper()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migration.Runner{FS: migration.Embedded()}.Run(ctx, db.SQLDB())
	require.NoError(t, err)
	return db
}

type client struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func (c *client) call(method, path string, body any) (int, semanticResponse) {
	c.t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.app.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(c.t, err)

	var env semanticResponse
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (c *client) create(path string, body any) uuid.UUID {
	c.t.Helper()

	status, env := c.call(http.MethodPost, path, body)
	require.Equal(c.t, http.StatusCreated, status, "POST %s: %s", path, env.Message)

	var out idOnly
	require.NoError(c.t, json.Unmarshal(env.Data, &out))
	return out.ID
}

func (c *client) matches(projectID uuid.UUID) (string, matchBody) {
	c.t.Helper()

	status, env := c.call(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/matches", nil)
	require.Equal(c.t, http.StatusOK, status, env.Message)

	var body matchBody
	require.NoError(c.t, json.Unmarshal(env.Data, &body))
	return env.Message, body
}

func TestIntegration_ProjectMatching(t *testing.T) {
	cfg := testConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx, cfg)

	m := metrics.NewManager()
	a := app.New(&app.Container{
		Config:  cfg,
		Log:     logger.NewNop(),
		DB:      db,
		Metrics: m,
		Hub:     ws.NewHub(nil, m),
	})

	c := &client{t: t, app: a.Fiber}
	suffix := uuid.NewString()[:8]

	status, env := c.call(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":    "ops-" + suffix + "@example.com",
		"password": "integration-pass",
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	var auth struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	c.token = auth.AccessToken

	sql := c.create("/api/v1/skills", map[string]string{"name": "SQL " + suffix})
	python := c.create("/api/v1/skills", map[string]string{"name": "Python " + suffix})
	x := c.create("/api/v1/personnel", map[string]string{"name": "X " + suffix, "email": "x-" + suffix + "@example.com"})
	y := c.create("/api/v1/personnel", map[string]string{"name": "Y " + suffix, "email": "y-" + suffix + "@example.com"})
	project := c.create("/api/v1/projects", map[string]string{"name": "Reporting " + suffix})

	t.Cleanup(func() {
		bg := context.Background()
		_, _ = db.Exec(bg, `DELETE FROM projects WHERE id = $1`, project)
		_, _ = db.Exec(bg, `DELETE FROM personnel WHERE id = ANY($1)`, []uuid.UUID{x, y})
		_, _ = db.Exec(bg, `DELETE FROM skills WHERE id = ANY($1)`, []uuid.UUID{sql, python})
		_, _ = db.Exec(bg, `DELETE FROM users WHERE email = $1`, "ops-"+suffix+"@example.com")
	})

	msg, body := c.matches(project)
	assert.Equal(t, "No skills required for this project yet.", msg)
	assert.Equal(t, "no_requirements", body.Outcome)

	assign := func(person, skill uuid.UUID, level string) {
		status, env := c.call(http.MethodPost, "/api/v1/personnel/"+person.String()+"/skills",
			map[string]string{"skill_id": skill.String(), "proficiency_level": level})
		require.Equal(t, http.StatusOK, status, env.Message)
	}
	require_ := func(skill uuid.UUID, level string) {
		status, env := c.call(http.MethodPost, "/api/v1/projects/"+project.String()+"/requirements",
			map[string]string{"skill_id": skill.String(), "min_proficiency_level": level})
		require.Equal(t, http.StatusOK, status, env.Message)
	}

	assign(x, sql, "Advanced")
	assign(y, sql, "Beginner")
	require_(sql, "Intermediate")

	_, body = c.matches(project)
	assert.Equal(t, "matched", body.Outcome)
	require.Len(t, body.Matches, 1)
	assert.Equal(t, x, body.Matches[0].ID)

	require_(python, "Expert")
	_, body = c.matches(project)
	assert.Equal(t, "no_match", body.Outcome)
	assert.Empty(t, body.Matches)
	require.Len(t, body.Gaps, 2)
	for _, g := range body.Gaps {
		if strings.HasPrefix(g.SkillName, "SQL") {
			assert.Equal(t, 1, g.QualifiedCount)
		} else {
			assert.Equal(t, 0, g.QualifiedCount)
		}
	}

	status, _ = c.call(http.MethodGet, "/api/v1/projects/"+uuid.NewString()+"/matches", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = c.call(http.MethodPost, "/api/v1/personnel/"+x.String()+"/skills",
		map[string]string{"skill_id": uuid.NewString(), "proficiency_level": "Expert"})
	assert.Equal(t, http.StatusNotFound, status, env.Message)
}
