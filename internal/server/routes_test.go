package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devagent-backend/internal/config"
	"devagent-backend/internal/database"
	"devagent-backend/internal/model"
	"devagent-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	teardown, db, err := database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}
	testDB = db
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:        config.EnvTest,
		Port:               0,
		AllowOrigins:       []string{"http://localhost:3000"},
		RateLimitPerSecond: 1000,
		BodyLimitBytes:     64 * 1024,
		AccessTokenTTL:     time.Hour,
	}
}

func newTestEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	s, err := New(cfg, testDB)
	require.NoError(t, err)
	t.Cleanup(func() {
		if closer, ok := s.Blacklist.(io.Closer); ok {
			_ = closer.Close()
		}
		if s.Redis != nil {
			_ = s.Redis.Close()
		}
	})
	return s.RegisterRoutes().(*gin.Engine)
}

func login(t *testing.T, r *gin.Engine, user model.User) string {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"username": user.Username,
		"password": database.TestSeedPassword,
	}, "", r, "/api/v1/auth/login", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, ok := resp["access_token"].(string)
	require.True(t, ok)
	return token
}

func status(resp map[string]interface{}) int {
	v, _ := resp["status"].(float64)
	return int(v)
}

func id(resp map[string]interface{}) string {
	v, _ := resp["id"].(float64)
	return fmt.Sprintf("%d", int(v))
}

func createOffer(t *testing.T, r *gin.Engine, token string, body gin.H) map[string]interface{} {
	t.Helper()
	rec, resp := testutil.MakeJSONRequest(body, token, r, "/api/v1/offers", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return resp
}

func TestOfferLifecycleOverHTTP(t *testing.T) {
	r := newTestEngine(t, testConfig())
	token := login(t, r, database.TestUser1)

	offer := createOffer(t, r, token, gin.H{
		"title":           "Backend engineer",
		"new_company":     "Routes Inc",
		"earnings_min":    15000,
		"earnings_max":    20000,
		"skills_required": []string{"Go", "PostgreSQL"},
	})
	offerPath := "/api/v1/offers/" + id(offer)
	assert.Equal(t, int(model.OfferCreated), status(offer))
	assert.Equal(t, "Created", offer["status_display"])
	assert.Equal(t, "15000 - 20000 PLN", offer["earnings_range"])
	assert.Equal(t, false, offer["is_finished"])
	assert.Nil(t, offer["latest_step"])

	rec, resp := testutil.MakeJSONRequest(nil, token, r, offerPath+"/send", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int(model.OfferApplicationSent), status(resp))
	assert.NotNil(t, resp["application_sent_on"])

	rec, _ = testutil.MakeJSONRequest(nil, token, r, offerPath+"/send", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, step := testutil.MakeJSONRequest(gin.H{
		"name":         "Tech interview",
		"scheduled_on": "2030-06-01T10:00:00Z",
	}, token, r, offerPath+"/steps", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int(model.StepPlanned), status(step))
	assert.Equal(t, false, step["has_result"])
	stepPath := "/api/v1/steps/" + id(step)

	rec, resp = testutil.MakeJSONRequest(nil, token, r, offerPath, http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(model.OfferActive), status(resp))

	rec, _ = testutil.MakeJSONRequest(nil, token, r, offerPath+"/sign-contract", http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code, "latest step has no positive response yet")

	rec, resp = testutil.MakeJSONRequest(nil, token, r, stepPath+"/finish", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(model.StepFinished), status(resp))

	rec, resp = testutil.MakeJSONRequest(nil, token, r, stepPath+"/finish", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, "repeated finish is not an error")
	assert.Equal(t, int(model.StepFinished), status(resp))

	rec, resp = testutil.MakeJSONRequest(nil, token, r, stepPath+"/accept", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int(model.StepSuccess), status(resp))
	assert.Equal(t, true, resp["has_result"])

	rec, resp = testutil.MakeJSONRequest(nil, token, r, offerPath+"/sign-contract", http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int(model.OfferContractSigned), status(resp))
	assert.Equal(t, true, resp["is_finished"])
	latest, ok := resp["latest_step"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, id(step), id(latest))

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/v1/offers", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	for _, o := range testutil.DecodeList(rec) {
		assert.NotEqual(t, id(offer), id(o), "signed offer is archived")
	}

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/v1/offers?archived=true", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	found := false
	for _, o := range testutil.DecodeList(rec) {
		found = found || id(o) == id(offer)
	}
	assert.True(t, found)
}

func TestRejectAndResignPropagateOverHTTP(t *testing.T) {
	r := newTestEngine(t, testConfig())
	token := login(t, r, database.TestUser1)

	t.Run("reject", func(t *testing.T) {
		offer := createOffer(t, r, token, gin.H{"title": "Rejected role"})
		rec, step := testutil.MakeJSONRequest(gin.H{"name": "Call"}, token, r, "/api/v1/offers/"+id(offer)+"/steps", http.MethodPost)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int(model.StepCreated), status(step))

		rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/v1/steps/"+id(step)+"/reject", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code)

		_, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/offers/"+id(offer), http.MethodGet)
		assert.Equal(t, int(model.OfferNegative), status(resp))
		assert.Equal(t, "Negative response", resp["status_display"])
	})

	t.Run("resign offer", func(t *testing.T) {
		offer := createOffer(t, r, token, gin.H{"title": "Resigned role"})
		rec, step := testutil.MakeJSONRequest(gin.H{"name": "Task"}, token, r, "/api/v1/offers/"+id(offer)+"/steps", http.MethodPost)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/offers/"+id(offer)+"/resign", http.MethodPost)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int(model.OfferResigned), status(resp))

		_, resp = testutil.MakeJSONRequest(nil, token, r, "/api/v1/steps/"+id(step), http.MethodGet)
		assert.Equal(t, int(model.StepResigned), status(resp))
	})
}

func TestOwnershipAndErrorsOverHTTP(t *testing.T) {
	r := newTestEngine(t, testConfig())
	owner := login(t, r, database.TestUser1)
	other := login(t, r, database.TestUser2)

	offer := createOffer(t, r, owner, gin.H{"title": "Private"})
	offerPath := "/api/v1/offers/" + id(offer)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, offerPath},
		{http.MethodPost, offerPath + "/send"},
		{http.MethodPost, offerPath + "/resign"},
		{http.MethodDelete, offerPath},
	} {
		rec, _ := testutil.MakeJSONRequest(nil, other, r, tc.path, tc.method)
		assert.Equal(t, http.StatusForbidden, rec.Code, "%s %s", tc.method, tc.path)
	}
	rec, _ := testutil.MakeJSONRequest(gin.H{"title": "Hijacked"}, other, r, offerPath, http.MethodPatch)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, owner, r, "/api/v1/offers/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, owner, r, "/api/v1/offers/abc", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"title": ""}, owner, r, "/api/v1/offers", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"title": "x", "currency": "zloty"}, owner, r, "/api/v1/offers", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, "", r, "/api/v1/offers", http.MethodGet)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, owner, r, offerPath, http.MethodDelete)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, owner, r, offerPath, http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBodyLimitOverHTTP(t *testing.T) {
	cfg := testConfig()
	cfg.BodyLimitBytes = 128
	r := newTestEngine(t, cfg)
	token := login(t, r, database.TestUser1)

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"title":       "Too long",
		"description": strings.Repeat("a", 512),
	}, token, r, "/api/v1/offers", http.MethodPost)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	for name, cfg := range map[string]func(t *testing.T) *config.Config{
		"memory": func(t *testing.T) *config.Config { return testConfig() },
		"redis": func(t *testing.T) *config.Config {
			mr := miniredis.RunT(t)
			cfg := testConfig()
			cfg.RedisURL = "redis://" + mr.Addr()
			return cfg
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := newTestEngine(t, cfg(t))
			token := login(t, r, database.TestUser2)

			rec, _ := testutil.MakeJSONRequest(nil, token, r, "/api/v1/offers", http.MethodGet)
			require.Equal(t, http.StatusOK, rec.Code)

			rec, _ = testutil.MakeJSONRequest(nil, token, r, "/api/v1/auth/logout", http.MethodPost)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			rec, resp := testutil.MakeJSONRequest(nil, token, r, "/api/v1/offers", http.MethodGet)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Token has been revoked", resp["error"])
		})
	}
}

func TestRateLimitOverHTTP(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerSecond = 1
	r := newTestEngine(t, cfg)

	limited := false
	for i := 0; i < 5 && !limited; i++ {
		rec, _ := testutil.MakeJSONRequest(gin.H{"username": "nobody", "password": "nothing"}, "", r, "/api/v1/auth/login", http.MethodPost)
		limited = rec.Code == http.StatusTooManyRequests
	}
	assert.True(t, limited)
}

func TestInvalidRedisURL(t *testing.T) {
	cfg := testConfig()
	cfg.RedisURL = "not a url"
	_, err := New(cfg, testDB)
	assert.Error(t, err)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestEngine(t, testConfig())

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"up"`)

	rec = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "devagent_rate_limit_rejects_total")
}

func TestSwaggerDocsCoverRoutes(t *testing.T) {
	r := newTestEngine(t, testConfig())

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)

	for _, route := range r.Routes() {
		if !strings.HasPrefix(route.Path, doc.BasePath+"/") {
			continue
		}
		path := strings.ReplaceAll(strings.TrimPrefix(route.Path, doc.BasePath), ":id", "{id}")
		_, ok := doc.Paths[path][strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s is not documented", route.Method, path)
	}
}

func TestSecurityHeadersAndCORS(t *testing.T) {
	r := newTestEngine(t, testConfig())

	rec := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/offers", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
