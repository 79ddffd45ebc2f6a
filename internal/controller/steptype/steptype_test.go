package steptype

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devagent-backend/internal/auth"
	"devagent-backend/internal/database"
	"devagent-backend/internal/middleware"
	"devagent-backend/internal/testutil"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	teardown, db, err := database.GetTestDB()
	if err != nil {
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

func TestStepTypes(t *testing.T) {
	token, err := auth.GetAccessToken(t, testDB, database.TestUser1.Username, database.TestSeedPassword)
	require.NoError(t, err)
	otherToken, err := auth.GetAccessToken(t, testDB, database.TestUser2.Username, database.TestSeedPassword)
	require.NoError(t, err)

	r := gin.New()
	sc := NewStepTypeController(testDB)
	r.GET("/step-types", middleware.RequireAuth(testDB), sc.ListStepTypes)
	r.POST("/step-types", middleware.RequireAuth(testDB), sc.CreateStepType)

	rec, resp := testutil.MakeJSONRequest(gin.H{"name": "Live coding"}, token, r, "/step-types", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Live coding", resp["name"])
	assert.Equal(t, database.TestUser1.ID.String(), resp["added_by"])

	rec, _ = testutil.MakeJSONRequest(gin.H{}, token, r, "/step-types", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = testutil.MakeJSONRequest(nil, token, r, "/step-types", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, testutil.DecodeList(rec), 1)

	rec, _ = testutil.MakeJSONRequest(nil, otherToken, r, "/step-types", http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, testutil.DecodeList(rec))
}
