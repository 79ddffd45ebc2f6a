package offer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devagent-backend/internal/auth"
	"devagent-backend/internal/database"
	"devagent-backend/internal/lifecycle"
	"devagent-backend/internal/middleware"
	"devagent-backend/internal/model"
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

func offerEngine() *gin.Engine {
	r := gin.New()
	oc := NewOfferController(lifecycle.NewOfferService(testDB), lifecycle.NewStepService(testDB))
	g := r.Group("/offers", middleware.RequireAuth(testDB))
	g.GET("", oc.ListOffers)
	g.POST("", oc.CreateOffer)
	g.GET("/:id", oc.GetOffer)
	g.PATCH("/:id", oc.UpdateOffer)
	g.DELETE("/:id", oc.DeleteOffer)
	g.POST("/:id/send", oc.SendOffer)
	g.POST("/:id/sign-contract", oc.SignContract)
	g.POST("/:id/resign", oc.ResignOffer)
	g.POST("/:id/steps", oc.CreateStep)
	return r
}

func token(t *testing.T, user model.User) string {
	t.Helper()
	tok, err := auth.GetAccessToken(t, testDB, user.Username, database.TestSeedPassword)
	require.NoError(t, err)
	return tok
}

func offerPath(resp map[string]interface{}, suffix string) string {
	return fmt.Sprintf("/offers/%d%s", int(resp["id"].(float64)), suffix)
}

func TestCreateOffer_WithExistingCompanyAndSkills(t *testing.T) {
	r := offerEngine()
	tok := token(t, database.TestUser1)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":           "Platform engineer",
		"company_id":      database.TestCompany1.ID,
		"employment_type": "B2B",
		"level":           3,
		"earnings_min":    20000,
		"currency":        "EUR",
		"remote":          false,
		"location":        "Berlin",
		"skills_required": []string{database.TestSkillGo.Name},
		"skills_optional": []string{"Terraform"},
	}, tok, r, "/offers", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, "Platform engineer", resp["title"])
	assert.Equal(t, "Business to business", resp["employment_type_display"])
	assert.Equal(t, "Senior", resp["level_display"])
	assert.Equal(t, "> 20000 EUR", resp["earnings_range"])
	assert.Equal(t, false, resp["remote"])
	company := resp["company"].(map[string]interface{})
	assert.Equal(t, database.TestCompany1.Name, company["name"])
	required := resp["skills_required"].([]interface{})
	require.Len(t, required, 1)
	assert.Equal(t, database.TestSkillGo.Name, required[0].(map[string]interface{})["name"])
	assert.Len(t, resp["skills_optional"], 1)
	assert.Empty(t, resp["steps"])
}

func TestCreateOffer_ForeignCompanyRejected(t *testing.T) {
	r := offerEngine()
	rec, _ := testutil.MakeJSONRequest(gin.H{
		"title":      "Sneaky",
		"company_id": database.TestCompany1.ID,
	}, token(t, database.TestUser2), r, "/offers", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOffer_MinAboveMax(t *testing.T) {
	r := offerEngine()
	rec, _ := testutil.MakeJSONRequest(gin.H{
		"title":        "Upside down",
		"earnings_min": 30000,
		"earnings_max": 10000,
	}, token(t, database.TestUser1), r, "/offers", http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOffer_KeepsStatus(t *testing.T) {
	r := offerEngine()
	tok := token(t, database.TestUser1)

	rec, created := testutil.MakeJSONRequest(gin.H{"title": "Draft"}, tok, r, "/offers", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, tok, r, offerPath(created, "/send"), http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"title":    "Final title",
		"comments": "Recruiter said they reply in a week",
		"status":   int(model.OfferContractSigned),
	}, tok, r, offerPath(created, ""), http.MethodPatch)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Final title", resp["title"])
	assert.Equal(t, "Recruiter said they reply in a week", resp["comments"])
	assert.Equal(t, float64(model.OfferApplicationSent), resp["status"])
}

func TestStepCreation_ActivatesOffer(t *testing.T) {
	r := offerEngine()
	tok := token(t, database.TestUser1)

	rec, created := testutil.MakeJSONRequest(gin.H{"title": "With steps"}, tok, r, "/offers", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, step := testutil.MakeJSONRequest(gin.H{"name": "HR call"}, tok, r, offerPath(created, "/steps"), http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Created", step["status_display"])

	rec, resp := testutil.MakeJSONRequest(nil, tok, r, offerPath(created, ""), http.MethodGet)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(model.OfferActive), resp["status"])
	assert.Len(t, resp["steps"], 1)
	assert.NotNil(t, resp["latest_step"])

	rec, _ = testutil.MakeJSONRequest(gin.H{"name": "x"}, token(t, database.TestUser2), r, offerPath(created, "/steps"), http.MethodPost)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = testutil.MakeJSONRequest(gin.H{"name": "x"}, tok, r, "/offers/999999/steps", http.MethodPost)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOffers_InvalidQuery(t *testing.T) {
	r := offerEngine()
	rec, _ := testutil.MakeJSONRequest(nil, token(t, database.TestUser1), r, "/offers?archived=maybe", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOffers_ActiveAndArchived(t *testing.T) {
	r := offerEngine()
	tok := token(t, database.TestUser2)

	rec, active := testutil.MakeJSONRequest(gin.H{"title": "Still going"}, tok, r, "/offers", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, resigned := testutil.MakeJSONRequest(gin.H{"title": "Given up"}, tok, r, "/offers", http.MethodPost)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = testutil.MakeJSONRequest(nil, tok, r, offerPath(resigned, "/resign"), http.MethodPost)
	require.Equal(t, http.StatusOK, rec.Code)

	ids := func(query string) []float64 {
		rec, _ := testutil.MakeJSONRequest(nil, tok, r, "/offers"+query, http.MethodGet)
		require.Equal(t, http.StatusOK, rec.Code)
		out := []float64{}
		for _, o := range testutil.DecodeList(rec) {
			out = append(out, o["id"].(float64))
		}
		return out
	}

	activeIDs := ids("")
	archivedIDs := ids("?archived=true")
	assert.Contains(t, activeIDs, active["id"])
	assert.NotContains(t, activeIDs, resigned["id"])
	assert.Contains(t, archivedIDs, resigned["id"])
	assert.NotContains(t, archivedIDs, active["id"])
}
