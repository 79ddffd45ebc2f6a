package utilities

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devagent-backend/internal/model"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)

	assert.True(t, VerifyPassword("correct horse", hashed))
	assert.False(t, VerifyPassword("battery staple", hashed))
	assert.False(t, VerifyPassword("correct horse", ""))
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def", "abc.def", false},
		{"Bearer ", "", true},
		{"Basic abc.def", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", tt.header)

		got, err := ExtractBearerToken(c)
		if tt.wantErr {
			assert.Error(t, err, tt.header)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestExtractUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := ExtractUser(c)
	assert.Error(t, err)

	c.Set("user", "not a user")
	_, err = ExtractUser(c)
	assert.Error(t, err)

	c.Set("user", model.User{EditableUserInfo: model.EditableUserInfo{Username: "dev"}})
	user, err := ExtractUser(c)
	require.NoError(t, err)
	assert.Equal(t, "dev", user.Username)
}

func TestMergeNonEmpty(t *testing.T) {
	website := "https://gopher.example"
	dst := model.EditableCompanyInfo{Name: "Old", Website: nil}
	src := model.EditableCompanyInfo{Website: &website}

	MergeNonEmpty(&dst, &src)

	assert.Equal(t, "Old", dst.Name)
	require.NotNil(t, dst.Website)
	assert.Equal(t, website, *dst.Website)
}

func TestMergeNonEmptySkipsMismatchedFields(t *testing.T) {
	type patch struct {
		Name     string
		Location string
		Unknown  int
	}
	location := "Warsaw"
	dst := model.EditableCompanyInfo{Name: "Old", Location: &location}

	assert.NotPanics(t, func() {
		MergeNonEmpty(&dst, &patch{Name: "New", Location: "Krakow", Unknown: 1})
	})
	assert.Equal(t, "New", dst.Name)
	require.NotNil(t, dst.Location)
	assert.Equal(t, "Warsaw", *dst.Location, "string does not fit *string field")
}

func TestCurrencyBinding(t *testing.T) {
	type body struct {
		Currency *string `json:"currency" binding:"omitempty,currency"`
	}
	handler := func(c *gin.Context) {
		var b body
		if err := c.ShouldBindJSON(&b); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Message: "ok"})
	}

	for code, status := range map[string]int{"PLN": http.StatusOK, "USDT": http.StatusOK, "pln": http.StatusBadRequest, "E": http.StatusBadRequest} {
		rec, _, err := SimulateAPICall(handler, "/", http.MethodPost, map[string]string{"currency": code})
		require.NoError(t, err)
		assert.Equal(t, status, rec.Code, code)
	}

	rec, _, err := SimulateAPICall(handler, "/", http.MethodPost, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "currency is optional")
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create company: %w", unique)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains(nil, "a"))
}
