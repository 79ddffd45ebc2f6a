package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"devagent-backend/internal/database"
	"devagent-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	testTeardown, db, err := database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := testTeardown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "teardown error: %v\n", err)
	}
	os.Exit(code)
}

// Helper: validate access token in response and return claims.
func assertValidAccessToken(t *testing.T, resp map[string]interface{}) *jwt.RegisteredClaims {
	t.Helper()
	tokenStr, ok := resp["access_token"].(string)
	require.True(t, ok, "access_token not a string")
	token, err := ValidatedToken(tokenStr)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok, "claims type mismatch")
	assert.NotEmpty(t, claims.Subject, "token subject empty")
	assert.NotEmpty(t, claims.ID, "token id empty")
	assert.Equal(t, JwtIssuer, claims.Issuer)
	return claims
}

func userIDFrom(t *testing.T, resp map[string]interface{}) string {
	t.Helper()
	userObj, ok := resp["user"].(map[string]interface{})
	require.True(t, ok, "user object missing")
	id, ok := userObj["id"].(string)
	require.True(t, ok, "user id missing")
	return id
}

func TestRegister(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "new_developer",
		"email":    "New.Developer@Example.com",
		"password": "password123",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, rec.Code, "unexpected status, body: %s", rec.Body.String())

	claims := assertValidAccessToken(t, resp)
	assert.Equal(t, userIDFrom(t, resp), claims.Subject)
	assert.NotContains(t, rec.Body.String(), "password123")

	userObj := resp["user"].(map[string]interface{})
	assert.Equal(t, "new.developer@example.com", userObj["email"])
}

func TestRegisterPasswordTooShort(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "short_pwd_user",
		"email":    "short@example.com",
		"password": "1234567",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errMsg, _ := resp["error"].(string)
	assert.Contains(t, errMsg, "Password should longer or equal to 8 characters")
}

func TestRegisterInvalidEmail(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "bad_email_user",
		"email":    "not-an-email",
		"password": "password123",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username, valid email and password must be provided", resp["error"])
}

func TestRegisterDuplicate(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	cases := map[string]map[string]string{
		"username": {
			"username": database.TestUser1.Username,
			"email":    "fresh@example.com",
			"password": "password123",
		},
		"email": {
			"username": "fresh_username",
			"email":    database.TestUser1.Email,
			"password": "password123",
		},
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
			require.NoError(t, err)
			assert.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, "Username or email already exist", resp["error"])
		})
	}
}

func TestLoginSuccess(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	for _, login := range []string{database.TestUser1.Username, database.TestUser1.Email} {
		t.Run(login, func(t *testing.T) {
			payload := map[string]string{
				"username": login,
				"password": database.TestSeedPassword,
			}
			rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, payload)
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

			claims := assertValidAccessToken(t, resp)
			assert.Equal(t, database.TestUser1.ID.String(), claims.Subject)
			assert.Equal(t, userIDFrom(t, resp), claims.Subject)
			assert.Contains(t, resp, "expires_at")
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	payload := map[string]string{
		"username": database.TestUser1.Username,
		"password": "WrongPass999!",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Username or password is incorrect", resp["error"])
}

func TestLoginUserNotFound(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	payload := map[string]string{
		"username": "non_existent_user_xyz",
		"password": "SomePassword1!",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Username or password is incorrect", resp["error"])
}

func TestLoginMissingFields(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": database.TestUser1.Username,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username or password is not provided", resp["error"])
}

func TestGetAccessToken(t *testing.T) {
	token, err := GetAccessToken(t, testDB, database.TestUser2.Username, database.TestSeedPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = GetAccessToken(t, testDB, database.TestUser2.Username, "nope-nope")
	assert.Error(t, err)
}

func TestValidatedTokenRejectsForeignKey(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   database.TestUser1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-key"))
	require.NoError(t, err)

	_, err = ValidatedToken(forged)
	assert.Error(t, err)
}

func TestValidatedTokenRejectsExpired(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   database.TestUser1.ID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey())
	require.NoError(t, err)

	_, err = ValidatedToken(expired)
	assert.Error(t, err)
}

func TestConfigureTTL(t *testing.T) {
	Configure("", 2*time.Hour)
	defer Configure("", time.Hour)

	_, expiresAt, err := GenerateStandardToken(database.TestUser1.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, time.Minute)
}
