// Package auth implements local account registration, login and logout with
// JWT access tokens.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// JwtIssuer is issuer of every access token
const JwtIssuer = "devagent"

var (
	keyMu          sync.RWMutex
	secretKey      = os.Getenv("SECRET_KEY")
	accessTokenTTL = time.Hour
)

func init() {
	if secretKey == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err == nil {
			secretKey = hex.EncodeToString(b)
		}
	}
}

// Configure sets signing key and access token lifetime
func Configure(secret string, ttl time.Duration) {
	keyMu.Lock()
	defer keyMu.Unlock()
	if secret != "" {
		secretKey = secret
	}
	if ttl > 0 {
		accessTokenTTL = ttl
	}
}

func signingKey() []byte {
	keyMu.RLock()
	defer keyMu.RUnlock()
	return []byte(secretKey)
}

// GenerateStandardToken signs access token for user and returns it with its expiry
func GenerateStandardToken(userID uuid.UUID) (string, time.Time, error) {
	keyMu.RLock()
	ttl := accessTokenTTL
	keyMu.RUnlock()
	return GenerateTokenWithDuration(userID, ttl, JwtIssuer)
}

// GenerateTokenWithDuration signs token with custom lifetime and issuer
func GenerateTokenWithDuration(userID uuid.UUID, ttl time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signedToken, err := generatedAccessToken.SignedString(signingKey())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("Failed to sign token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// ValidatedToken parses token signed with HMAC key into registered claims
func ValidatedToken(encodeToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodeToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return signingKey(), nil
	})
}
