package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "devagent:jwt:blacklist:"

// RedisBlacklistStore shares revoked tokens between API instances.
// Entries expire in redis together with the token.
type RedisBlacklistStore struct {
	client redis.UniversalClient
}

// NewRedisBlacklistStore creates store on top of existing redis client
func NewRedisBlacklistStore(client redis.UniversalClient) *RedisBlacklistStore {
	return &RedisBlacklistStore{client: client}
}

func blacklistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return blacklistKeyPrefix + hex.EncodeToString(sum[:])
}

// IsBlacklisted implements JwtBlacklistStore
func (s *RedisBlacklistStore) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}

// AddToBlacklist implements JwtBlacklistStore. Already expired token is not stored.
func (s *RedisBlacklistStore) AddToBlacklist(ctx context.Context, token string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), exp.Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("add token to blacklist: %w", err)
	}
	return nil
}
