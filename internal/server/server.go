package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"devagent-backend/internal/auth"
	"devagent-backend/internal/config"
	"devagent-backend/internal/database"
)

// MyServer contain dependencies shared by route handlers
type MyServer struct {
	Config *config.Config
	DB     *database.DBinstanceStruct

	// Redis is nil when REDIS_URL is not configured
	Redis     redis.UniversalClient
	Blacklist auth.JwtBlacklistStore
}

// New builds MyServer. Token blacklist lives in redis when it is configured
// and in process memory otherwise.
func New(cfg *config.Config, db *database.DBinstanceStruct) (*MyServer, error) {
	s := &MyServer{
		Config: cfg,
		DB:     db,
	}

	if cfg.RedisURL == "" {
		s.Blacklist = auth.NewInMemoryBlacklistStore()
		log.Warn().Msg("REDIS_URL not set, rate limit and token blacklist are kept in memory")
		return s, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unreachable: %w", err)
	}

	s.Redis = client
	s.Blacklist = auth.NewRedisBlacklistStore(client)
	log.Info().Str("addr", opts.Addr).Msg("Connected to redis")
	return s, nil
}

// NewServer construct http.Server serving API routes
func NewServer(cfg *config.Config, db *database.DBinstanceStruct) (*http.Server, *MyServer, error) {
	s, err := New(cfg, db)
	if err != nil {
		return nil, nil, err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.RegisterRoutes(),
		IdleTimeout:       time.Minute,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	return server, s, nil
}

// Close releases connections and background workers held by server
func (s *MyServer) Close() error {
	if closer, ok := s.Blacklist.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return err
		}
	}
	return s.DB.Close()
}
