// Package tokens resolves the Strava access token for a run.
package tokens

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	redis "github.com/go-redis/redis/v8"
	"github.com/lildude/stravastats/internal/config"
	"golang.org/x/oauth2"
)

// tokenKey is the Redis key the athlete's oauth2 token is stored under.
const tokenKey = "strava_auth_token"

// ErrNoToken is returned when no access token can be found in either the
// environment or the configured token store.
var ErrNoToken = errors.New("tokens: no access token found")

// Resolve returns the bearer token to authenticate API calls with. A token
// in STRAVA_ACCESS_TOKEN wins; otherwise the token is read from the Redis
// store named by REDIS_URL. Resolution happens before any API call so a
// missing token aborts the run up front.
func Resolve(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.AccessToken != "" {
		return cfg.AccessToken, nil
	}
	if cfg.RedisURL == "" {
		return "", ErrNoToken
	}

	token, err := fromRedis(ctx, cfg.RedisURL)
	if err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

func fromRedis(ctx context.Context, addr string) (*oauth2.Token, error) {
	opt, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}
	conn := redis.NewClient(opt)
	defer conn.Close()

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	value, err := conn.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoToken
	}
	if err != nil {
		return nil, fmt.Errorf("reading token from redis: %w", err)
	}

	token := &oauth2.Token{}
	if err := json.Unmarshal([]byte(value), token); err != nil {
		return nil, fmt.Errorf("unmarshaling stored token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, ErrNoToken
	}

	return token, nil
}
