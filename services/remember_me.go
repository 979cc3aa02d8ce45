// services/remember_me.go
package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"time"

	"github.com/go-redis/redis/v8"
)

const rememberMeTTL = 30 * 24 * time.Hour

// LoginHint is what "Remember Me" stores: only the username to prefill the
// login form with. Credentials are never persisted.
type LoginHint struct {
	Username string `json:"username"`
}

// RememberMeService keeps login hints in Redis keyed by a random token that
// lives in its own cookie. When Redis is unavailable the service is nil-safe
// and the feature is simply off.
type RememberMeService struct {
	rdb *redis.Client
}

func NewRememberMeService(rdb *redis.Client) *RememberMeService {
	return &RememberMeService{rdb: rdb}
}

// Enabled reports whether the backing store is available.
func (s *RememberMeService) Enabled() bool {
	return s != nil && s.rdb != nil
}

// Store saves the hint and returns the token to set in the remember-me cookie.
func (s *RememberMeService) Store(ctx context.Context, hint LoginHint) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(hint)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, "remember_me:"+token, data, rememberMeTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a remember-me token back to its hint; a missing or expired
// token returns nil without error.
func (s *RememberMeService) Lookup(ctx context.Context, token string) (*LoginHint, error) {
	data, err := s.rdb.Get(ctx, "remember_me:"+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var hint LoginHint
	if err := json.Unmarshal(data, &hint); err != nil {
		return nil, err
	}
	return &hint, nil
}

// Forget deletes a stored hint.
func (s *RememberMeService) Forget(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, "remember_me:"+token).Err()
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
