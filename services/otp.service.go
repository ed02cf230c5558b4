// Package services contains the buisness logic of the application
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/productr/server/connect"
	"github.com/productr/server/errors"
	"github.com/productr/server/schemas"
	"github.com/redis/go-redis/v9"
)

// Challenge keys are retained well past the validity window so that an expired
// code is still reported as expired rather than missing; expiry itself is
// enforced by comparing ExpiresAt at verification time.
const challengeRetention = 24 * time.Hour

// GenerateOTP generates a 6 digit numeric OTP code
func GenerateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// Challenge contains all the OTP challenge related services, there is at most
// one challenge per identifier at any given time
type Challenge struct {
	Conn *connect.Connector
}

func challengeKey(identifier string) string {
	return fmt.Sprintf("challenge:%s", identifier)
}

// Replace is a function that discards any outstanding challenge of the identifier
// and stores a fresh one with the attempt counter reset
func (s *Challenge) Replace(ctx context.Context, identifier, code string, expiresAt time.Time) error {
	challenge := schemas.OtpChallenge{
		Identifier: identifier,
		Code:       code,
		Attempts:   0,
		ExpiresAt:  expiresAt,
		CreatedAt:  time.Now().UTC(),
	}

	raw, err := json.Marshal(challenge)
	if err != nil {
		return err
	}

	return s.Conn.R.Challenge.Set(ctx, challengeKey(identifier), raw, challengeRetention).Err()
}

// Latest is a function that returns the outstanding challenge of the identifier
func (s *Challenge) Latest(ctx context.Context, identifier string) (*schemas.OtpChallenge, error) {
	raw, err := s.Conn.R.Challenge.Get(ctx, challengeKey(identifier)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.ErrNoOTPRequestFound
		}

		return nil, err
	}

	var challenge schemas.OtpChallenge
	if err := json.Unmarshal([]byte(raw), &challenge); err != nil {
		return nil, err
	}

	return &challenge, nil
}

// IncrementAttempts is a function that persists one more failed verification
// attempt against the given challenge
func (s *Challenge) IncrementAttempts(ctx context.Context, challenge *schemas.OtpChallenge) error {
	challenge.Attempts++

	raw, err := json.Marshal(challenge)
	if err != nil {
		return err
	}

	return s.Conn.R.Challenge.Set(ctx, challengeKey(challenge.Identifier), raw, redis.KeepTTL).Err()
}

// Clear is a function that removes all challenges of the identifier, clearing
// an identifier without a challenge is a no-op
func (s *Challenge) Clear(ctx context.Context, identifier string) error {
	return s.Conn.R.Challenge.Del(ctx, challengeKey(identifier)).Err()
}
