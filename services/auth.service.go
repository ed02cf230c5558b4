package services

import (
	"context"
	"time"

	"github.com/productr/server/enums"
	"github.com/productr/server/errors"
	"github.com/productr/server/models"
	"github.com/productr/server/schemas"
	"github.com/productr/server/validate"
)

const (
	// OTPValidity is the amount of time a challenge can be verified within
	OTPValidity = 5 * time.Minute
	// MaxAttempts is the number of wrong codes a single challenge tolerates
	MaxAttempts = 5
)

// ChallengeStore persists at most one OTP challenge per identifier
type ChallengeStore interface {
	Replace(ctx context.Context, identifier, code string, expiresAt time.Time) error
	Latest(ctx context.Context, identifier string) (*schemas.OtpChallenge, error)
	IncrementAttempts(ctx context.Context, challenge *schemas.OtpChallenge) error
	Clear(ctx context.Context, identifier string) error
}

// UserStore resolves and bootstraps users addressed by an identifier
type UserStore interface {
	Upsert(ctx context.Context, identifier string, channel enums.Channel) error
	ByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}

// Dispatcher delivers an OTP code to its destination
type Dispatcher interface {
	Send(channel enums.Channel, destination, code string) error
}

// Auth orchestrates the OTP login flow
type Auth struct {
	Challenges ChallengeStore
	Users      UserStore
	Dispatch   Dispatcher

	// Validity overrides the default OTP validity window when set
	Validity time.Duration

	// Now is the clock of the service, defaults to time.Now
	Now func() time.Time
}

func (a *Auth) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}

	return time.Now()
}

func (a *Auth) validity() time.Duration {
	if a.Validity > 0 {
		return a.Validity
	}

	return OTPValidity
}

// SendOTP validates the email or phone number, supersedes any outstanding
// challenge of the identifier with a fresh code, bootstraps the user record
// and dispatches the code. A failed dispatch leaves the stored challenge in
// place, retrying is simply another SendOTP call
func (a *Auth) SendOTP(ctx context.Context, email, phone string) error {
	identifier, channel, err := validate.Identifier(email, phone)
	if err != nil {
		return err
	}

	code := GenerateOTP()
	expiresAt := a.now().Add(a.validity())

	if err := a.Challenges.Replace(ctx, identifier, code, expiresAt); err != nil {
		return errors.ErrServerError
	}

	if err := a.Users.Upsert(ctx, identifier, channel); err != nil {
		return errors.ErrServerError
	}

	if err := a.Dispatch.Send(channel, identifier, code); err != nil {
		return errors.ErrOTPSendingFailed
	}

	return nil
}

// VerifyOTP checks the submitted code against the outstanding challenge of the
// identifier and returns the authenticated user on success. The challenge is
// removed on success so a code can never be replayed; expired challenges and
// challenges that ran out of attempts are dead ends that only a new SendOTP
// can recover from
func (a *Auth) VerifyOTP(ctx context.Context, identifier, code string) (*models.User, error) {
	if identifier == "" || code == "" {
		return nil, errors.ErrIdentifierAndOTP
	}

	challenge, err := a.Challenges.Latest(ctx, identifier)
	if err != nil {
		if err == errors.ErrNoOTPRequestFound {
			return nil, err
		}

		return nil, errors.ErrServerError
	}

	if a.now().After(challenge.ExpiresAt) {
		return nil, errors.ErrOTPExpired
	}

	if challenge.Attempts >= MaxAttempts {
		return nil, errors.ErrTooManyAttempts
	}

	if challenge.Code != code {
		if err := a.Challenges.IncrementAttempts(ctx, challenge); err != nil {
			return nil, errors.ErrServerError
		}

		return nil, errors.ErrInvalidOTP
	}

	if err := a.Challenges.Clear(ctx, identifier); err != nil {
		return nil, errors.ErrServerError
	}

	user, err := a.Users.ByIdentifier(ctx, identifier)
	if err != nil {
		return nil, errors.ErrServerError
	}

	return user, nil
}
