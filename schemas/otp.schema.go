package schemas

import "time"

// OtpChallenge is a struct that contains the outstanding OTP challenge of an identifier
type OtpChallenge struct {
	Identifier string    `json:"identifier"`
	Code       string    `json:"code"`
	Attempts   int       `json:"attempts"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}
