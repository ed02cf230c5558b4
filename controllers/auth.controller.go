// Package controllers contains the route handlers
package controllers

import (
	errs "errors"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/productr/server/errors"
	"github.com/productr/server/schemas"
	"github.com/productr/server/services"
)

// Auth struct contains all the auth related controllers
type Auth struct {
	Service *services.Auth
}

// SendOTP is a function that issues a fresh OTP challenge for the given email
// or phone number and dispatches the code
func (a *Auth) SendOTP(c *fiber.Ctx) error {
	var payload struct {
		Email string `json:"email"`
		Phone string `json:"phone"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, errors.ErrProvideEmailOrPhone)
	}

	err := a.Service.SendOTP(c.Context(), payload.Email, payload.Phone)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrProvideEmailOrPhone),
			errs.Is(err, errors.ErrInvalidEmail),
			errs.Is(err, errors.ErrInvalidPhone):
			return errors.BadRequest(c, err)
		case errs.Is(err, errors.ErrOTPSendingFailed):
			return errors.SendingFailed(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	return errors.Done(c, "OTP sent successfully")
}

// VerifyOTP is a function that checks the submitted OTP and returns the
// authenticated user when the code matches
func (a *Auth) VerifyOTP(c *fiber.Ctx) error {
	var payload struct {
		Identifier string `json:"identifier"`
		OTP        string `json:"otp"`
	}

	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, errors.ErrIdentifierAndOTP)
	}

	user, err := a.Service.VerifyOTP(c.Context(), payload.Identifier, payload.OTP)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrIdentifierAndOTP),
			errs.Is(err, errors.ErrNoOTPRequestFound),
			errs.Is(err, errors.ErrOTPExpired),
			errs.Is(err, errors.ErrInvalidOTP):
			return errors.BadRequest(c, err)
		case errs.Is(err, errors.ErrTooManyAttempts):
			return errors.TooManyAttempts(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "OTP verified successfully",
		"user":    schemas.FilterUser(*user),
	})
}
