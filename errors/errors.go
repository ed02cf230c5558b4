// Package errors contians http errors and other custom errors
package errors

import (
	errs "errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/productr/server/schemas"
)

//revive:disable

var (
	ErrServerError         = fmt.Errorf("Server error")
	ErrBadRequest          = fmt.Errorf("Invalid request")
	ErrProvideEmailOrPhone = fmt.Errorf("Provide email or phone")
	ErrInvalidEmail        = fmt.Errorf("Invalid email")
	ErrInvalidPhone        = fmt.Errorf("Invalid phone")
	ErrIdentifierAndOTP    = fmt.Errorf("Identifier and OTP required")
	ErrNoOTPRequestFound   = fmt.Errorf("No OTP request found")
	ErrOTPExpired          = fmt.Errorf("OTP expired")
	ErrTooManyAttempts     = fmt.Errorf("Too many attempts")
	ErrInvalidOTP          = fmt.Errorf("Invalid OTP")
	ErrOTPSendingFailed    = fmt.Errorf("OTP sending failed")
	ErrProductNotFound     = fmt.Errorf("Product not found")
)

type res schemas.Res

func failure(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(res{
		Success: false,
		Message: err.Error(),
	})
}

func InternalServerErr(c *fiber.Ctx) error {
	return failure(c, fiber.StatusInternalServerError, ErrServerError)
}

func BadRequest(c *fiber.Ctx, err error) error {
	return failure(c, fiber.StatusBadRequest, err)
}

func TooManyAttempts(c *fiber.Ctx) error {
	return failure(c, fiber.StatusTooManyRequests, ErrTooManyAttempts)
}

func SendingFailed(c *fiber.Ctx) error {
	return failure(c, fiber.StatusInternalServerError, ErrOTPSendingFailed)
}

func ProductNotFound(c *fiber.Ctx) error {
	return failure(c, fiber.StatusNotFound, ErrProductNotFound)
}

func Done(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(res{
		Success: true,
		Message: message,
	})
}

//revive:enable

// CheckDBError is a struc that is used to identify the database errors
type CheckDBError struct{}

// DuplicateKey is a function that is used to find wether the the returned postgres error
// is due to a duplicate key entry (A unique key constraint)
func (CheckDBError) DuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errs.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return true
		}
	}

	return false
}
