package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/productr/server/controllers"
	"github.com/productr/server/enums"
	"github.com/productr/server/errors"
	"github.com/productr/server/models"
	"github.com/productr/server/schemas"
	"github.com/productr/server/services"
	"gorm.io/gorm"
)

type memChallengeStore struct {
	challenges map[string]schemas.OtpChallenge
}

func (m *memChallengeStore) Replace(_ context.Context, identifier, code string, expiresAt time.Time) error {
	m.challenges[identifier] = schemas.OtpChallenge{
		Identifier: identifier,
		Code:       code,
		ExpiresAt:  expiresAt,
		CreatedAt:  time.Now().UTC(),
	}
	return nil
}

func (m *memChallengeStore) Latest(_ context.Context, identifier string) (*schemas.OtpChallenge, error) {
	challenge, ok := m.challenges[identifier]
	if !ok {
		return nil, errors.ErrNoOTPRequestFound
	}
	return &challenge, nil
}

func (m *memChallengeStore) IncrementAttempts(_ context.Context, challenge *schemas.OtpChallenge) error {
	challenge.Attempts++
	m.challenges[challenge.Identifier] = *challenge
	return nil
}

func (m *memChallengeStore) Clear(_ context.Context, identifier string) error {
	delete(m.challenges, identifier)
	return nil
}

type memUserStore struct {
	users map[string]*models.User
}

func (m *memUserStore) Upsert(_ context.Context, identifier string, _ enums.Channel) error {
	if _, ok := m.users[identifier]; !ok {
		id := uuid.New()
		user := &models.User{ID: &id}
		if identifier[0] == '+' || (identifier[0] >= '0' && identifier[0] <= '9') {
			user.Phone = &identifier
		} else {
			user.Email = &identifier
		}
		m.users[identifier] = user
	}
	return nil
}

func (m *memUserStore) ByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	user, ok := m.users[identifier]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type memDispatcher struct {
	lastCode string
	err      error
}

func (m *memDispatcher) Send(_ enums.Channel, _, code string) error {
	if m.err != nil {
		return m.err
	}
	m.lastCode = code
	return nil
}

func newApp() (*fiber.App, *memChallengeStore, *memDispatcher) {
	challenges := &memChallengeStore{challenges: make(map[string]schemas.OtpChallenge)}
	dispatcher := &memDispatcher{}

	authC := controllers.Auth{
		Service: &services.Auth{
			Challenges: challenges,
			Users:      &memUserStore{users: make(map[string]*models.User)},
			Dispatch:   dispatcher,
		},
	}

	app := fiber.New()
	app.Route("/api/auth", func(router fiber.Router) {
		router.Post("/send-otp", authC.SendOTP)
		router.Post("/verify-otp", authC.VerifyOTP)
	})

	return app, challenges, dispatcher
}

func post(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	defer resp.Body.Close()

	var parsed map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response of %s: %v", path, err)
	}

	return resp.StatusCode, parsed
}

func TestSendAndVerifyOTP(t *testing.T) {
	app, challenges, dispatcher := newApp()

	status, body := post(t, app, "/api/auth/send-otp", fiber.Map{"email": "a@b.com"})
	if status != http.StatusOK {
		t.Fatalf("send-otp status = %d, want 200", status)
	}
	if body["success"] != true {
		t.Fatalf("send-otp success = %v, want true", body["success"])
	}
	if len(challenges.challenges) != 1 {
		t.Fatalf("challenge count = %d, want 1", len(challenges.challenges))
	}

	wrong := "000000"
	if wrong == dispatcher.lastCode {
		wrong = "000001"
	}

	status, body = post(t, app, "/api/auth/verify-otp", fiber.Map{"identifier": "a@b.com", "otp": wrong})
	if status != http.StatusBadRequest {
		t.Fatalf("wrong code status = %d, want 400", status)
	}
	if body["message"] != "Invalid OTP" {
		t.Errorf("wrong code message = %v, want Invalid OTP", body["message"])
	}
	if got := challenges.challenges["a@b.com"].Attempts; got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}

	status, body = post(t, app, "/api/auth/verify-otp", fiber.Map{"identifier": "a@b.com", "otp": dispatcher.lastCode})
	if status != http.StatusOK {
		t.Fatalf("verify-otp status = %d, want 200", status)
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no user object: %v", body)
	}
	if user["email"] != "a@b.com" {
		t.Errorf("user email = %v, want a@b.com", user["email"])
	}
	if len(challenges.challenges) != 0 {
		t.Errorf("challenge count after verification = %d, want 0", len(challenges.challenges))
	}
}

func TestSendOTP_InvalidPhone(t *testing.T) {
	app, challenges, _ := newApp()

	status, body := post(t, app, "/api/auth/send-otp", fiber.Map{"phone": "12345"})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["message"] != "Invalid phone" {
		t.Errorf("message = %v, want Invalid phone", body["message"])
	}
	if len(challenges.challenges) != 0 {
		t.Error("no challenge should be stored for an invalid phone")
	}
}

func TestSendOTP_MissingIdentifier(t *testing.T) {
	app, _, _ := newApp()

	status, body := post(t, app, "/api/auth/send-otp", fiber.Map{})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["message"] != "Provide email or phone" {
		t.Errorf("message = %v, want Provide email or phone", body["message"])
	}
}

func TestSendOTP_DispatchFailure(t *testing.T) {
	app, challenges, dispatcher := newApp()
	dispatcher.err = errors.ErrServerError

	status, body := post(t, app, "/api/auth/send-otp", fiber.Map{"email": "a@b.com"})
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", status)
	}
	if body["message"] != "OTP sending failed" {
		t.Errorf("message = %v, want OTP sending failed", body["message"])
	}
	if len(challenges.challenges) != 1 {
		t.Error("the stored challenge should survive a failed dispatch")
	}
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	app, _, _ := newApp()

	status, body := post(t, app, "/api/auth/verify-otp", fiber.Map{"identifier": "a@b.com"})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["message"] != "Identifier and OTP required" {
		t.Errorf("message = %v, want Identifier and OTP required", body["message"])
	}
}

func TestVerifyOTP_WithoutRequest(t *testing.T) {
	app, _, _ := newApp()

	status, body := post(t, app, "/api/auth/verify-otp", fiber.Map{"identifier": "a@b.com", "otp": "123456"})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["message"] != "No OTP request found" {
		t.Errorf("message = %v, want No OTP request found", body["message"])
	}
}

func TestVerifyOTP_AttemptsExhausted(t *testing.T) {
	app, _, dispatcher := newApp()

	status, _ := post(t, app, "/api/auth/send-otp", fiber.Map{"email": "a@b.com"})
	if status != http.StatusOK {
		t.Fatalf("send-otp status = %d, want 200", status)
	}

	wrong := "000000"
	if wrong == dispatcher.lastCode {
		wrong = "000001"
	}

	for i := 0; i < services.MaxAttempts; i++ {
		status, _ = post(t, app, "/api/auth/verify-otp", fiber.Map{"identifier": "a@b.com", "otp": wrong})
		if status != http.StatusBadRequest {
			t.Fatalf("attempt %d status = %d, want 400", i+1, status)
		}
	}

	status, body := post(t, app, "/api/auth/verify-otp", fiber.Map{"identifier": "a@b.com", "otp": dispatcher.lastCode})
	if status != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", status)
	}
	if body["message"] != "Too many attempts" {
		t.Errorf("message = %v, want Too many attempts", body["message"])
	}
}
