package templates_test

import (
	"strings"
	"testing"

	"github.com/productr/server/templates"
)

func TestLoginOTPTmpl(t *testing.T) {
	emailHTML, err := templates.Email{}.LoginOTPTmpl("482915")
	if err != nil {
		t.Fatalf("LoginOTPTmpl: %v", err)
	}

	for _, digit := range []string{"4", "8", "2", "9", "1", "5"} {
		if !strings.Contains(emailHTML, ">"+digit+"<") {
			t.Errorf("rendered email is missing the digit block %q", digit)
		}
	}

	if !strings.Contains(emailHTML, "Productr") {
		t.Error("rendered email is missing the application name")
	}
}

func TestLoginOTPTmpl_RejectsWrongLength(t *testing.T) {
	for _, otp := range []string{"", "12345", "1234567"} {
		if _, err := (templates.Email{}).LoginOTPTmpl(otp); err == nil {
			t.Errorf("LoginOTPTmpl(%q) should fail", otp)
		}
	}
}
