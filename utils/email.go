package utils

import (
	"fmt"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/productr/server/config"
	"github.com/productr/server/enums"
	"github.com/productr/server/templates"
	"gopkg.in/gomail.v2"
)

const emailFromName = "Productr"

// Email is a struct that contains email related operations
type Email struct {
	Env *config.Env
}

// Send delivers the OTP code to the given destination. The email channel goes
// through the SMTP relay, the phone channel is log only until an SMS gateway
// is hooked up
func (e *Email) Send(channel enums.Channel, destination, code string) error {
	if channel == enums.ChannelPhone {
		logger.Log(fmt.Sprintf("SMS OTP to %s: %s", destination, code))
		return nil
	}

	emailTemplate, err := templates.Email{}.LoginOTPTmpl(code)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", e.Env.FromEmail, emailFromName)
	msg.SetHeader("To", destination)
	msg.SetHeader("Subject", "Your Productr Login OTP")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP is %s. It is valid for 5 minutes.", code))
	msg.AddAlternative("text/html", emailTemplate)

	dialer := gomail.NewDialer(e.Env.SMTPHost, e.Env.SMTPPort, e.Env.FromEmail, e.Env.EmailPassword)
	return dialer.DialAndSend(msg)
}
