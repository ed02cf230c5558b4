// Package templates contains the email templates
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Email contains all the templates that are related to email
type Email struct{}

// LoginOTPTmpl is a function that is used to get the email with the OTP that is used to log in
func (Email) LoginOTPTmpl(otp string) (emailHTML string, err error) {
	codes := strings.Split(otp, "")
	if len(codes) != 6 {
		return "", fmt.Errorf("the OTP must contain exactly 6 digits")
	}

	tmpl := `
<html>
  <style>
    .container {
      display: flex;
      flex-direction: row;
      align-items: center;
      justify-content: center;
      width: 100%;
      margin-top: 10px;
      column-gap: 20px;
    }

    .block {
      display: flex;
      border: 2px solid black;
      border-radius: 20%;
      width: 50px;
      height: 50px;
      align-items: center;
      justify-content: center;
    }
  </style>
  <h1>Productr</h1>
  <strong> Use the below OTP(One Time Password) to log in to your account </strong>
  <br />
  <p>The OTP is valid for 5 minutes</p>
  <div class="container">
    <section class="block">{{.CODE1}}</section>
    <section class="block">{{.CODE2}}</section>
    <section class="block">{{.CODE3}}</section>
    <section class="block">{{.CODE4}}</section>
    <section class="block">{{.CODE5}}</section>
    <section class="block">{{.CODE6}}</section>
  </div>
  <footer>
    If you did not request this code you can safely ignore this email
  </footer>
</html>
`

	t := template.Must(template.New("loginOTP").Parse(tmpl))

	var buf bytes.Buffer
	err = t.Execute(&buf, struct {
		CODE1 string
		CODE2 string
		CODE3 string
		CODE4 string
		CODE5 string
		CODE6 string
	}{
		CODE1: codes[0],
		CODE2: codes[1],
		CODE3: codes[2],
		CODE4: codes[3],
		CODE5: codes[4],
		CODE6: codes[5],
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
