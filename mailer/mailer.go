package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/senthoormurugank23/DIGITAL-HUB-FOR-FURNITURE-SHOP/configs"
)

const fromName = "SAP Furnitures"

func send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", configs.EnvEmailUser(), fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(configs.EnvSMTPHost(), configs.EnvSMTPPort(), configs.EnvEmailUser(), configs.EnvEmailPass())
	return d.DialAndSend(m)
}

// SendVerificationEmail mails the signed verification link to a freshly
// registered user.
func SendVerificationEmail(to, token string) error {
	link := fmt.Sprintf("%s/verify-email/%s", configs.EnvClientURL(), token)
	body := fmt.Sprintf("Please click the following link to verify your email: %s", link)
	return send(to, "Email Verification", body)
}

// SendOTPEmail mails a password-reset code, valid for five minutes.
func SendOTPEmail(to, otp string) error {
	body := fmt.Sprintf("Your OTP for password reset is: %s. It is valid for 5 minutes.", otp)
	return send(to, "Password Reset OTP", body)
}
