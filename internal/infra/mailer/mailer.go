package mailer

import (
	"fmt"
	"net/smtp"

	"museum-app/config"
)

func Send(to string, subject string, body string) error {
	from := config.SMTP_FROM
	password := config.SMTP_PASSWORD
	host := config.SMTP_HOST
	port := config.SMTP_PORT

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}

func SendAuthToken(to string, token string) error {
	subject := "Authorize your account"
	body := fmt.Sprintf("Kindly authorize your account by using this 6 digit token: %s\nvalid for 24 hours", token)
	return Send(to, subject, body)
}
