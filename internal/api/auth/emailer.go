package auth

import (
	"fmt"
	"net/smtp"
	"os"

	"servicetrack/config"
)

func SendVerificationEmail(to string, token string) error {
	from := os.Getenv("SMTP_FROM")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")

	link := fmt.Sprintf("%s/verify?token=%s", config.PUBLIC_BASE_URL, token)

	if host == "" {
		// No SMTP configured; log the link so local signups stay usable.
		fmt.Println("📨 Verification link:", link)
		return nil
	}

	auth := smtp.PlainAuth("", from, password, host)

	subject := "Verify Your Account"
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)

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
