package handlers

import (
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWelcomeEmail is best-effort: registration succeeds whether or not the
// email goes out. Skipped entirely when SENDGRID_API_KEY is not set.
func sendWelcomeEmail(email string) {
	key := os.Getenv("SENDGRID_API_KEY")
	if key == "" {
		return
	}

	from := mail.NewEmail("Get It Done", "donotreply@getitdone.example.com")
	subject := "Welcome to Get It Done!"
	to := mail.NewEmail("", email)
	plainTextContent := "Welcome! You are registered and logged in."
	htmlContent := "<strong>Welcome! You are registered and logged in.</strong>"
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(key)
	response, err := client.Send(message)
	if err != nil {
		log.Println("Error sending welcome email:", err)
		return
	}
	log.Println("welcome email sent to:", email, "status:", response.StatusCode)
}
