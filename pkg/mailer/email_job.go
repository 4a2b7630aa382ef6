package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// NewWelcomeJob builds the registration welcome email.
func NewWelcomeJob(email, username, displayName string) EmailJob {
	return EmailJob{
		To:      email,
		Subject: "sözlük'e hoş geldin",
		Text: fmt.Sprintf("Merhaba %s,\n\n@%s hesabın hazır. Başlık açabilir, entry girebilir ve beğenebilirsin.\n\nİyi yazmalar.",
			displayName, username),
		HTML: fmt.Sprintf("<p>Merhaba %s,</p><p><strong>@%s</strong> hesabın hazır. Başlık açabilir, entry girebilir ve beğenebilirsin.</p><p>İyi yazmalar.</p>",
			displayName, username),
	}
}
