package services

import (
	"html/template"
	"strings"

	"github.com/adampresley/adamgokit/email"
)

func SendEmail(apiKey, toName, toEmail, fromName, fromEmail string, data map[string]any) error {
	parsedTemplate := strings.Builder{}

	service := email.NewResendService(&email.Config{
		ApiKey: apiKey,
	})

	tmpl := `
<h1>New message from the website</h1>
<p>Hello {{.toName}}! {{.senderName}} ({{.senderEmail}}) sent a message
through the contact form:</p>
<blockquote>{{.message}}</blockquote>
	`

	data["toName"] = toName

	t := template.Must(template.New("email").Parse(tmpl))
	_ = t.Execute(&parsedTemplate, data)

	return service.Send(email.Mail{
		Body:       parsedTemplate.String(),
		BodyIsHtml: true,
		From: email.EmailAddress{
			Email: fromEmail,
			Name:  fromName,
		},
		Subject: "New contact form message",
		To: []email.EmailAddress{
			{Name: toName, Email: toEmail},
		},
	})
}
