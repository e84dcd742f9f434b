package services

import (
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrEmptyContactMessage = fmt.Errorf("message is required")
)

type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

type ContactServicer interface {
	Send(message ContactMessage) error
}

type ContactServiceConfig struct {
	EmailApiKey string
	FromName    string
	FromEmail   string
	ToName      string
	ToEmail     string
	SendFunc    func(apiKey, toName, toEmail, fromName, fromEmail string, data map[string]any) error
}

/*
ContactService forwards contact form messages by email. Without an API
key the message is only logged.
*/
type ContactService struct {
	config ContactServiceConfig
}

func NewContactService(config ContactServiceConfig) ContactService {
	if config.SendFunc == nil {
		config.SendFunc = SendEmail
	}

	return ContactService{
		config: config,
	}
}

func (s ContactService) Send(message ContactMessage) error {
	if strings.TrimSpace(message.Message) == "" {
		return ErrEmptyContactMessage
	}

	if s.config.EmailApiKey == "" || s.config.ToEmail == "" {
		slog.Info("contact message received. email delivery is not configured", "name", message.Name, "email", message.Email)
		return nil
	}

	err := s.config.SendFunc(
		s.config.EmailApiKey,
		s.config.ToName,
		s.config.ToEmail,
		s.config.FromName,
		s.config.FromEmail,
		map[string]any{
			"senderName":  message.Name,
			"senderEmail": message.Email,
			"message":     message.Message,
		},
	)

	if err != nil {
		return fmt.Errorf("error sending contact message: %w", err)
	}

	return nil
}
