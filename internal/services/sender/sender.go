// Package services содержит сервис отправки писем для сброса пароля.
package services

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/smtp"
	"github.com/magabrotheeeer/magazine-subscription-service/internal/models"
)

// Transport описывает SMTP транспорт, через который уходят письма.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
	IsConfigured() bool
}

// SenderService отправляет пользователям письма для сброса пароля.
type SenderService struct {
	transport Transport
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(log *slog.Logger, transport Transport) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendPasswordReset отправляет пользователю письмо со ссылкой для сброса пароля.
// Если SMTP сервер не задан в конфиге, отправка не выполняется:
// сервис только логирует событие и возвращает успех.
func (s *SenderService) SendPasswordReset(user *models.User) error {
	resetToken := uuid.NewString()
	subject := "Сброс пароля"
	bodyText := fmt.Sprintf("Здравствуйте, %s!\n\nДля сброса пароля перейдите по ссылке:\nhttps://example.com/reset-password?token=%s\n\nЕсли вы не запрашивали сброс, проигнорируйте это письмо.",
		user.Username, resetToken)

	if !s.transport.IsConfigured() {
		s.log.Info("smtp is not configured, skipping password reset email",
			slog.String("email", user.Email))
		return nil
	}
	return s.sendEmail([]string{user.Email}, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("Failed to connect to SMTP server", "error", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("Failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), "error", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("Failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("Failed to get Data writer", "error", sl.Err(err))
		return err
	}

	_, err = wc.Write([]byte(msg))
	if err != nil {
		s.log.Error("Failed to write email body", "error", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("Failed to close Data writer", "error", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("Failed to quit SMTP client", "error", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}
