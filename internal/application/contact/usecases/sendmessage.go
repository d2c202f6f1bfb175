package usecases

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"clubcms/internal/infrastructure/email"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SendMessageCommand struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type SendMessageUseCase struct {
	sender email.Sender
	logger logger.Interface
}

func NewSendMessageUseCase(sender email.Sender, logger logger.Interface) *SendMessageUseCase {
	return &SendMessageUseCase{sender: sender, logger: logger}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) error {
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("Name is required")
	}
	if strings.TrimSpace(cmd.Subject) == "" {
		return errors.NewValidationError("Subject is required")
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return errors.NewValidationError("Message is required")
	}
	if !emailPattern.MatchString(cmd.Email) {
		return errors.NewValidationError("A valid email address is required")
	}

	err := uc.sender.SendContactMessage(email.ContactMessage{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Subject: cmd.Subject,
		Message: cmd.Message,
	})
	if err != nil {
		uc.logger.Errorw("failed to send contact message", "error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}

	uc.logger.Infow("contact message sent", "from", cmd.Email)
	return nil
}
