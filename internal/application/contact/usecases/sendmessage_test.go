package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubcms/internal/infrastructure/email"
	apperrors "clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type fakeSender struct {
	sent []email.ContactMessage
	err  error
}

func (f *fakeSender) SendContactMessage(msg email.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func validMessage() SendMessageCommand {
	return SendMessageCommand{
		Name:    "Alex",
		Email:   "alex@example.org",
		Subject: "Training times",
		Message: "When does practice start?",
	}
}

func TestSendMessageUseCase_Success(t *testing.T) {
	sender := &fakeSender{}
	uc := NewSendMessageUseCase(sender, noopLogger{})

	err := uc.Execute(context.Background(), validMessage())
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alex@example.org", sender.sent[0].Email)
	assert.Equal(t, "Training times", sender.sent[0].Subject)
}

func TestSendMessageUseCase_RejectsInvalidEmail(t *testing.T) {
	sender := &fakeSender{}
	uc := NewSendMessageUseCase(sender, noopLogger{})

	for _, addr := range []string{"", "plainaddress", "missing@tld", "two words@example.org"} {
		cmd := validMessage()
		cmd.Email = addr
		err := uc.Execute(context.Background(), cmd)
		assert.True(t, apperrors.IsValidationError(err), "email %q", addr)
	}
	assert.Empty(t, sender.sent)
}

func TestSendMessageUseCase_RequiredFields(t *testing.T) {
	uc := NewSendMessageUseCase(&fakeSender{}, noopLogger{})

	for _, mutate := range []func(*SendMessageCommand){
		func(c *SendMessageCommand) { c.Name = "  " },
		func(c *SendMessageCommand) { c.Subject = "" },
		func(c *SendMessageCommand) { c.Message = "" },
	} {
		cmd := validMessage()
		mutate(&cmd)
		err := uc.Execute(context.Background(), cmd)
		assert.True(t, apperrors.IsValidationError(err))
	}
}

func TestSendMessageUseCase_SenderFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp unreachable")}
	uc := NewSendMessageUseCase(sender, noopLogger{})

	err := uc.Execute(context.Background(), validMessage())
	require.Error(t, err)
	assert.False(t, apperrors.IsValidationError(err))
}
