package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Sender delivers transactional SMS (OTP codes, order confirmations).
type Sender interface {
	SendSMS(ctx context.Context, to, message string) (messageID string, err error)
}

// MockSMSService logs messages instead of sending them; used in development.
type MockSMSService struct{}

func NewMockSMSService() *MockSMSService {
	return &MockSMSService{}
}

func (s *MockSMSService) SendSMS(ctx context.Context, to, message string) (messageID string, err error) {
	log.Info().
		Str("to", to).
		Str("message", message).
		Msg("[MOCK] SMS sent successfully")

	messageID = fmt.Sprintf("mock-sms-%d", time.Now().Unix())
	return messageID, nil
}
