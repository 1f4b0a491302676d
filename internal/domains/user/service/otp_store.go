package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
)

// otpStore keeps OTP codes and failed-attempt counters in redis so multiple
// API instances share state. Both keys expire with the code.
type otpStore struct {
	client *redis.Client
	ttl    time.Duration
}

func newOTPStore(client *redis.Client, ttlSeconds int) *otpStore {
	return &otpStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

func otpCodeKey(phone string) string {
	return fmt.Sprintf("otp:code:%s", phone)
}

func otpAttemptsKey(phone string) string {
	return fmt.Sprintf("otp:attempts:%s", phone)
}

// generateCode produces a 6-digit code with crypto-grade randomness.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *otpStore) Put(ctx context.Context, phone, code string) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, otpCodeKey(phone), code, s.ttl)
	pipe.Set(ctx, otpAttemptsKey(phone), 0, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the stored code, or "" when none exists (expired or never
// requested).
func (s *otpStore) Get(ctx context.Context, phone string) (string, error) {
	code, err := s.client.Get(ctx, otpCodeKey(phone)).Result()
	if err == redis.Nil {
		return "", nil
	}
	return code, err
}

// RecordFailure bumps the attempt counter and returns the new count.
func (s *otpStore) RecordFailure(ctx context.Context, phone string) (int64, error) {
	return s.client.Incr(ctx, otpAttemptsKey(phone)).Result()
}

func (s *otpStore) Attempts(ctx context.Context, phone string) (int64, error) {
	n, err := s.client.Get(ctx, otpAttemptsKey(phone)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// Clear removes the code and counter after a successful verification.
func (s *otpStore) Clear(ctx context.Context, phone string) error {
	return s.client.Del(ctx, otpCodeKey(phone), otpAttemptsKey(phone)).Err()
}
