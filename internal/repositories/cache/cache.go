// Package cache provides a Redis-backed read cache for wallet records.
// Wallets are keyed by id; every balance-affecting mutation invalidates
// the cached copy so a read never sees a stale balance for longer than
// one round trip.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"walletbook/internal/models"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, ttl time.Duration) *Service {
	return &Service{client: client, ttl: ttl}
}

func (s *Service) GetWallet(ctx context.Context, id string) (*models.Wallet, error) {
	data, err := s.client.Get(ctx, walletKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("wallet %s not in cache", id)
		}
		return nil, fmt.Errorf("failed to get cached wallet: %w", err)
	}

	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached wallet: %w", err)
	}
	return &wallet, nil
}

func (s *Service) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}
	return s.client.Set(ctx, walletKey(wallet.ID), data, s.ttl).Err()
}

func (s *Service) InvalidateWallet(ctx context.Context, id string) error {
	return s.client.Del(ctx, walletKey(id)).Err()
}

func (s *Service) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *Service) Close() error {
	return s.client.Close()
}

func walletKey(id string) string {
	return "wallet:id:" + id
}
