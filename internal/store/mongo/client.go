package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lamontana/storefront/internal/platform/config"
)

const (
	maxRetries     = 5
	initialBackoff = 1 * time.Second
	maxBackoff     = 30 * time.Second
)

type MongoClient struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewClient connects and pings with exponential backoff so the API can start
// before the database container is ready.
func NewClient(cfg *config.Config, log *slog.Logger) (*MongoClient, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName("lamontana-storefront")
	connectTimeout := time.Duration(cfg.MongoConnectTimeoutSec) * time.Second

	var client *mongo.Client
	err := withBackoff(log, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		c, err := mongo.Connect(ctx, clientOpts)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		if err := c.Ping(ctx, nil); err != nil {
			_ = c.Disconnect(context.Background())
			return fmt.Errorf("ping: %w", err)
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mongo after %d attempts: %w", maxRetries, err)
	}

	return &MongoClient{Client: client, DB: client.Database(cfg.MongoDB)}, nil
}

func withBackoff(log *slog.Logger, attempt func() error) error {
	backoff := initialBackoff
	var err error
	for i := 1; i <= maxRetries; i++ {
		if err = attempt(); err == nil {
			return nil
		}
		if i == maxRetries {
			break
		}
		log.Warn("mongo unavailable, retrying", "attempt", i, "backoff", backoff, "err", err)
		time.Sleep(backoff)
		backoff = min(backoff*2, maxBackoff)
	}
	return err
}

// Ping verifies connectivity (used by /readyz).
func (c *MongoClient) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx, nil)
}

func (c *MongoClient) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}
