// Package store opens the configured persistence backend.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/internal/platform/config"
	"github.com/lamontana/storefront/internal/store/dynamo"
	"github.com/lamontana/storefront/internal/store/mongo"
)

// Backend is the set of repositories for one database plus its lifecycle hooks.
type Backend struct {
	Name     string
	Products core.ProductRepo
	Users    core.UserRepo
	Orders   core.OrderRepo

	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}

// Open connects to the database named by cfg.DBType and makes sure its
// indexes or tables exist.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	switch cfg.DBType {
	case "mongo":
		return openMongo(ctx, cfg, log)
	case "dynamodb":
		return openDynamo(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}
}

func openMongo(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	log.Info("connecting to MongoDB", "db", cfg.MongoDB)
	client, err := mongo.NewClient(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
		_ = client.Close(ctx)
		return nil, err
	}

	opTimeout := time.Duration(cfg.MongoOpTimeoutMs) * time.Millisecond
	return &Backend{
		Name:     "mongo",
		Products: mongo.NewProductRepo(client.DB, opTimeout),
		Users:    mongo.NewUserRepo(client.DB, opTimeout),
		Orders:   mongo.NewOrderRepo(client.DB, opTimeout),
		Ping:     client.Ping,
		Close:    client.Close,
	}, nil
}

func openDynamo(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	log.Info("connecting to DynamoDB", "region", cfg.AWSRegion, "endpoint", cfg.DynamoDBEndpoint)
	client, err := dynamo.NewClient(ctx, dynamo.Config{
		Region:          cfg.AWSRegion,
		Endpoint:        cfg.DynamoDBEndpoint,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	}, log)
	if err != nil {
		return nil, err
	}
	if err := dynamo.EnsureTables(ctx, client.DB, log); err != nil {
		return nil, err
	}

	return &Backend{
		Name:     "dynamodb",
		Products: dynamo.NewProductRepo(client.DB),
		Users:    dynamo.NewUserRepo(client.DB),
		Orders:   dynamo.NewOrderRepo(client.DB),
		Ping:     client.Ping,
		Close:    func(context.Context) error { return nil },
	}, nil
}
