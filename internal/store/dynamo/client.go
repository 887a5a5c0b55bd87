package dynamo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	maxRetries     = 5
	initialBackoff = 1 * time.Second
	maxBackoff     = 30 * time.Second
)

type Client struct {
	DB *dynamodb.Client
}

type Config struct {
	Region   string
	Endpoint string // e.g. http://localhost:8000 for DynamoDB Local
	// Static keys are only used together with Endpoint; AWS uses IAM roles.
	AccessKeyID     string
	SecretAccessKey string
}

func NewClient(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}

	if cfg.Endpoint != "" {
		// Static credentials keep the SDK away from the instance metadata endpoint.
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(orDefault(cfg.AccessKeyID, "local"), orDefault(cfg.SecretAccessKey, "local"), ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	c := &Client{DB: client}
	if err := c.pingWithRetry(ctx, log); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) pingWithRetry(ctx context.Context, log *slog.Logger) error {
	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := c.Ping(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == maxRetries {
			return fmt.Errorf("dynamodb ping failed after %d attempts: %w", maxRetries, err)
		}

		log.Warn("dynamodb ping failed, retrying", "attempt", attempt, "backoff", backoff, "err", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
	}
}

// Ping lists at most one table (used by /readyz).
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.DB.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)})
	return err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
