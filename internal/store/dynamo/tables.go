package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	TableProducts = "lamontana_products"
	TableUsers    = "lamontana_users"
	TableOrders   = "lamontana_orders"
	TableCounters = "lamontana_counters" // order number sequences
)

const (
	GSIOrdersNumber = "number-index"
	GSIOrdersUser   = "user_id-created_at-index"
)

// EnsureTables creates missing tables. Existing tables are left untouched.
func EnsureTables(ctx context.Context, client *dynamodb.Client, log *slog.Logger) error {
	for _, in := range tableDefinitions() {
		name := aws.ToString(in.TableName)
		exists, err := tableExists(ctx, client, name)
		if err != nil {
			return fmt.Errorf("check table %s: %w", name, err)
		}
		if exists {
			log.Debug("table exists", "table", name)
			continue
		}

		log.Info("creating table", "table", name)
		if _, err := client.CreateTable(ctx, in); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
	}
	return nil
}

func tableDefinitions() []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(TableProducts),
			KeySchema:            []types.KeySchemaElement{hashKey("name")},
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("name")},
			BillingMode:          types.BillingModePayPerRequest,
		},
		{
			// Holds both profile items (id = user id) and email claim items
			// (id = "email#<address>") so emails stay unique.
			TableName:            aws.String(TableUsers),
			KeySchema:            []types.KeySchemaElement{hashKey("id")},
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("id")},
			BillingMode:          types.BillingModePayPerRequest,
		},
		{
			TableName: aws.String(TableOrders),
			KeySchema: []types.KeySchemaElement{hashKey("id")},
			AttributeDefinitions: []types.AttributeDefinition{
				stringAttr("id"),
				stringAttr("number"),
				stringAttr("user_id"),
				stringAttr("created_at"),
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName:  aws.String(GSIOrdersNumber),
					KeySchema:  []types.KeySchemaElement{hashKey("number")},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
				{
					IndexName: aws.String(GSIOrdersUser),
					KeySchema: []types.KeySchemaElement{
						hashKey("user_id"),
						{AttributeName: aws.String("created_at"), KeyType: types.KeyTypeRange},
					},
					Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
				},
			},
			BillingMode: types.BillingModePayPerRequest,
		},
		{
			TableName:            aws.String(TableCounters),
			KeySchema:            []types.KeySchemaElement{hashKey("counter_name")},
			AttributeDefinitions: []types.AttributeDefinition{stringAttr("counter_name")},
			BillingMode:          types.BillingModePayPerRequest,
		},
	}
}

func hashKey(name string) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}
}

func stringAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func tableExists(ctx context.Context, client *dynamodb.Client, name string) (bool, error) {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func isConditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
