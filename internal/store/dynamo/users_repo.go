package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/lamontana/storefront/internal/core"
)

const emailClaimPrefix = "email#"

type UserItem struct {
	ID           string `dynamodbav:"id"`
	FirstName    string `dynamodbav:"first_name"`
	LastName     string `dynamodbav:"last_name"`
	Email        string `dynamodbav:"email"`
	Phone        string `dynamodbav:"phone"`
	Address      string `dynamodbav:"address"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// emailClaim reserves an address for one user id.
type emailClaim struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"user_id"`
}

func (i UserItem) ToCore() core.UserProfile {
	createdAt, _ := time.Parse(time.RFC3339, i.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, i.UpdatedAt)
	return core.UserProfile{
		ID:           i.ID,
		FirstName:    i.FirstName,
		LastName:     i.LastName,
		Email:        i.Email,
		Phone:        i.Phone,
		Address:      i.Address,
		PasswordHash: i.PasswordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func userItemFromCore(u core.UserProfile) UserItem {
	return UserItem{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Email:        u.Email,
		Phone:        u.Phone,
		Address:      u.Address,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    u.UpdatedAt.Format(time.RFC3339),
	}
}

type UserRepo struct {
	client *dynamodb.Client
}

func NewUserRepo(client *dynamodb.Client) *UserRepo {
	return &UserRepo{client: client}
}

// Create writes the profile and its email claim in one transaction; a taken
// email cancels both.
func (r *UserRepo) Create(ctx context.Context, u core.UserProfile) error {
	profile, err := attributevalue.MarshalMap(userItemFromCore(u))
	if err != nil {
		return fmt.Errorf("users.marshal: %w", err)
	}
	claim, err := attributevalue.MarshalMap(emailClaim{
		ID:     emailClaimPrefix + core.NormalizeEmail(u.Email),
		UserID: u.ID,
	})
	if err != nil {
		return fmt.Errorf("users.marshalClaim: %w", err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name("id"))).
		Build()
	if err != nil {
		return fmt.Errorf("users.buildExpr: %w", err)
	}
	put := func(item map[string]types.AttributeValue) types.TransactWriteItem {
		return types.TransactWriteItem{Put: &types.Put{
			TableName:                aws.String(TableUsers),
			Item:                     item,
			ConditionExpression:      expr.Condition(),
			ExpressionAttributeNames: expr.Names(),
		}}
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put(claim), put(profile)},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			return core.ErrUserExists
		}
		return fmt.Errorf("users.transactWrite: %w", err)
	}
	return nil
}

func (r *UserRepo) Get(ctx context.Context, id string) (core.UserProfile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableUsers),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("users.getItem: %w", err)
	}
	if out.Item == nil {
		return core.UserProfile{}, core.ErrUserNotFound
	}

	var item UserItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return core.UserProfile{}, fmt.Errorf("users.unmarshal: %w", err)
	}
	return item.ToCore(), nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (core.UserProfile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(TableUsers),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: emailClaimPrefix + core.NormalizeEmail(email)},
		},
	})
	if err != nil {
		return core.UserProfile{}, fmt.Errorf("users.getClaim: %w", err)
	}
	if out.Item == nil {
		return core.UserProfile{}, core.ErrUserNotFound
	}

	var claim emailClaim
	if err := attributevalue.UnmarshalMap(out.Item, &claim); err != nil {
		return core.UserProfile{}, fmt.Errorf("users.unmarshalClaim: %w", err)
	}
	return r.Get(ctx, claim.UserID)
}

func (r *UserRepo) Update(ctx context.Context, id string, patch core.UserPatch, updatedAt time.Time) error {
	update := expression.Set(expression.Name("updated_at"), expression.Value(updatedAt.Format(time.RFC3339)))
	if patch.FirstName != nil {
		update = update.Set(expression.Name("first_name"), expression.Value(*patch.FirstName))
	}
	if patch.LastName != nil {
		update = update.Set(expression.Name("last_name"), expression.Value(*patch.LastName))
	}
	if patch.Phone != nil {
		update = update.Set(expression.Name("phone"), expression.Value(*patch.Phone))
	}
	if patch.Address != nil {
		update = update.Set(expression.Name("address"), expression.Value(*patch.Address))
	}
	return r.update(ctx, id, update, "users.update")
}

func (r *UserRepo) SetPasswordHash(ctx context.Context, id, hash string, updatedAt time.Time) error {
	update := expression.
		Set(expression.Name("password_hash"), expression.Value(hash)).
		Set(expression.Name("updated_at"), expression.Value(updatedAt.Format(time.RFC3339)))
	return r.update(ctx, id, update, "users.setPassword")
}

func (r *UserRepo) update(ctx context.Context, id string, update expression.UpdateBuilder, op string) error {
	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("id"))).
		Build()
	if err != nil {
		return fmt.Errorf("%s.buildExpr: %w", op, err)
	}

	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(TableUsers),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		if isConditionFailed(err) {
			return core.ErrUserNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
