package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lamontana/storefront/internal/core"
)

type OrderRepoMongo struct {
	coll      *mongodrv.Collection
	counters  *mongodrv.Collection
	opTimeout time.Duration
	clock     func() time.Time
}

func NewOrderRepo(db *mongodrv.Database, opTimeout time.Duration) *OrderRepoMongo {
	return &OrderRepoMongo{
		coll:      db.Collection(ColOrders),
		counters:  db.Collection(ColCounters),
		opTimeout: opTimeout,
		clock:     time.Now,
	}
}

func (repo *OrderRepoMongo) Create(ctx context.Context, order core.Order) error {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, toOrderDoc(order)); err != nil {
		if isDuplicateKey(err) {
			return core.ErrOrderExists
		}
		return fmt.Errorf("pedidos.insert: %w", err)
	}
	return nil
}

func (repo *OrderRepoMongo) Get(ctx context.Context, id string) (core.Order, error) {
	return repo.findOne(ctx, bson.M{"_id": id}, "pedidos.findOne")
}

func (repo *OrderRepoMongo) GetByNumber(ctx context.Context, number string) (core.Order, error) {
	return repo.findOne(ctx, bson.M{"numero": number}, "pedidos.findByNumber")
}

func (repo *OrderRepoMongo) findOne(ctx context.Context, filter bson.M, op string) (core.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	var doc OrderDoc
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Order{}, core.ErrOrderNotFound
		}
		return core.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return fromOrderDoc(doc), nil
}

func (repo *OrderRepoMongo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]core.Order, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	filter := bson.M{"usuario_id": userID}

	total, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("pedidos.count: %w", err)
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset)).
		SetSort(bson.D{{Key: "creadoEn", Value: -1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("pedidos.find: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []core.Order{}
	for cursor.Next(ctx) {
		var doc OrderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("pedidos.decode: %w", err)
		}
		orders = append(orders, fromOrderDoc(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("pedidos.cursor: %w", err)
	}
	return orders, total, nil
}

// NextOrderNumber bumps the per-year counter atomically.
func (repo *OrderRepoMongo) NextOrderNumber(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.opTimeout)
	defer cancel()

	year := repo.clock().Year()
	filter := bson.M{"_id": fmt.Sprintf("order_%d", year)}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result struct {
		Seq int64 `bson:"seq"`
	}
	if err := repo.counters.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return "", fmt.Errorf("pedidos.nextNumber: %w", err)
	}
	return core.FormatOrderNumber(year, result.Seq), nil
}

func isDuplicateKey(err error) bool {
	var we mongodrv.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
