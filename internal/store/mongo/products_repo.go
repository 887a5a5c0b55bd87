package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/internal/platform/ids"
)

type ProductRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewProductRepo(db *mongodrv.Database, opTimeout time.Duration) *ProductRepoMongo {
	return &ProductRepoMongo{
		coll:      db.Collection(ColProducts),
		opTimeout: opTimeout,
	}
}

// List returns every available product ordered by name. Unavailable and
// nameless records are skipped.
func (r *ProductRepoMongo) List(ctx context.Context) ([]core.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("productos.find: %w", err)
	}
	defer cur.Close(ctx)

	products := []core.Product{}
	for cur.Next(ctx) {
		var doc ProductDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("productos.decode: %w", err)
		}
		if p, ok := fromProductDoc(doc); ok {
			products = append(products, p)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("productos.cursor: %w", err)
	}
	return products, nil
}

func (r *ProductRepoMongo) GetByName(ctx context.Context, name string) (core.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc ProductDoc
	err := r.coll.FindOne(ctx, bson.M{"nombre": strings.TrimSpace(name)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.Product{}, core.ErrProductNotFound
		}
		return core.Product{}, fmt.Errorf("productos.findByName: %w", err)
	}
	p, ok := fromProductDoc(doc)
	if !ok {
		return core.Product{}, core.ErrProductNotFound
	}
	return p, nil
}

// UpsertByName writes p keyed by its name and marks it available.
func (r *ProductRepoMongo) UpsertByName(ctx context.Context, p core.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	name := strings.TrimSpace(p.Name)
	set := bson.M{
		"nombre":       name,
		"descripcion":  p.Description,
		"tipo":         kindFor(p.Category),
		"categoria":    string(p.Category),
		"precio":       p.Price,
		"disponible":   true,
		"imagen_local": p.ImageRes,
		"por_copia":    p.CopyBased,
	}
	if p.ImageURL != "" {
		set["imagenes"] = []string{p.ImageURL}
	}

	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"nombre": name},
		bson.M{"$set": set, "$setOnInsert": bson.M{"_id": ids.New()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("productos.upsert: %w", err)
	}
	return nil
}
