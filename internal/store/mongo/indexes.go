package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := ensureIndexes(ctx, db, ColProducts,
		newIndex("nombre", 1, "productos_nombre_unique", true),
		newIndex("tipo", 1, "productos_tipo", false),
	); err != nil {
		return fmt.Errorf("ensure productos indexes: %w", err)
	}
	if err := ensureIndexes(ctx, db, ColUsers,
		newIndex("email", 1, "usuarios_email_unique", true),
	); err != nil {
		return fmt.Errorf("ensure usuarios indexes: %w", err)
	}
	if err := ensureIndexes(ctx, db, ColOrders,
		newIndex("numero", 1, "pedidos_numero_unique", true),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "usuario_id", Value: 1}, {Key: "creadoEn", Value: -1}},
			Options: options.Index().SetName("pedidos_usuario_creado"),
		},
	); err != nil {
		return fmt.Errorf("ensure pedidos indexes: %w", err)
	}
	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, coll string, models ...mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
	return err
}

func newIndex(field string, asc int32, name string, unique bool) mongo.IndexModel {
	opts := options.Index().SetName(name)
	if unique {
		opts = opts.SetUnique(true)
	}
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: asc}},
		Options: opts,
	}
}
