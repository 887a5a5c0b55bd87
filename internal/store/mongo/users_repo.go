package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"

	"github.com/lamontana/storefront/internal/core"
)

type UserRepoMongo struct {
	coll      *mongodrv.Collection
	opTimeout time.Duration
}

func NewUserRepo(db *mongodrv.Database, opTimeout time.Duration) *UserRepoMongo {
	return &UserRepoMongo{
		coll:      db.Collection(ColUsers),
		opTimeout: opTimeout,
	}
}

// Create relies on the unique email index to reject duplicates.
func (r *UserRepoMongo) Create(ctx context.Context, u core.UserProfile) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, toUserDoc(u)); err != nil {
		if isDuplicateKey(err) {
			return core.ErrUserExists
		}
		return fmt.Errorf("usuarios.insert: %w", err)
	}
	return nil
}

func (r *UserRepoMongo) Get(ctx context.Context, id string) (core.UserProfile, error) {
	return r.findOne(ctx, bson.M{"_id": id}, "usuarios.findOne")
}

func (r *UserRepoMongo) GetByEmail(ctx context.Context, email string) (core.UserProfile, error) {
	return r.findOne(ctx, bson.M{"email": core.NormalizeEmail(email)}, "usuarios.findByEmail")
}

func (r *UserRepoMongo) findOne(ctx context.Context, filter bson.M, op string) (core.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var doc UserDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) {
			return core.UserProfile{}, core.ErrUserNotFound
		}
		return core.UserProfile{}, fmt.Errorf("%s: %w", op, err)
	}
	return fromUserDoc(doc), nil
}

// Update sets only the patched fields, the way the profile screen merges.
func (r *UserRepoMongo) Update(ctx context.Context, id string, patch core.UserPatch, updatedAt time.Time) error {
	set := bson.M{"actualizadoEn": updatedAt}
	if patch.FirstName != nil {
		set["nombre"] = *patch.FirstName
	}
	if patch.LastName != nil {
		set["apellido"] = *patch.LastName
	}
	if patch.Phone != nil {
		set["telefono"] = *patch.Phone
	}
	if patch.Address != nil {
		set["direccion"] = *patch.Address
	}
	return r.set(ctx, id, set, "usuarios.update")
}

func (r *UserRepoMongo) SetPasswordHash(ctx context.Context, id, hash string, updatedAt time.Time) error {
	return r.set(ctx, id, bson.M{"passwordHash": hash, "actualizadoEn": updatedAt}, "usuarios.setPassword")
}

func (r *UserRepoMongo) set(ctx context.Context, id string, set bson.M, op string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return core.ErrUserNotFound
	}
	return nil
}
