package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spectrumsync/backend/internal/auth"
	"github.com/spectrumsync/backend/internal/models"
)

// Users handles user persistence in a MongoDB collection.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database, collection string) *Users {
	return &Users{col: db.Collection(collection)}
}

// EnsureIndexes creates the unique index on email. Concurrent registrations
// for the same address resolve here: the losing insert fails with a
// duplicate key error.
func (s *Users) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users index: %w", err)
	}
	return nil
}

func (s *Users) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return auth.ErrDuplicateAccount
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Users) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *Users) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, auth.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

var _ auth.UserStore = (*Users)(nil)
