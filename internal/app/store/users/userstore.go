// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/sharewallet/sharewallet/internal/app/system/normalize"
	"github.com/sharewallet/sharewallet/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateUser = errors.New("a user with this username or email already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByEmail looks up a user by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername looks up a user by exact username.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"username": normalize.Username(username)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByRefreshToken finds the user currently holding this refresh token.
func (s *Store) GetByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"refresh_token": token}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByEmail reports whether a registered user has this email. This is
// the classifier's user-exists lookup.
func (s *Store) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all users in creation order.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user. Email and role are normalized; duplicates on
// either unique key surface as ErrDuplicateUser.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.Username = normalize.Username(u.Username)
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	if u.Role == "" {
		u.Role = models.RoleRegular
	}
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateUser
		}
		return models.User{}, err
	}
	return u, nil
}

// SetRefreshToken stores the user's current refresh token (on login).
func (s *Store) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"refresh_token": token,
		"updated_at":    time.Now().UTC(),
	}})
	return err
}

// ClearRefreshToken drops the user's stored refresh token (on logout).
func (s *Store) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{
		"$unset": bson.M{"refresh_token": ""},
		"$set":   bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// DeleteByEmail removes the user with this email.
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"email": normalize.Email(email)})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
