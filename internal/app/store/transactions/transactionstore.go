// internal/app/store/transactions/transactionstore.go
package transactionstore

import (
	"context"
	"time"

	"github.com/sharewallet/sharewallet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store covers the slice of the transactions collection this service owns:
// counting a user's history and cascading it away when the user is deleted.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("transactions")}
}

// Create inserts a transaction record.
func (s *Store) Create(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	t.ID = primitive.NewObjectID()
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

// CountByUsername returns how many transactions a user has recorded.
func (s *Store) CountByUsername(ctx context.Context, username string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"username": username})
}

// DeleteByUsername removes all of a user's transactions.
// Returns the number of documents deleted.
func (s *Store) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"username": username})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
