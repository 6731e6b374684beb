package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/sharewallet/sharewallet/internal/app/system/normalize"
	"github.com/sharewallet/sharewallet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given username, email, and role.
// The password is a bcrypt hash of "password-" + username.
func (f *Fixtures) CreateUser(ctx context.Context, username, email, role string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password-"+username), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Username:  normalize.Username(username),
		Email:     normalize.Email(email),
		Password:  string(hash),
		Role:      normalize.Role(role),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateGroup creates a test group whose members are the given users.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, members ...models.User) models.Group {
	f.t.Helper()

	refs := make([]models.MemberRef, 0, len(members))
	for _, m := range members {
		refs = append(refs, models.MemberRef{Email: m.Email, User: m.ID})
	}

	now := time.Now().UTC()
	group := models.Group{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Members:   refs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("groups").InsertOne(ctx, group); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return group
}

// CreateTransactions inserts n transactions for the given username.
func (f *Fixtures) CreateTransactions(ctx context.Context, username string, n int) {
	f.t.Helper()

	now := time.Now().UTC()
	docs := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, models.Transaction{
			ID:       primitive.NewObjectID(),
			Username: username,
			Amount:   float64(10 * (i + 1)),
			Type:     "groceries",
			Date:     now,
		})
	}
	if len(docs) == 0 {
		return
	}
	if _, err := f.db.Collection("transactions").InsertMany(ctx, docs); err != nil {
		f.t.Fatalf("failed to create test transactions: %v", err)
	}
}
