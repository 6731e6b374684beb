package transactionstore_test

import (
	"testing"

	transactionstore "github.com/sharewallet/sharewallet/internal/app/store/transactions"
	"github.com/sharewallet/sharewallet/internal/domain/models"
	"github.com/sharewallet/sharewallet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := transactionstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Transaction{
		Username: "mario",
		Amount:   42.50,
		Type:     "groceries",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Date.IsZero() {
		t.Error("expected Date to be set")
	}
}

func TestStore_CountByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := transactionstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTransactions(ctx, "mario", 3)
	fixtures.CreateTransactions(ctx, "luigi", 1)

	count, err := store.CountByUsername(ctx, "mario")
	if err != nil {
		t.Fatalf("CountByUsername failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 transactions for mario, got %d", count)
	}

	count, err = store.CountByUsername(ctx, "peach")
	if err != nil {
		t.Fatalf("CountByUsername failed: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 transactions for peach, got %d", count)
	}
}

func TestStore_DeleteByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := transactionstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTransactions(ctx, "mario", 2)
	fixtures.CreateTransactions(ctx, "luigi", 1)

	deleted, err := store.DeleteByUsername(ctx, "mario")
	if err != nil {
		t.Fatalf("DeleteByUsername failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}

	remaining, err := store.CountByUsername(ctx, "luigi")
	if err != nil {
		t.Fatalf("CountByUsername failed: %v", err)
	}
	if remaining != 1 {
		t.Errorf("expected luigi's transaction untouched, got %d", remaining)
	}
}
