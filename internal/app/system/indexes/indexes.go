// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent; errors
are aggregated so any problem is visible and startup can fail fast.

The unique indexes here back the procedural guarantees the handlers rely on:
duplicate registration and duplicate group names surface as driver duplicate
key errors rather than racing find-then-insert checks.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureGroups(ctx, db); err != nil {
		problems = append(problems, "groups: "+err.Error())
	}
	if err := ensureTransactions(ctx, db); err != nil {
		problems = append(problems, "transactions: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensure(ctx context.Context, db *mongo.Database, coll string, models []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
	return err
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db, "users", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("uniq_username").SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "refresh_token", Value: 1}},
			Options: options.Index().SetName("refresh_token").
				SetPartialFilterExpression(bson.M{"refresh_token": bson.M{"$type": "string"}}),
		},
	})
}

func ensureGroups(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db, "groups", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("uniq_name").SetUnique(true),
		},
		{
			// Serves both "which group holds this email" and the per-group
			// membership checks the classifier issues.
			Keys:    bson.D{{Key: "members.email", Value: 1}},
			Options: options.Index().SetName("members_email"),
		},
	})
}

func ensureTransactions(ctx context.Context, db *mongo.Database) error {
	return ensure(ctx, db, "transactions", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username"),
		},
	})
}
