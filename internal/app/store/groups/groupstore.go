// internal/app/store/groups/groupstore.go
package groupstore

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateGroupName = errors.New("a group with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("groups")}
}

// GetByName loads a group by exact name. Returns mongo.ErrNoDocuments if
// not found.
func (s *Store) GetByName(ctx context.Context, name string) (models.Group, error) {
	var g models.Group
	if err := s.c.FindOne(ctx, bson.M{"name": name}).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// Exists reports whether a group with this exact name exists.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"name": name}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns all groups in creation order.
func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.Group
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Create inserts a new group with its initial member list.
func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	if g.Members == nil {
		g.Members = []models.MemberRef{}
	}
	g.CreatedAt = now
	g.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, g); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Group{}, ErrDuplicateGroupName
		}
		return models.Group{}, err
	}
	return g, nil
}

// AddMembers appends members to the group in a single $push and returns the
// updated document. Callers are expected to have classified the emails
// first; the push itself does not re-check membership elsewhere, so two
// concurrent adds that both passed classification can still both land.
func (s *Store) AddMembers(ctx context.Context, name string, members []models.MemberRef) (models.Group, error) {
	update := bson.M{
		"$push": bson.M{"members": bson.M{"$each": members}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"name": name}, update, opts).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// RemoveMembers pulls the given emails out of the group's member list in a
// single $pull and returns the updated document. A group emptied this way
// still exists; groups are never auto-deleted.
func (s *Store) RemoveMembers(ctx context.Context, name string, emails []string) (models.Group, error) {
	update := bson.M{
		"$pull": bson.M{"members": bson.M{"email": bson.M{"$in": emails}}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var g models.Group
	if err := s.c.FindOneAndUpdate(ctx, bson.M{"name": name}, update, opts).Decode(&g); err != nil {
		return models.Group{}, err
	}
	return g, nil
}

// Delete removes a group by name. Returns the number of documents deleted
// (0 or 1).
func (s *Store) Delete(ctx context.Context, name string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// HasMember reports whether the named group currently contains this email.
// This is the classifier's in-target-group lookup.
func (s *Store) HasMember(ctx context.Context, name, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"name": name, "members.email": normalize.Email(email)}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InAnyGroup reports whether any group contains this email. This is the
// classifier's enrolled-anywhere lookup.
func (s *Store) InAnyGroup(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"members.email": normalize.Email(email)}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PullMemberEverywhere removes this email from every group holding it and
// reports whether any membership was actually removed. Used by the
// delete-user cascade.
func (s *Store) PullMemberEverywhere(ctx context.Context, email string) (bool, error) {
	update := bson.M{
		"$pull": bson.M{"members": bson.M{"email": normalize.Email(email)}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.c.UpdateMany(ctx, bson.M{"members.email": normalize.Email(email)}, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
