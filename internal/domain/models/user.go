// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold. Admins can manage every user and group;
// regular users act only on themselves and on groups they belong to.
const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)

// User represents an account that can sign in and join expense groups.
//
// NOTE:
//   - Email is stored lowercase (see system/normalize) and is unique.
//   - Group membership is not embedded on User; groups carry their own
//     member lists (see Group).
//   - RefreshToken holds the currently valid refresh JWT, or nil after
//     logout. It is never serialized into API responses.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	RefreshToken *string            `bson:"refresh_token,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
