// internal/app/features/users/handler.go
package users

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sharewallet/sharewallet/internal/app/system/auth"
)

// Handler is the shared dependency container for the users feature.
type Handler struct {
	DB   *mongo.Database
	Auth *auth.Manager
	Log  *zap.Logger
}

// NewHandler constructs a users Handler.
func NewHandler(db *mongo.Database, mgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:   db,
		Auth: mgr,
		Log:  logger,
	}
}

// userPayload is the projection every user read returns. Password hashes and
// refresh tokens never leave the store layer.
type userPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
