// internal/app/features/accounts/handler.go
package accounts

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sharewallet/sharewallet/internal/app/system/auth"
)

// Handler is the shared dependency container for registration, login and
// logout. It holds the Mongo database, the token manager and the logger so
// the individual handlers can share the same core dependencies.
type Handler struct {
	DB   *mongo.Database
	Auth *auth.Manager
	Log  *zap.Logger
}

// NewHandler constructs an accounts Handler. It is typically called from the
// bootstrap BuildHandler function, where the application's DB, token manager
// and logger are already initialized.
func NewHandler(db *mongo.Database, mgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:   db,
		Auth: mgr,
		Log:  logger,
	}
}
