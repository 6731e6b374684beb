// internal/app/features/groups/handler.go
package groups

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/sharewallet/sharewallet/internal/app/system/auth"
)

// Handler is the shared dependency container for the groups feature. It
// holds references to the Mongo database, the token manager and the logger
// so the various handlers (create, list, view, member mutations, delete)
// can all share the same core dependencies.
type Handler struct {
	DB   *mongo.Database
	Auth *auth.Manager
	Log  *zap.Logger
}

// NewHandler constructs a new groups Handler. It is typically called from
// the bootstrap BuildHandler function, where the application's DB, token
// manager and logger are already initialized.
func NewHandler(db *mongo.Database, mgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:   db,
		Auth: mgr,
		Log:  logger,
	}
}
