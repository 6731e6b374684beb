// internal/domain/models/transaction.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction is a single recorded expense. This service only reads and
// cascades over transactions (deleting a user deletes their history);
// recording and categorizing them belongs to the transactions service.
type Transaction struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Amount   float64            `bson:"amount" json:"amount"`
	Type     string             `bson:"type" json:"type"`
	Date     time.Time          `bson:"date" json:"date"`
}
