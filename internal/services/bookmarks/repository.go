package bookmarks

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrDuplicate is returned when an insert violates the (user_id, url)
// uniqueness constraint.
var ErrDuplicate = errors.New("bookmark already exists for this url")

// Repository defines the interface for bookmark repository operations
type Repository interface {
	Create(ctx context.Context, b *Bookmark) error
	ListByUser(ctx context.Context, userID bson.ObjectID) ([]*Bookmark, error)
	// DeleteByURL removes every bookmark matching (userID, url) and reports
	// how many documents were removed. The unique index makes this at most
	// one in practice, but the operation is a set-delete by contract.
	DeleteByURL(ctx context.Context, userID bson.ObjectID, url string) (int64, error)
}
