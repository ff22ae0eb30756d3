package mongo

import (
	"context"
	"fmt"

	"newsmark/internal/services/bookmarks"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// BookmarksRepo implements the bookmarks.Repository interface for MongoDB
type BookmarksRepo struct {
	collection *mongo.Collection
}

// NewBookmarksRepo creates a new bookmarks repository.
//
// The unique (user_id, url) index is the authoritative uniqueness constraint:
// the service layer never probes before inserting, it relies on the duplicate
// key error from here. A listing index on (user_id, created_at desc) backs
// the newest-first listing.
func NewBookmarksRepo(parentCtx context.Context, db *mongo.Database) (*BookmarksRepo, error) {
	collection := db.Collection("bookmarks")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "url", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("user_url_unique"),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	}

	ctx, cancel := repoCtx(parentCtx)
	defer cancel()

	for _, indexModel := range indexes {
		if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// Index already exists with compatible options.
				continue
			}
			return nil, fmt.Errorf("failed to create bookmarks collection index: %w", err)
		}
	}

	return &BookmarksRepo{
		collection: collection,
	}, nil
}

// Create inserts a new bookmark. A (user_id, url) collision comes back as
// bookmarks.ErrDuplicate.
func (r *BookmarksRepo) Create(ctx context.Context, b *bookmarks.Bookmark) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, b)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bookmarks.ErrDuplicate
		}
		return err
	}

	return nil
}

// ListByUser returns all bookmarks owned by userID, newest first.
func (r *BookmarksRepo) ListByUser(ctx context.Context, userID bson.ObjectID) ([]*bookmarks.Bookmark, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	items := make([]*bookmarks.Bookmark, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// DeleteByURL deletes every bookmark matching (userID, url) and returns the
// number of removed documents.
func (r *BookmarksRepo) DeleteByURL(ctx context.Context, userID bson.ObjectID, url string) (int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{
		"user_id": userID,
		"url":     url,
	})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
