package bookmarks

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Bookmark represents a saved news article.
// A user can bookmark a given URL at most once; the (user_id, url) pair is
// unique at the store level.
type Bookmark struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty" example:"683cdb8aa96ad71e8e075bd1"`
	UserID      bson.ObjectID `bson:"user_id" json:"user_id" example:"683cdb8aa96ad71e8e075bd0"`
	Title       string        `bson:"title" json:"title" example:"Markets rally on rate cut"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	URL         string        `bson:"url" json:"url" example:"https://news.example.com/markets-rally"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	Source      string        `bson:"source,omitempty" json:"source,omitempty" example:"Example News"`
	PublishedAt *time.Time    `bson:"published_at,omitempty" json:"published_at,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at" example:"2025-06-01T23:00:26.005703677Z"`
}
