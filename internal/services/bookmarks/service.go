package bookmarks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"newsmark/internal/utils/sanitize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service handles bookmark business logic
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a new bookmarks service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// CreateBookmarkRequest represents a bookmark creation request.
// PublishedAt carries the article's publication time as the provider sent it.
type CreateBookmarkRequest struct {
	Title       string `json:"title" validate:"required" example:"Markets rally on rate cut"`
	Description string `json:"description" example:"Stocks climbed after the announcement"`
	URL         string `json:"url" validate:"required,url" example:"https://news.example.com/markets-rally"`
	Image       string `json:"image" validate:"omitempty,url" example:"https://news.example.com/markets-rally.jpg"`
	PublishedAt string `json:"publishedAt" example:"2024-01-01T09:30:00Z"`
	Source      string `json:"source" example:"Example News"`
}

// DeleteBookmarkRequest represents a bookmark deletion request
type DeleteBookmarkRequest struct {
	URL string `json:"url" validate:"required,url" example:"https://news.example.com/markets-rally"`
}

// Create saves a bookmark for the user. A second save of the same URL by the
// same user fails with ErrAlreadyBookmarked.
func (s *Service) Create(ctx context.Context, userID bson.ObjectID, req CreateBookmarkRequest) (*Bookmark, error) {
	bookmark := &Bookmark{
		ID:          bson.NewObjectID(),
		UserID:      userID,
		Title:       sanitize.Clean(req.Title),
		Description: sanitize.Clean(req.Description),
		URL:         req.URL,
		Image:       req.Image,
		Source:      sanitize.Clean(req.Source),
		PublishedAt: parsePublishedAt(req.PublishedAt),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, bookmark); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, ErrAlreadyBookmarked
		}
		s.log.Error(ErrCreateBookmark.Error(), "error", err, "user_id", userID.Hex())
		return nil, ErrCreateBookmark
	}

	return bookmark, nil
}

// List returns the user's bookmarks, most recently created first.
func (s *Service) List(ctx context.Context, userID bson.ObjectID) ([]*Bookmark, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error(ErrListBookmarks.Error(), "error", err, "user_id", userID.Hex())
		return nil, ErrListBookmarks
	}
	return items, nil
}

// Delete removes the user's bookmark for the given URL.
// ErrBookmarkNotFound when the user never saved that URL.
func (s *Service) Delete(ctx context.Context, userID bson.ObjectID, req DeleteBookmarkRequest) error {
	deleted, err := s.repo.DeleteByURL(ctx, userID, req.URL)
	if err != nil {
		s.log.Error(ErrDeleteBookmark.Error(), "error", err, "user_id", userID.Hex())
		return ErrDeleteBookmark
	}
	if deleted == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

// parsePublishedAt accepts the timestamp formats news providers actually emit.
// Anything unparseable is stored as absent rather than rejected, matching the
// rest of the optional article metadata.
func parsePublishedAt(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			ts = ts.UTC()
			return &ts
		}
	}
	return nil
}
