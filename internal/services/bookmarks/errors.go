package bookmarks

import "errors"

// ErrAlreadyBookmarked is returned when the user has already saved the URL.
var ErrAlreadyBookmarked = errors.New("article already bookmarked")

// ErrBookmarkNotFound is returned when a delete matches no bookmark.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// ErrCreateBookmark is returned when bookmark creation fails.
var ErrCreateBookmark = errors.New("failed to create bookmark")

// ErrListBookmarks is returned when bookmark listing fails.
var ErrListBookmarks = errors.New("failed to list bookmarks")

// ErrDeleteBookmark is returned when bookmark deletion fails.
var ErrDeleteBookmark = errors.New("failed to delete bookmark")

// ErrCreateBookmarksRepo is returned when bookmarks repository creation fails.
var ErrCreateBookmarksRepo = errors.New("failed to create bookmarks repository")
