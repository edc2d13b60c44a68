package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// ErrNotLoggedIn is returned by Session.RequireUser when no user is set.
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the client-side state kept between CLI invocations: the
// logged-in user and the IDs of their favorite books. It is loaded at start,
// replaced at login and cleared at logout; callers decide when to Save.
type Session struct {
	User      *User   `json:"usuario,omitempty"`
	Favorites []int64 `json:"favoritos,omitempty"`
}

// LoadSession reads a session file. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: read %s: %w", path, err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("session: decode %s: %w", path, err)
	}
	return &s, nil
}

// Save writes the session atomically with owner-only permissions.
func (s *Session) Save(path string) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("session: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".session-*")
	if err != nil {
		return fmt.Errorf("session: temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("session: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: close: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return fmt.Errorf("session: chmod: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("session: rename: %w", err)
	}
	return nil
}

// RequireUser returns the logged-in user or ErrNotLoggedIn.
func (s *Session) RequireUser() (*User, error) {
	if s.User == nil {
		return nil, ErrNotLoggedIn
	}
	return s.User, nil
}

// Start replaces the session with a fresh login.
func (s *Session) Start(u User, favorites []FavoriteBook) {
	s.User = &u
	s.Favorites = s.Favorites[:0]
	for _, f := range favorites {
		s.MarkFavorite(f.ID)
	}
}

// Clear forgets the user and their favorites.
func (s *Session) Clear() {
	s.User = nil
	s.Favorites = nil
}

// IsFavorite reports whether bookID is in the favorite set.
func (s *Session) IsFavorite(bookID int64) bool {
	return slices.Contains(s.Favorites, bookID)
}

// MarkFavorite adds bookID to the favorite set; duplicates are ignored.
func (s *Session) MarkFavorite(bookID int64) {
	if !s.IsFavorite(bookID) {
		s.Favorites = append(s.Favorites, bookID)
	}
}

// UnmarkFavorite removes bookID from the favorite set.
func (s *Session) UnmarkFavorite(bookID int64) {
	s.Favorites = slices.DeleteFunc(s.Favorites, func(id int64) bool { return id == bookID })
}
