// Package assets serves optional profile extras from static JSON documents:
// profile extensions (handles GitHub does not expose, like a linkedin
// username) and per-user achievements. Both are optional by contract:
// a missing file, malformed document, or absent user key degrades to empty
// and never produces an error.
package assets

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gitfolio/internal/platform/logger"
)

const (
	extensionsFile   = "user-profile-extension.json"
	achievementsFile = "achievements.json"
)

// Achievement is one earned profile badge
type Achievement struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count,omitempty"`
}

// Extension holds the non-GitHub profile fields we layer onto a user
type Extension struct {
	LinkedIn string `json:"linkedin_username,omitempty"`
}

// Store reads profile extras from a directory of JSON documents
type Store struct {
	dir string
	log logger.Logger
}

// NewStore creates a Store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir, log: *logger.Named("assets")}
}

// Extension returns the extension record for username, zero when absent
func (s *Store) Extension(username string) Extension {
	var byUser map[string]Extension
	if !s.read(extensionsFile, &byUser) {
		return Extension{}
	}
	return byUser[username]
}

// Achievements returns the user's achievements, empty when absent
func (s *Store) Achievements(username string) []Achievement {
	var byUser map[string][]Achievement
	if !s.read(achievementsFile, &byUser) {
		return nil
	}
	return byUser[username]
}

// read loads and decodes one document, reporting false on any failure
func (s *Store) read(name string, out any) bool {
	if s.dir == "" {
		return false
	}
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("file", name).Msg("assets read failed")
		}
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		s.log.Warn().Err(err).Str("file", name).Msg("assets decode failed")
		return false
	}
	return true
}
