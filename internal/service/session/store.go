package session

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/twinkal0201/cardio-70-AI/internal/model"
)

const (
	predictionPrefix = "prediction:"
	themePrefix      = "theme:"
)

// Store holds per-session state for the lifetime of a page session: the
// single CurrentPrediction slot and the theme preference. Entries expire
// with the store TTL and are never merged; a new write supersedes the old
// value wholesale.
type Store struct {
	c   *cache.Cache
	ttl time.Duration
}

func NewStore(ttl, cleanup time.Duration) *Store {
	return &Store{
		c:   cache.New(ttl, cleanup),
		ttl: ttl,
	}
}

// SetPrediction overwrites the session's prediction slot. Last write wins;
// concurrent predictions race exactly as they do in the dashboard.
func (s *Store) SetPrediction(sessionID string, pair *model.CurrentPrediction) {
	s.c.Set(predictionPrefix+sessionID, pair, cache.DefaultExpiration)
}

// Prediction returns the session's cached pair, if any.
func (s *Store) Prediction(sessionID string) (*model.CurrentPrediction, bool) {
	v, ok := s.c.Get(predictionPrefix + sessionID)
	if !ok {
		return nil, false
	}
	pair, ok := v.(*model.CurrentPrediction)
	return pair, ok
}

// SetTheme persists the session's theme preference.
func (s *Store) SetTheme(sessionID string, theme model.Theme) {
	s.c.Set(themePrefix+sessionID, theme, cache.DefaultExpiration)
}

// Theme returns the session's stored preference, defaulting to light.
func (s *Store) Theme(sessionID string) model.Theme {
	v, ok := s.c.Get(themePrefix + sessionID)
	if !ok {
		return model.ThemeLight
	}
	theme, ok := v.(model.Theme)
	if !ok || !theme.Valid() {
		return model.ThemeLight
	}
	return theme
}
