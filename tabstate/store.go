// Package tabstate holds the state that surrounds a side panel session: the
// text extracted from each browser tab and the user's preferences.
//
// Nothing here is global. The caller creates a Store, sets content when a tab
// reports an extraction, and removes it when the tab closes:
//
//	st := tabstate.New()
//	st.SetContent(tabID, text)   // on extraction / update
//	text, ok := st.Content(tabID) // on tab activation
//	st.Remove(tabID)              // on tab closure
package tabstate

import (
	"slices"
	"sync"

	"github.com/randalmurphal/pagekit/config"
	"github.com/randalmurphal/pagekit/request"
)

// Preference keys.
const (
	KeyLanguage   = "language"
	KeyBackendURL = "backend_url"
)

// TabID identifies a browser tab.
type TabID int

// Store is an in-memory key-value store safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	content     map[TabID]string
	preferences map[string]string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		content:     make(map[TabID]string),
		preferences: make(map[string]string),
	}
}

// Seed copies the preferences carried by cfg into the store.
func (s *Store) Seed(cfg config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[KeyLanguage] = cfg.Language
	s.preferences[KeyBackendURL] = cfg.BackendURL
}

// SetContent records the latest extracted text for a tab.
func (s *Store) SetContent(tab TabID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content[tab] = text
}

// Content returns the stored text for a tab. The boolean is false when the
// tab has no content yet, signalling the caller to request an extraction.
func (s *Store) Content(tab TabID) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.content[tab]
	if text == "" {
		return "", false
	}
	return text, ok
}

// Remove forgets a tab's content. Removing an unknown tab is a no-op.
func (s *Store) Remove(tab TabID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.content, tab)
}

// Tabs returns the IDs of tabs with stored content, in ascending order.
func (s *Store) Tabs() []TabID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]TabID, 0, len(s.content))
	for id := range s.content {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// SetPreference stores a preference value.
func (s *Store) SetPreference(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[key] = value
}

// Preference returns a stored preference value.
func (s *Store) Preference(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.preferences[key]
	return v, ok
}

// Language returns the stored answer language, or the default when none is
// stored or the stored value is not supported.
func (s *Store) Language() request.Language {
	v, _ := s.Preference(KeyLanguage)
	lang, err := request.ParseLanguage(v)
	if err != nil {
		return request.DefaultLanguage
	}
	return lang
}

// SetLanguage stores the answer language after validating it.
func (s *Store) SetLanguage(lang string) error {
	l, err := request.ParseLanguage(lang)
	if err != nil {
		return err
	}
	s.SetPreference(KeyLanguage, string(l))
	return nil
}

// BackendURL returns the stored backend URL, or config.DefaultBackendURL.
func (s *Store) BackendURL() string {
	if v, ok := s.Preference(KeyBackendURL); ok && v != "" {
		return v
	}
	return config.DefaultBackendURL
}
