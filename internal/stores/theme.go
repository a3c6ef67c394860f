package stores

import (
	"sync"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/repos"
)

const themeStorageKey = "theme-storage"

// ThemeStore holds the active category plus an optional preview
// override. It only drives presentational styling.
type ThemeStore struct {
	mu       sync.Mutex
	category string
	preview  string // "" means no preview
	state    *repos.StateDB
}

type themeSnapshot struct {
	Category string `json:"category"`
	Preview  string `json:"previewCategory,omitempty"`
}

func NewThemeStore(state *repos.StateDB) *ThemeStore {
	s := &ThemeStore{category: domain.DefaultThemeCategory, state: state}
	var snap themeSnapshot
	if found, err := state.Load(themeStorageKey, &snap); err != nil {
		applog.Error(nil, "theme.hydrate.fail", err, nil)
	} else if found && snap.Category != "" {
		s.category = snap.Category
		s.preview = snap.Preview
	}
	return s
}

func (s *ThemeStore) persist() {
	if err := s.state.Save(themeStorageKey, themeSnapshot{Category: s.category, Preview: s.preview}); err != nil {
		applog.Error(nil, "theme.persist.fail", err, nil)
	}
}

func (s *ThemeStore) Category() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

func (s *ThemeStore) SetCategory(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = c
	s.persist()
}

func (s *ThemeStore) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview
}

func (s *ThemeStore) SetPreview(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = c
	s.persist()
}

func (s *ThemeStore) ClearPreview() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preview = ""
	s.persist()
}

// Active resolves the preview override over the selected category.
func (s *ThemeStore) Active() domain.ThemeColors {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.preview != "" {
		return domain.ThemeFor(s.preview)
	}
	return domain.ThemeFor(s.category)
}
