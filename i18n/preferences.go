package i18n

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Preferences is the operator's persisted UI state. It is read once at
// startup and written on every change.
type Preferences struct {
	Language Lang `json:"language"`
	mu       sync.RWMutex
	file     string
}

func NewPreferences(filename string) *Preferences {
	if filename == "" {
		filename = "preferences.json"
	}
	return &Preferences{
		file: filename,
		// Defaults
		Language: Match(os.Getenv("LANG")),
	}
}

// Load reads the preferences file, creating it with defaults when missing.
func (p *Preferences) Load() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.file)
	if os.IsNotExist(err) {
		return p.saveInternal()
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, p); err != nil {
		return err
	}
	p.Language = Match(string(p.Language))
	return nil
}

func (p *Preferences) Lang() Lang {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Language
}

// SetLang changes the language and persists it immediately.
func (p *Preferences) SetLang(l Lang) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Language = l
	return p.saveInternal()
}

// ToggleLang switches between English and Spanish and persists the result.
func (p *Preferences) ToggleLang() (Lang, error) {
	next := p.Lang().Toggle()
	return next, p.SetLang(next)
}

func (p *Preferences) saveInternal() error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(p.file); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(p.file, data, 0644)
}
