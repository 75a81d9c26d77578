package onboarding

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// Flags are the persisted onboarding settings.
type Flags struct {
	Completed   bool
	Version     string            // Dotted-integer version of the flow that was completed
	Responses   map[string]string // Answers collected during onboarding
	CompletedAt time.Time         // Zero until completed
}

func (f Flags) clone() Flags {
	f.Responses = maps.Clone(f.Responses)
	return f
}

// Store persists Flags. The last Save wins.
type Store interface {
	Load() (Flags, error)
	Save(Flags) error
}

// MemoryStore keeps flags in memory. It suits tests and scopes that must not
// touch disk.
type MemoryStore struct {
	mu    sync.Mutex
	flags Flags
}

// NewMemoryStore creates a store holding initial.
func NewMemoryStore(initial Flags) *MemoryStore {
	return &MemoryStore{flags: initial.clone()}
}

func (s *MemoryStore) Load() (Flags, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags.clone(), nil
}

func (s *MemoryStore) Save(f Flags) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags = f.clone()
	return nil
}

// fileFlags is the on-disk TOML layout.
type fileFlags struct {
	HasCompletedOnboarding bool              `toml:"has_completed_onboarding"`
	OnboardingVersion      string            `toml:"onboarding_version"`
	CompletedAt            *time.Time        `toml:"completed_at"`
	UserResponses          map[string]string `toml:"user_responses"`
}

// FileStore keeps flags in a TOML file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the TOML file at path. The file and
// its directory are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the flags. A missing file yields zero Flags.
func (s *FileStore) Load() (Flags, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Flags{}, nil
	}
	if err != nil {
		return Flags{}, fmt.Errorf("read onboarding file: %w", err)
	}

	var ff fileFlags
	if err := toml.Unmarshal(data, &ff); err != nil {
		return Flags{}, fmt.Errorf("parse onboarding file: %w", err)
	}

	f := Flags{
		Completed: ff.HasCompletedOnboarding,
		Version:   ff.OnboardingVersion,
		Responses: ff.UserResponses,
	}
	if ff.CompletedAt != nil {
		f.CompletedAt = *ff.CompletedAt
	}
	return f, nil
}

// Save writes the flags, replacing the file.
func (s *FileStore) Save(f Flags) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ff := fileFlags{
		HasCompletedOnboarding: f.Completed,
		OnboardingVersion:      f.Version,
		UserResponses:          f.Responses,
	}
	if !f.CompletedAt.IsZero() {
		t := f.CompletedAt.UTC()
		ff.CompletedAt = &t
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(ff); err != nil {
		return fmt.Errorf("encode onboarding file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create onboarding directory: %w", err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write onboarding file: %w", err)
	}
	return nil
}
