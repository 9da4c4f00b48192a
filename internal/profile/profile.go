// Package profile manages named credential profiles for the platform API.
// A profile names an authority host plus the credentials to reach it; one
// profile is marked as the default and is used when no --profile is given.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jules-cli/jules42/internal/jerrors"
)

// SupportedStoreNames contains supported profile store file names (in order
// of preference)
var SupportedStoreNames = []string{
	"profiles.yml",
	"profiles.yaml",
	"profiles.toml",
	"profiles.json",
}

// Profile is one named credential set
type Profile struct {
	Name     string `koanf:"name" json:"name"`
	URL      string `koanf:"url" json:"url"`
	Username string `koanf:"username" json:"username,omitempty"`
	Token    string `koanf:"token" json:"token,omitempty"`
}

type storeDoc struct {
	Default  string    `koanf:"default"`
	Profiles []Profile `koanf:"profiles"`
}

// Store is the on-disk collection of profiles
type Store struct {
	path        string
	defaultName string
	profiles    []Profile
}

// DefaultPath returns the profile store location under the user's config
// directory, honoring XDG_CONFIG_HOME. An existing store file wins over the
// preferred name.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	dir := filepath.Join(configHome, "jules42")

	for _, name := range SupportedStoreNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return filepath.Join(dir, SupportedStoreNames[0])
}

// parserFor picks a koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported profile store format: %s", path)
	}
}

// Load reads the profile store at path. A missing file yields an empty
// store; a malformed or schema-invalid file is a profile error.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, jerrors.NewProfileError("", "failed to read profile store", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, jerrors.NewProfileError("", "failed to validate profile store", err)
	}
	if !result.Valid {
		return nil, jerrors.NewProfileError("", "invalid profile store: "+result.Errors[0].Field+": "+result.Errors[0].Message, nil)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, jerrors.NewProfileError("", "failed to parse profile store", err)
	}

	var doc storeDoc
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, jerrors.NewProfileError("", "failed to decode profile store", err)
	}

	s.defaultName = doc.Default
	s.profiles = doc.Profiles
	return s, nil
}

// Path returns the file backing this store
func (s *Store) Path() string {
	return s.path
}

// Names returns profile names in store order
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for _, p := range s.profiles {
		names = append(names, p.Name)
	}
	return names
}

// Get returns the profile with the given name
func (s *Store) Get(name string) (*Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].Name == name {
			return &s.profiles[i], nil
		}
	}
	return nil, jerrors.NewProfileError(name, fmt.Sprintf("profile %q not found in %s", name, s.path), nil)
}

// Default returns the profile marked as default
func (s *Store) Default() (*Profile, error) {
	if len(s.profiles) == 0 {
		return nil, jerrors.NewProfileError("", fmt.Sprintf("no profiles configured; create %s", s.path), nil)
	}
	if s.defaultName == "" {
		return nil, jerrors.NewProfileError("", "no default profile set; run select-profile", nil)
	}
	return s.Get(s.defaultName)
}

// DefaultName returns the name of the default profile, or ""
func (s *Store) DefaultName() string {
	return s.defaultName
}

// SetDefault marks the named profile as default and persists the store
func (s *Store) SetDefault(name string) error {
	if _, err := s.Get(name); err != nil {
		return err
	}
	s.defaultName = name
	return s.persist()
}

// persist writes the store back in its own format
func (s *Store) persist() error {
	parser, err := parserFor(s.path)
	if err != nil {
		return err
	}

	profiles := make([]interface{}, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, map[string]interface{}{
			"name":     p.Name,
			"url":      p.URL,
			"username": p.Username,
			"token":    p.Token,
		})
	}

	data, err := parser.Marshal(map[string]interface{}{
		"default":  s.defaultName,
		"profiles": profiles,
	})
	if err != nil {
		return jerrors.NewProfileError("", "failed to encode profile store", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	// Profiles carry tokens; keep the store private to the user.
	return os.WriteFile(s.path, data, 0600)
}
