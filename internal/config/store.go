package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ultracanvas/ultratexter/internal/platform"
)

// Header written at the top of the config file
const configFileHeader = "# UltraTexter Configuration\n# Auto-generated - manual edits are preserved\n\n"

// Store manages the application's key=value configuration file plus the two
// auxiliary list files in the same directory. It owns its in-memory map;
// changes are only persisted by an explicit Save.
type Store struct {
	dir    string
	values map[string]string
}

// NewStore creates a store rooted at the given config directory. Pass
// platform.ConfigDir() for the standard per-OS location.
func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		values: make(map[string]string),
	}
}

// Dir returns the config directory the store reads and writes
func (s *Store) Dir() string {
	return s.dir
}

// ConfigPath returns the path of the key=value file
func (s *Store) ConfigPath() string {
	return filepath.Join(s.dir, platform.ConfigFileName)
}

// Load reads the config file into the in-memory map, replacing any previous
// contents. A missing file is not an error and yields an empty map.
func (s *Store) Load() error {
	s.values = make(map[string]string)

	f, err := os.Open(s.ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	s.parse(f)
	return nil
}

// parse reads key=value lines. Blank lines and lines starting with '#' or ';'
// are comments; lines without '=' are silently skipped; keys and values are
// trimmed of ASCII space and tab.
func (s *Store) parse(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';' {
			continue
		}

		idx := strings.Index(line, "=")
		if idx < 0 {
			continue
		}

		key := strings.Trim(line[:idx], " \t")
		if key == "" {
			continue
		}
		value := strings.Trim(line[idx+1:], " \t")
		s.values[key] = value
	}
}

// Save ensures the config directory exists, then writes the header and all
// entries as "key = value" lines. Keys are written in sorted order so the
// output is stable.
func (s *Store) Save() error {
	if err := platform.CreateDirectoryIfNotExists(s.dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var b strings.Builder
	b.WriteString(configFileHeader)

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(&b, "%s = %s\n", key, s.values[key])
	}

	if err := os.WriteFile(s.ConfigPath(), []byte(b.String()), platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetString returns the value for key, or def when the key is absent
func (s *Store) GetString(key, def string) string {
	if value, ok := s.values[key]; ok {
		return value
	}
	return def
}

// SetString stores a string value
func (s *Store) SetString(key, value string) {
	s.values[key] = value
}

// GetInt returns the value for key parsed as an integer, or def when the key
// is absent or the value does not parse
func (s *Store) GetInt(key string, def int) int {
	value, ok := s.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return n
}

// SetInt stores an integer value
func (s *Store) SetInt(key string, value int) {
	s.values[key] = strconv.Itoa(value)
}

// GetBool returns true when the stored value is "true", "1" or "yes"
// (case-insensitive), false for any other stored string, and def when the key
// is absent
func (s *Store) GetBool(key string, def bool) bool {
	value, ok := s.values[key]
	if !ok {
		return def
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// SetBool stores a boolean value as "true" or "false"
func (s *Store) SetBool(key string, value bool) {
	s.values[key] = strconv.FormatBool(value)
}

// Has reports whether the key is present
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Delete removes a key from the in-memory map
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.values)
}

// Keys returns all keys in sorted order
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
