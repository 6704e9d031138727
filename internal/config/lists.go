package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ultracanvas/ultratexter/internal/platform"
)

// Search history section headers
const (
	findSectionHeader    = "[find]"
	replaceSectionHeader = "[replace]"
)

// MaxRecentFiles caps the recent-files list on save
const MaxRecentFiles = 10

// RecentFilesPath returns the path of the recent-files list
func (s *Store) RecentFilesPath() string {
	return filepath.Join(s.dir, platform.RecentFilesFileName)
}

// SearchHistoryPath returns the path of the search/replace history file
func (s *Store) SearchHistoryPath() string {
	return filepath.Join(s.dir, platform.SearchHistoryFileName)
}

// LoadRecentFiles reads the recent-files list, one path per line,
// most-recent-first. Empty lines are skipped; a missing file yields an empty
// list.
func (s *Store) LoadRecentFiles() ([]string, error) {
	return readLines(s.RecentFilesPath())
}

// SaveRecentFiles writes the recent-files list, one path per line, truncated
// to MaxRecentFiles entries
func (s *Store) SaveRecentFiles(files []string) error {
	if len(files) > MaxRecentFiles {
		files = files[:MaxRecentFiles]
	}
	return s.writeLines(s.RecentFilesPath(), files)
}

// PushRecentFile puts a path at the front of the list, removing any earlier
// occurrence
func PushRecentFile(files []string, path string) []string {
	result := make([]string, 0, len(files)+1)
	result = append(result, path)
	for _, f := range files {
		if f != path {
			result = append(result, f)
		}
	}
	if len(result) > MaxRecentFiles {
		result = result[:MaxRecentFiles]
	}
	return result
}

// LoadSearchHistory reads the find and replace history lists from the two
// sections of the history file. Lines before the first section header and
// unknown headers are skipped; a missing file yields two empty lists.
func (s *Store) LoadSearchHistory() (find, replace []string, err error) {
	f, err := os.Open(s.SearchHistoryPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to open search history: %w", err)
	}
	defer f.Close()

	var current *[]string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		switch line {
		case findSectionHeader:
			current = &find
			continue
		case replaceSectionHeader:
			current = &replace
			continue
		}
		if current == nil || line == "" {
			continue
		}
		*current = append(*current, line)
	}
	return find, replace, nil
}

// SaveSearchHistory writes the [find] section followed by the [replace]
// section, one entry per line
func (s *Store) SaveSearchHistory(find, replace []string) error {
	lines := make([]string, 0, len(find)+len(replace)+2)
	lines = append(lines, findSectionHeader)
	lines = append(lines, find...)
	lines = append(lines, replaceSectionHeader)
	lines = append(lines, replace...)
	return s.writeLines(s.SearchHistoryPath(), lines)
}

// readLines reads a newline-separated list file, skipping empty lines. A
// missing file is not an error.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// writeLines writes the lines with a trailing newline each, creating the
// config directory on demand
func (s *Store) writeLines(path string, lines []string) error {
	if err := platform.CreateDirectoryIfNotExists(s.dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write list file: %w", err)
	}
	return nil
}
