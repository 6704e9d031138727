package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// AppDirName is the directory created under the per-OS config root
const AppDirName = "UltraTexter"

// Persisted file names inside the config directory
const (
	ConfigFileName        = "config.ini"
	RecentFilesFileName   = "recent_files.txt"
	SearchHistoryFileName = "search_history.txt"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// ConfigDir resolves the per-user configuration directory for the current OS:
// %APPDATA% on Windows, ~/Library/Application Support on macOS, and
// $XDG_CONFIG_HOME (falling back to ~/.config) elsewhere. When none of the
// relevant environment variables are set, the bare application directory name
// is returned so the store still works relative to the working directory.
func ConfigDir() string {
	return configDirForOS(runtime.GOOS)
}

// configDirForOS is ConfigDir with the OS pinned, so every branch is testable
// on any platform
func configDirForOS(goos string) string {
	switch goos {
	case OSWindows:
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return AppDirName
	case OSDarwin:
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, "Library", "Application Support", AppDirName)
		}
		return AppDirName
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppDirName)
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", AppDirName)
		}
		return AppDirName
	}
}

// ConfigFilePath returns the path of the key=value config file
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// RecentFilesPath returns the path of the recent-files list
func RecentFilesPath() string {
	return filepath.Join(ConfigDir(), RecentFilesFileName)
}

// SearchHistoryPath returns the path of the search/replace history file
func SearchHistoryPath() string {
	return filepath.Join(ConfigDir(), SearchHistoryFileName)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
