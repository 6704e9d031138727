package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDirForOS_Windows(t *testing.T) {
	t.Setenv("APPDATA", filepath.Join("C:", "Users", "test", "AppData", "Roaming"))

	dir := configDirForOS(OSWindows)
	expected := filepath.Join("C:", "Users", "test", "AppData", "Roaming", AppDirName)
	if dir != expected {
		t.Errorf("configDirForOS(windows) = %s, expected %s", dir, expected)
	}

	t.Setenv("APPDATA", "")
	if dir := configDirForOS(OSWindows); dir != AppDirName {
		t.Errorf("configDirForOS(windows) without APPDATA = %s, expected %s", dir, AppDirName)
	}
}

func TestConfigDirForOS_Darwin(t *testing.T) {
	t.Setenv("HOME", "/Users/test")

	dir := configDirForOS(OSDarwin)
	expected := filepath.Join("/Users/test", "Library", "Application Support", AppDirName)
	if dir != expected {
		t.Errorf("configDirForOS(darwin) = %s, expected %s", dir, expected)
	}

	t.Setenv("HOME", "")
	if dir := configDirForOS(OSDarwin); dir != AppDirName {
		t.Errorf("configDirForOS(darwin) without HOME = %s, expected %s", dir, AppDirName)
	}
}

func TestConfigDirForOS_Linux(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/home/test/.config-custom")
	t.Setenv("HOME", "/home/test")

	dir := configDirForOS(OSLinux)
	expected := filepath.Join("/home/test/.config-custom", AppDirName)
	if dir != expected {
		t.Errorf("configDirForOS(linux) with XDG_CONFIG_HOME = %s, expected %s", dir, expected)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	dir = configDirForOS(OSLinux)
	expected = filepath.Join("/home/test", ".config", AppDirName)
	if dir != expected {
		t.Errorf("configDirForOS(linux) with HOME = %s, expected %s", dir, expected)
	}

	t.Setenv("HOME", "")
	if dir := configDirForOS(OSLinux); dir != AppDirName {
		t.Errorf("configDirForOS(linux) without env = %s, expected %s", dir, AppDirName)
	}
}

func TestFilePaths_UseConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	tests := []struct {
		name     string
		path     string
		fileName string
	}{
		{"config", ConfigFilePath(), ConfigFileName},
		{"recent files", RecentFilesPath(), RecentFilesFileName},
		{"search history", SearchHistoryPath(), SearchHistoryFileName},
	}

	for _, tt := range tests {
		if filepath.Base(tt.path) != tt.fileName {
			t.Errorf("%s path = %s, expected file name %s", tt.name, tt.path, tt.fileName)
		}
		if filepath.Dir(tt.path) != ConfigDir() {
			t.Errorf("%s path = %s, expected parent %s", tt.name, tt.path, ConfigDir())
		}
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "config")

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}
