package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateFile writes content to dir/name, creating parent directories, and
// returns the full path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// CreateDir creates parent/name and returns its path
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
	return path
}

// FileTree describes a directory: string values are file contents, FileTree
// values are subdirectories
type FileTree map[string]interface{}

// WriteTree creates tree under base
func WriteTree(t *testing.T, base string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		switch v := content.(type) {
		case string:
			CreateFile(t, base, name, v)
		case FileTree:
			WriteTree(t, CreateDir(t, base, name), v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// Env is an isolated set of XDG directories
type Env struct {
	ConfigHome string
	StateHome  string
}

// ConfigFile is where hexmark looks for its config inside the env
func (e Env) ConfigFile() string {
	return filepath.Join(e.ConfigHome, "hexmark", "config.toml")
}

// LogFile is where hexmark writes its log inside the env
func (e Env) LogFile() string {
	return filepath.Join(e.StateHome, "hexmark", "hexmark.log")
}

// WriteConfig writes a config file where the loader will find it
func (e Env) WriteConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, e.ConfigHome, filepath.Join("hexmark", "config.toml"), content)
}

// IsolateXDG points XDG_CONFIG_HOME and XDG_STATE_HOME at temp dirs and
// clears HEXMARK_ and color environment variables for the test's duration
func IsolateXDG(t *testing.T) Env {
	t.Helper()

	env := Env{
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "")

	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "HEXMARK_") {
			// Setenv registers the restore, Unsetenv hides the key from koanf
			t.Setenv(name, "")
			_ = os.Unsetenv(name)
		}
	}
	return env
}
