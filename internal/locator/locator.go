package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// AppDir is the application subdirectory under the user config dir
const AppDir = "officedays"

// NotFoundError is returned when the year's config file does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Configuration File Not Found: %s", e.Path)
}

// Locator resolves per-year config file paths
type Locator struct {
	baseDir string
}

// New creates a locator rooted at baseDir (the platform config dir)
func New(baseDir string) *Locator {
	return &Locator{baseDir: baseDir}
}

// FromUserConfigDir creates a locator rooted at the platform's per-user
// config dir (~/.config on Linux, ~/Library/Application Support on macOS)
func FromUserConfigDir() (*Locator, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("configuration directory not found: %w", err)
	}
	return New(dir), nil
}

// Path returns the config file path for the given year
func (l *Locator) Path(year int) string {
	return filepath.Join(l.baseDir, AppDir, strconv.Itoa(year)+".toml")
}

// Resolve returns the config path for the year, or a *NotFoundError if the
// file does not exist
func (l *Locator) Resolve(year int) (string, error) {
	path := l.Path(year)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &NotFoundError{Path: path}
		}
		return "", fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path is a directory: %s", path)
	}

	return path, nil
}
