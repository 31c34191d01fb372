// Package project locates and parses tern.toml manifests.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "tern.toml"

// Manifest is a located, parsed project manifest.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the manifest layout.
type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
}

// PackageConfig is the required [package] section.
type PackageConfig struct {
	Name string `toml:"name"`
}

// CheckConfig is the optional [check] section with per-project defaults
// for the check command.
type CheckConfig struct {
	MaxDiagnostics int  `toml:"max-diagnostics"`
	Jobs           int  `toml:"jobs"`
	Cache          bool `toml:"cache"`
}

// Find walks up from startDir to locate tern.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// FindRoot returns the directory containing tern.toml, if any.
func FindRoot(startDir string) (root string, ok bool, err error) {
	manifestPath, ok, err := Find(startDir)
	if err != nil || !ok {
		return "", ok, err
	}
	return filepath.Dir(manifestPath), true, nil
}

// Load locates and parses the nearest manifest above startDir.
func Load(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	return cfg, nil
}

// DefaultManifest renders the manifest written by `tern init`.
func DefaultManifest(name string) string {
	return fmt.Sprintf("[package]\nname = %q\n\n[check]\ncache = true\n", name)
}
