package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the source directory; the file is optional.
const ConfigFileName = "pivid-setup.toml"

// Config holds everything the setup pipeline needs to know about one
// source tree. Defaults match the Pivid project layout; individual fields
// can be overridden by pivid-setup.toml or PIVID_* environment variables.
type Config struct {
	SourceDir string `toml:"-"`
	BuildDir  string `toml:"build_dir"`
	VenvDir   string `toml:"venv_dir"`

	// TODO: Make libudev and libv4l into Conan dependencies
	AptPackages []string `toml:"apt_packages"`
	PipPackages []string `toml:"pip_packages"`

	RecipeDir     string `toml:"recipe_dir"`
	RecipeVersion string `toml:"recipe_version"`
	RecipeUser    string `toml:"recipe_user"`

	// ForceRelease lists dependencies that must always build as Release.
	// The ffmpeg ARM toolchain cannot produce a Debug build.
	ForceRelease []string `toml:"force_release"`
}

func defaultConfig(sourceDir string) *Config {
	return &Config{
		SourceDir: sourceDir,
		BuildDir:  "build",
		AptPackages: []string{
			"build-essential", "cmake", "direnv", "libudev-dev", "libv4l-dev",
			"python3", "python3-pip",
		},
		PipPackages: []string{
			// docutils is required by rst2man.py in the libdrm build??
			"conan~=2.0", "docutils", "meson", "ninja", "requests",
		},
		RecipeDir:     "ffmpeg_rpi_recipe",
		RecipeVersion: "5.1.4+rpi",
		RecipeUser:    "pivid",
		ForceRelease:  []string{"ffmpeg"},
	}
}

// loadConfig builds the effective configuration for sourceDir: defaults,
// then the optional TOML file, then PIVID_* environment overrides.
// Relative directories are anchored at the source dir.
func loadConfig(sourceDir string) (*Config, error) {
	cfg := defaultConfig(sourceDir)

	path := filepath.Join(sourceDir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	mergeEnvOverrides(cfg)

	cfg.BuildDir = absFrom(sourceDir, cfg.BuildDir)
	if cfg.VenvDir == "" {
		cfg.VenvDir = filepath.Join(cfg.BuildDir, "python_venv")
	}
	cfg.VenvDir = absFrom(sourceDir, cfg.VenvDir)
	cfg.RecipeDir = absFrom(sourceDir, cfg.RecipeDir)

	return cfg, nil
}

// mergeEnvOverrides applies PIVID_* environment variables on top of cfg.
// List-valued overrides are space-separated.
func mergeEnvOverrides(cfg *Config) {
	if v := os.Getenv("PIVID_BUILD_DIR"); v != "" {
		cfg.BuildDir = v
	}
	if v := os.Getenv("PIVID_VENV_DIR"); v != "" {
		cfg.VenvDir = v
	}
	if v := os.Getenv("PIVID_APT_PACKAGES"); v != "" {
		cfg.AptPackages = strings.Fields(v)
	}
	if v := os.Getenv("PIVID_PIP_PACKAGES"); v != "" {
		cfg.PipPackages = strings.Fields(v)
	}
	if v := os.Getenv("PIVID_RECIPE_DIR"); v != "" {
		cfg.RecipeDir = v
	}
	if v := os.Getenv("PIVID_RECIPE_VERSION"); v != "" {
		cfg.RecipeVersion = v
	}
	if v := os.Getenv("PIVID_RECIPE_USER"); v != "" {
		cfg.RecipeUser = v
	}
	if os.Getenv("PIVID_DEBUG") == "1" {
		Debug = true
	}
}

// absFrom resolves path relative to base unless it is already absolute.
func absFrom(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
