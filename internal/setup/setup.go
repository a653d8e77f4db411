package setup

import (
	"fmt"
	"os"
	"os/exec"
)

// Flags are the three independent switches of the setup run. They are
// parsed once and never change afterwards.
type Flags struct {
	Clean   bool // wipe the build dir before recreating it
	NoConan bool // print conan commands instead of running them
	Debug   bool // Debug build type for C++ dependencies
}

// Setup drives the bootstrap pipeline for a single source tree.
type Setup struct {
	cfg   *Config
	flags Flags

	user Runner // unprivileged commands
	root Runner // commands that need sudo

	// pkgConfigPath is the unified PKG_CONFIG_PATH computed by the
	// pkg-config step and injected into every later child command.
	pkgConfigPath string
}

// New wires a Setup with the given configuration and runners.
func New(cfg *Config, flags Flags, user, root Runner) *Setup {
	return &Setup{cfg: cfg, flags: flags, user: user, root: root}
}

// Steps returns the pipeline in its fixed execution order.
func (s *Setup) Steps() []Step {
	return []Step{
		{"System packages (sudo apt install ...)", s.systemPackages},
		{"Unify pkg-config search path", s.unifyPkgConfig},
		{fmt.Sprintf("Build dir (%s)", s.cfg.BuildDir), s.prepareBuildDir},
		{"Python packages (pip install ...)", s.pythonPackages},
		{"Conan (C++ package manager) setup", s.conanProfile},
		{"Install ffmpeg Conan recipe", s.conanExportRecipe},
		{"Build C++ dependencies", s.conanInstall},
		{"Clean C++ package cache", s.conanPruneCache},
	}
}

// command builds an exec.Cmd rooted at the source dir. Once the pkg-config
// step has run, the unified PKG_CONFIG_PATH is part of the environment of
// every child command.
func (s *Setup) command(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Dir = s.cfg.SourceDir
	if s.pkgConfigPath != "" {
		cmd.Env = append(os.Environ(), "PKG_CONFIG_PATH="+s.pkgConfigPath)
	}
	return cmd
}
