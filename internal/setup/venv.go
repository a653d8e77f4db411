package setup

import (
	"fmt"
	"path/filepath"
)

// pythonPackages creates the project venv on first run and installs the
// pip package set. The venv directory's existence is the only memo of a
// previous run: once present, creation and the direnv registration are
// skipped forever. The pip install is issued every run; pip itself treats
// satisfied requirements as no-ops.
func (s *Setup) pythonPackages() error {
	if !isDir(s.cfg.VenvDir) {
		colArrow.Print("-> ")
		colSuccess.Printf("Creating Python venv at %s\n", s.cfg.VenvDir)
		if err := s.user.Run(s.command("python3", "-m", "venv", "--symlinks", s.cfg.VenvDir)); err != nil {
			return fmt.Errorf("creating venv: %w", err)
		}
		// One-time: let direnv auto-load the project's .envrc.
		if err := s.user.Run(s.command("direnv", "allow", s.cfg.SourceDir)); err != nil {
			return fmt.Errorf("direnv allow: %w", err)
		}
	}

	pip := filepath.Join(s.cfg.VenvDir, "bin", "pip")
	args := append([]string{"install"}, s.cfg.PipPackages...)
	if err := s.user.Run(s.command(pip, args...)); err != nil {
		return fmt.Errorf("pip install: %w", err)
	}
	return nil
}
