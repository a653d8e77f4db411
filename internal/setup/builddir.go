package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// prepareBuildDir wipes (under --clean), recreates and marks the build
// directory. The .gitignore marker is rewritten on every run so git never
// sees anything under build/.
func (s *Setup) prepareBuildDir() error {
	if s.flags.Clean && isDir(s.cfg.BuildDir) {
		colArrow.Print("-> ")
		cPrintf(colWarn, "Erasing build dir %s (per --clean)\n", s.cfg.BuildDir)
		if err := os.RemoveAll(s.cfg.BuildDir); err != nil {
			return fmt.Errorf("removing build dir: %w", err)
		}
	}

	if err := os.MkdirAll(s.cfg.BuildDir, 0o755); err != nil {
		return fmt.Errorf("creating build dir: %w", err)
	}

	marker := filepath.Join(s.cfg.BuildDir, ".gitignore")
	if err := os.WriteFile(marker, []byte("/*\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", marker, err)
	}
	return nil
}

// lockSourceTree takes a non-blocking exclusive lock on the source
// directory so two setup runs cannot race on the build dir and the venv.
// The returned function releases the lock; it is also released when the
// process dies.
func lockSourceTree(sourceDir string) (func(), error) {
	f, err := os.Open(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("opening source dir: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("another setup run is already active in %s", sourceDir)
	}
	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
	}, nil
}
