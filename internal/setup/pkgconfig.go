package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// unifyPkgConfig merges the configured search path of every pkg-config
// binary found on PATH into one deduplicated PKG_CONFIG_PATH value.
// Independently installed toolchains (brew, cross toolchains, the system
// one) each ship a pkg-config with its own pc_path; merging them keeps
// .pc files visible no matter which toolchain's tool ends up invoked.
func (s *Setup) unifyPkgConfig() error {
	merged, err := s.mergePkgConfigPaths(os.Getenv("PATH"))
	if err != nil {
		return err
	}
	s.pkgConfigPath = merged
	colArrow.Print("-> ")
	colSuccess.Printf("PKG_CONFIG_PATH=%s\n", merged)
	return nil
}

// mergePkgConfigPaths scans each directory of pathEnv for a pkg-config
// binary, queries its pc_path and collects the entries. Entries keep the
// order of first sighting; on a duplicate entry the hosting directory is
// overwritten but the position is kept.
func (s *Setup) mergePkgConfigPaths(pathEnv string) (string, error) {
	var order []string
	hostDir := make(map[string]string) // pc_path entry -> dir whose pkg-config reported it

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		bin := filepath.Join(dir, "pkg-config")
		info, err := os.Stat(bin)
		if err != nil || info.IsDir() {
			continue
		}

		out, err := s.user.Output(s.command(bin, "--variable", "pc_path", "pkg-config"))
		if err != nil {
			return "", fmt.Errorf("querying %s: %w", bin, err)
		}
		for _, entry := range strings.Split(strings.TrimSpace(string(out)), ":") {
			if entry == "" {
				continue
			}
			if _, seen := hostDir[entry]; !seen {
				order = append(order, entry)
			}
			hostDir[entry] = dir
		}
		debugf("pkg-config at %s contributed %s\n", bin, strings.TrimSpace(string(out)))
	}

	return strings.Join(order, ":"), nil
}
