package setup

import (
	"fmt"
	"strings"
)

// installedPackages returns the names of every package dpkg currently
// knows as installed.
func (s *Setup) installedPackages() (map[string]bool, error) {
	out, err := s.user.Output(s.command("dpkg-query", "--show", "--showformat=${Package}\n"))
	if err != nil {
		return nil, fmt.Errorf("querying dpkg database: %w", err)
	}
	installed := make(map[string]bool)
	for _, name := range strings.Fields(string(out)) {
		installed[name] = true
	}
	return installed, nil
}

// systemPackages makes sure every package in AptPackages is installed.
// When anything is missing, apt receives the full list in one transaction,
// not just the missing subset.
func (s *Setup) systemPackages() error {
	installed, err := s.installedPackages()
	if err != nil {
		return err
	}

	var missing []string
	for _, pkg := range s.cfg.AptPackages {
		if !installed[pkg] {
			missing = append(missing, pkg)
		}
	}
	if len(missing) == 0 {
		colArrow.Print("-> ")
		colSuccess.Println("All system packages already installed")
		return nil
	}
	debugf("missing system packages: %v\n", missing)

	if err := s.root.Run(s.command("apt", "update")); err != nil {
		return fmt.Errorf("apt update: %w", err)
	}
	args := append([]string{"install"}, s.cfg.AptPackages...)
	if err := s.root.Run(s.command("apt", args...)); err != nil {
		return fmt.Errorf("apt install: %w", err)
	}
	return nil
}
