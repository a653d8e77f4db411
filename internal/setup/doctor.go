package setup

import (
	"fmt"
	"os/exec"
	"strings"
)

// requiredTools are the external commands the pipeline shells out to.
var requiredTools = []string{
	"sudo", "dpkg-query", "apt", "pkg-config", "python3", "direnv",
}

// Doctor reports where each required external tool lives and fails when
// any of them is missing from PATH.
func Doctor() error {
	return checkTools(requiredTools)
}

func checkTools(tools []string) error {
	var missing []string
	for _, tool := range tools {
		colArrow.Print("-> ")
		path, err := exec.LookPath(tool)
		if err != nil {
			cPrintf(colError, "%-12s missing\n", tool)
			missing = append(missing, tool)
			continue
		}
		cPrintf(colInfo, "%-12s %s\n", tool, path)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tools: %s", strings.Join(missing, ", "))
	}
	colArrow.Print("-> ")
	colSuccess.Println("All required tools found")
	return nil
}
