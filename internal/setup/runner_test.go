package setup

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner records every command instead of executing it. Canned stdout
// is looked up by the command's full path first, then by its base name.
type fakeRunner struct {
	calls   [][]string
	outputs map[string]string
	failOn  string // base name of a command that should fail
}

func (f *fakeRunner) record(cmd *exec.Cmd) error {
	f.calls = append(f.calls, cmd.Args)
	if f.failOn != "" && filepath.Base(cmd.Args[0]) == f.failOn {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) Run(cmd *exec.Cmd) error { return f.record(cmd) }

func (f *fakeRunner) Output(cmd *exec.Cmd) ([]byte, error) {
	if err := f.record(cmd); err != nil {
		return nil, err
	}
	if out, ok := f.outputs[cmd.Args[0]]; ok {
		return []byte(out), nil
	}
	return []byte(f.outputs[filepath.Base(cmd.Args[0])]), nil
}

// line renders call i the way it was recorded.
func (f *fakeRunner) line(i int) string {
	return strings.Join(f.calls[i], " ")
}

// newTestSetup wires a Setup against fake runners and a throwaway source
// tree.
func newTestSetup(t *testing.T, flags Flags) (*Setup, *fakeRunner, *fakeRunner) {
	t.Helper()
	cfg, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	user := &fakeRunner{outputs: make(map[string]string)}
	root := &fakeRunner{outputs: make(map[string]string)}
	return New(cfg, flags, user, root), user, root
}
