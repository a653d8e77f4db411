package setup

import (
	"errors"
	"strings"
	"testing"
)

func TestRunPipelineExecutesInOrder(t *testing.T) {
	var order []string
	steps := []Step{
		{"one", func() error { order = append(order, "one"); return nil }},
		{"two", func() error { order = append(order, "two"); return nil }},
		{"three", func() error { order = append(order, "three"); return nil }},
	}

	if err := runPipeline(steps); err != nil {
		t.Fatalf("runPipeline: %v", err)
	}
	if got := strings.Join(order, ","); got != "one,two,three" {
		t.Errorf("execution order = %s", got)
	}
}

func TestRunPipelineStopsAtFirstFailure(t *testing.T) {
	var order []string
	boom := errors.New("exit status 1")
	steps := []Step{
		{"one", func() error { order = append(order, "one"); return nil }},
		{"two", func() error { order = append(order, "two"); return boom }},
		{"three", func() error { order = append(order, "three"); return nil }},
	}

	err := runPipeline(steps)
	if err == nil {
		t.Fatal("expected pipeline failure")
	}
	if !errors.Is(err, boom) {
		t.Errorf("error should wrap the step failure, got %v", err)
	}
	if !strings.Contains(err.Error(), `step "two" failed`) {
		t.Errorf("error should name the failing step, got %v", err)
	}
	if got := strings.Join(order, ","); got != "one,two" {
		t.Errorf("steps after the failure must not run, order = %s", got)
	}
}

func TestSetupPipelineHasFixedOrder(t *testing.T) {
	s, _, _ := newTestSetup(t, Flags{})

	var names []string
	for _, st := range s.Steps() {
		names = append(names, st.Name)
	}
	want := []string{
		"System packages",
		"Unify pkg-config",
		"Build dir",
		"Python packages",
		"Conan",
		"Install ffmpeg Conan recipe",
		"Build C++ dependencies",
		"Clean C++ package cache",
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d steps, got %v", len(want), names)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(names[i], prefix) {
			t.Errorf("step %d = %q, want prefix %q", i, names[i], prefix)
		}
	}
}
