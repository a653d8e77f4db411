package setup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrepareBuildDirCreatesDirAndMarker(t *testing.T) {
	s, _, _ := newTestSetup(t, Flags{})

	if err := s.prepareBuildDir(); err != nil {
		t.Fatalf("prepareBuildDir: %v", err)
	}
	if !isDir(s.cfg.BuildDir) {
		t.Fatal("build dir was not created")
	}
	data, err := os.ReadFile(filepath.Join(s.cfg.BuildDir, ".gitignore"))
	if err != nil {
		t.Fatalf("reading marker: %v", err)
	}
	if string(data) != "/*\n" {
		t.Errorf("marker content = %q, want %q", data, "/*\n")
	}
}

func TestPrepareBuildDirCleanWipesExistingContent(t *testing.T) {
	s, _, _ := newTestSetup(t, Flags{Clean: true})

	sentinel := filepath.Join(s.cfg.BuildDir, "stale.o")
	if err := os.MkdirAll(s.cfg.BuildDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sentinel, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.prepareBuildDir(); err != nil {
		t.Fatalf("prepareBuildDir: %v", err)
	}
	if _, err := os.Stat(sentinel); !os.IsNotExist(err) {
		t.Error("stale build content survived --clean")
	}
	if !isDir(s.cfg.BuildDir) {
		t.Error("build dir missing after clean run")
	}
}

func TestPrepareBuildDirWithoutCleanKeepsContent(t *testing.T) {
	s, _, _ := newTestSetup(t, Flags{})

	sentinel := filepath.Join(s.cfg.BuildDir, "keep.o")
	if err := os.MkdirAll(s.cfg.BuildDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(sentinel, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.prepareBuildDir(); err != nil {
		t.Fatalf("prepareBuildDir: %v", err)
	}
	if _, err := os.Stat(sentinel); err != nil {
		t.Errorf("existing build content should survive without --clean: %v", err)
	}
}

func TestPrepareBuildDirRewritesMarkerEveryRun(t *testing.T) {
	s, _, _ := newTestSetup(t, Flags{})

	if err := os.MkdirAll(s.cfg.BuildDir, 0o755); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(s.cfg.BuildDir, ".gitignore")
	if err := os.WriteFile(marker, []byte("something else\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.prepareBuildDir(); err != nil {
		t.Fatalf("prepareBuildDir: %v", err)
	}
	data, _ := os.ReadFile(marker)
	if string(data) != "/*\n" {
		t.Errorf("marker not rewritten, content = %q", data)
	}
}

func TestLockSourceTreeRejectsSecondLock(t *testing.T) {
	dir := t.TempDir()

	release, err := lockSourceTree(dir)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	if _, err := lockSourceTree(dir); err == nil {
		t.Fatal("second lock should have failed while first is held")
	}

	release()
	release2, err := lockSourceTree(dir)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	release2()
}
