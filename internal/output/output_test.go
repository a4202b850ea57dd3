package output

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishCreatesParentDirectories(t *testing.T) {
	root := t.TempDir()
	dir, err := New(filepath.Join(root, "out"), false, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	if err := dir.Publish(filepath.Join("src", "gpio", "mod.rs"), "pub mod gpio_a;\n"); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "out", "src", "gpio", "mod.rs"))
	if err != nil {
		t.Fatalf("published file not readable: %v", err)
	}
	if string(data) != "pub mod gpio_a;\n" {
		t.Errorf("published content = %q", data)
	}
}

func TestDryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	dir, err := New(filepath.Join(root, "out"), true, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	if err := dir.Publish("Cargo.toml", "[package]\n"); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if err := dir.Run("false"); err != nil {
		t.Fatalf("Run in dry-run mode should not execute: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "out")); !os.IsNotExist(err) {
		t.Error("dry run created the output directory")
	}
}

func TestSubdirNestsUnderParent(t *testing.T) {
	root := t.TempDir()
	dir, err := New(root, false, testLogger())
	if err != nil {
		t.Fatal(err)
	}
	sub, err := dir.Subdir("stm32f303-api")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Path() != filepath.Join(root, "stm32f303-api") {
		t.Errorf("Subdir path = %q", sub.Path())
	}
	if _, err := os.Stat(sub.Path()); err != nil {
		t.Errorf("subdir not created: %v", err)
	}
}
