// Package output writes generated crate trees to disk and runs the cargo
// post-processing steps over them. In dry-run mode every operation is
// evaluated but nothing touches the filesystem and no commands run.
package output

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// Directory is a generation output root. All published paths are relative
// to it; parent directories are created on demand.
type Directory struct {
	path   string
	dryRun bool
	logger *slog.Logger
}

func New(path string, dryRun bool, logger *slog.Logger) (*Directory, error) {
	if !dryRun {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %s: %w", path, err)
		}
	}
	return &Directory{path: path, dryRun: dryRun, logger: logger}, nil
}

// Subdir returns a Directory rooted at a subdirectory of this one.
func (d *Directory) Subdir(name string) (*Directory, error) {
	return New(filepath.Join(d.path, name), d.dryRun, d.logger)
}

func (d *Directory) Path() string { return d.path }

// Publish writes one generated file under the output root.
func (d *Directory) Publish(relPath, content string) error {
	target := filepath.Join(d.path, relPath)
	d.logger.Info("Publishing file", "path", target)
	if d.dryRun {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// Run executes a command inside the output directory, forwarding its output
// to the tool's own streams.
func (d *Directory) Run(command string, args ...string) error {
	d.logger.Info("Executing command", "dir", d.path, "command", command)
	if d.dryRun {
		return nil
	}
	cmd := exec.Command(command, args...)
	cmd.Dir = d.path
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}
	return nil
}

// PostProcessOptions selects the cargo steps run over a generated crate.
type PostProcessOptions struct {
	Fix          bool
	Format       bool
	Check        bool
	BuildRelease bool
	BuildDebug   bool
	BuildDocs    bool
}

// PostProcess runs the selected cargo steps over the crate rooted at d.
func (d *Directory) PostProcess(opts PostProcessOptions) error {
	if opts.Fix {
		d.logger.Info("Fixing...")
		if err := d.Run("cargo", "+nightly", "fix", "--allow-dirty", "--allow-no-vcs", "--all-features"); err != nil {
			return err
		}
	}
	if opts.Format {
		d.logger.Info("Formatting...")
		if err := d.Run("cargo", "+nightly", "fmt"); err != nil {
			return err
		}
	}
	if opts.Check {
		d.logger.Info("Checking...")
		if err := d.Run("cargo", "check", "--all-features"); err != nil {
			return err
		}
	}
	if opts.BuildRelease {
		d.logger.Info("Building in release mode...")
		if err := d.Run("cargo", "build", "--release", "--all-features"); err != nil {
			return err
		}
	}
	if opts.BuildDebug {
		d.logger.Info("Building in debug mode...")
		if err := d.Run("cargo", "build", "--all-features"); err != nil {
			return err
		}
	}
	if opts.BuildDocs {
		d.logger.Info("Building documentation...")
		if err := d.Run("cargo", "doc", "--all-features"); err != nil {
			return err
		}
	}
	return nil
}
