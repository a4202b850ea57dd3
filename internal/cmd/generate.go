package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Past9/stm32-api-generator/internal/codegen/generator"
	"github.com/Past9/stm32-api-generator/internal/output"
	"github.com/Past9/stm32-api-generator/internal/svd"
	"github.com/Past9/stm32-api-generator/internal/system"
)

// Generate is the main command: load every SVD file matching the glob and
// emit one register-API crate per device.
type Generate struct {
	Files  string `short:"f" help:"Glob pattern matching SVD files to generate APIs for." required:"" env:"STM32GEN_FILES"`
	Out    string `short:"o" help:"Output directory path." required:"" env:"STM32GEN_OUT"`
	Family string `help:"Peripheral family to generate." enum:"gpio,spi,all" default:"all" env:"STM32GEN_FAMILY"`
	DryRun bool   `help:"Log what would be generated without writing files or running commands."`

	NoFix        bool `help:"Don't run 'cargo fix' on the output crate(s)."`
	NoFmt        bool `help:"Don't run 'cargo fmt' on the output crate(s)."`
	NoCheck      bool `help:"Don't run 'cargo check' on the output crate(s)."`
	BuildRelease bool `help:"Build the crate(s) in release mode."`
	BuildDebug   bool `help:"Build the crate(s) in debug mode."`
	BuildDocs    bool `help:"Build documentation for the crate(s)."`
}

// Run is called by kong when the generate command is executed. Devices are
// independent: a failure in one does not stop the rest, and all failures
// are reported together.
func (c *Generate) Run(logger *slog.Logger) error {
	matches, err := filepath.Glob(c.Files)
	if err != nil {
		return fmt.Errorf("bad file glob %q: %w", c.Files, err)
	}

	var files []string
	for _, m := range matches {
		if fi, err := os.Stat(m); err == nil && !fi.IsDir() {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no SVD files match %q", c.Files)
	}

	outRoot, err := output.New(c.Out, c.DryRun, logger)
	if err != nil {
		return err
	}

	var errs []error
	for _, file := range files {
		if err := c.generateDevice(logger, outRoot, file); err != nil {
			logger.Error("Generation failed", "file", file, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Generate) generateDevice(logger *slog.Logger, outRoot *output.Directory, file string) error {
	logger.Info("Loading", "file", file)

	dev, err := svd.ParseFile(file)
	if err != nil {
		return err
	}
	sys, err := system.Load(dev)
	if err != nil {
		return err
	}
	md := sys.Metadata()

	crateDir, err := outRoot.Subdir(generator.CrateName(dev.Name))
	if err != nil {
		return err
	}

	gen := generator.New(crateDir, logger)
	if c.Family == "all" {
		err = gen.GenAll(md)
	} else {
		err = gen.GenerateFamily(c.Family, md)
	}
	if err != nil {
		return err
	}

	return crateDir.PostProcess(output.PostProcessOptions{
		Fix:          !c.NoFix,
		Format:       !c.NoFmt,
		Check:        !c.NoCheck,
		BuildRelease: c.BuildRelease,
		BuildDebug:   c.BuildDebug,
		BuildDocs:    c.BuildDocs,
	})
}
