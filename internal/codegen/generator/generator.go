// Package generator orchestrates per-family register API generation. The
// GPIO and SPI families are independent failure domains: an error in one
// never stops the other, and the joined error reports every family that
// failed.
package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Past9/stm32-api-generator/internal/codegen/common"
	"github.com/Past9/stm32-api-generator/internal/codegen/generator/gpio"
	"github.com/Past9/stm32-api-generator/internal/codegen/generator/spi"
	"github.com/Past9/stm32-api-generator/internal/codegen/meta"
	"github.com/Past9/stm32-api-generator/internal/output"
)

// FamilyGenerator generates one peripheral family's module tree into dir.
type FamilyGenerator func(logger *slog.Logger, dir *output.Directory, md *meta.Metadata) error

// Family order is fixed so logs and error aggregation are stable run to run.
var familyOrder = []string{"gpio", "spi"}

var families = map[string]FamilyGenerator{
	"gpio": gpio.Generate,
	"spi":  spi.Generate,
}

type Generator struct {
	dir    *output.Directory
	logger *slog.Logger
}

func New(dir *output.Directory, logger *slog.Logger) *Generator {
	return &Generator{dir: dir, logger: logger}
}

// GenAll generates every family plus the crate scaffolding. Families that
// fail are reported together; the rest are still generated.
func (g *Generator) GenAll(md *meta.Metadata) error {
	return g.generate(md, familyOrder)
}

// GenerateFamily generates one family as a standalone crate: the family's
// module plus scaffolding whose lib.rs declares only that family, so the
// output builds on its own.
func (g *Generator) GenerateFamily(name string, md *meta.Metadata) error {
	return g.generate(md, []string{name})
}

func (g *Generator) generate(md *meta.Metadata, names []string) error {
	for _, name := range names {
		if _, ok := families[name]; !ok {
			return fmt.Errorf("unsupported family %q (supported: %s)", name, strings.Join(familyOrder, ", "))
		}
	}

	var errs []error
	for _, name := range names {
		g.logger.Info("Generating peripheral family", "family", name, "device", md.DeviceName)
		if err := families[name](g.logger, g.dir, md); err != nil {
			errs = append(errs, fmt.Errorf("generate %s family: %w", name, err))
		}
	}
	if err := g.generateScaffolding(md, names); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// generateScaffolding emits the crate files that tie the family modules
// together: src/lib.rs declaring the generated families, Cargo.toml and
// .rustfmt.toml.
func (g *Generator) generateScaffolding(md *meta.Metadata, names []string) error {
	version, err := common.GetVersion()
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}

	var b strings.Builder
	b.WriteString(common.FileHeader())
	fmt.Fprintf(&b, "//! Register APIs for the %s.\n#![no_std]\n\n", md.DeviceName)
	for _, name := range names {
		fmt.Fprintf(&b, "pub mod %s;\n", name)
	}
	if err := g.dir.Publish("src/lib.rs", b.String()); err != nil {
		return err
	}

	cargo := fmt.Sprintf(`[package]
name = "%s"
version = "%s"
edition = "2021"
description = "Generated register API for the %s"

[dependencies]
`, CrateName(md.DeviceName), version, md.DeviceName)
	if err := g.dir.Publish("Cargo.toml", cargo); err != nil {
		return err
	}

	return g.dir.Publish(".rustfmt.toml", "tab_spaces = 2\n")
}

// CrateName derives the generated crate's name from the device name.
func CrateName(deviceName string) string {
	return common.ToKebabCase(deviceName) + "-api"
}
