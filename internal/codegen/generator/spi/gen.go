// Package spi generates the SPI module of a register-API crate: one
// submodule declaration per controller instance plus the family's shared
// hardware enumerations.
package spi

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/Past9/stm32-api-generator/internal/codegen/common"
	"github.com/Past9/stm32-api-generator/internal/codegen/hwenum"
	"github.com/Past9/stm32-api-generator/internal/codegen/meta"
	"github.com/Past9/stm32-api-generator/internal/output"
)

// Generate emits src/spi/mod.rs and one stub file per controller. The
// shared enumerations are emitted even for a device without SPI instances.
func Generate(logger *slog.Logger, dir *output.Directory, md *meta.Metadata) error {
	logger.Debug("Generating SPI module", "device", md.DeviceName, "instances", len(md.SpiInstances))

	if err := hwenum.ValidateAll(Enums); err != nil {
		return fmt.Errorf("spi enum catalog: %w", err)
	}

	subs, err := common.BuildSubmodules("spi", md.SpiInstances)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(common.FileHeader())
	fmt.Fprintf(&b, "//! SPI controller APIs for the %s.\n", md.DeviceName)
	b.WriteString("\n")
	for _, s := range subs {
		fmt.Fprintf(&b, "pub mod %s;\n", s.Module)
	}
	if len(subs) > 0 {
		b.WriteString("\n")
	}
	for i, e := range Enums {
		if i > 0 {
			b.WriteString("\n")
		}
		decl, err := common.RenderEnum(e)
		if err != nil {
			return fmt.Errorf("render %s: %w", e.Name, err)
		}
		b.WriteString(decl)
	}

	if err := dir.Publish(path.Join("src", "spi", "mod.rs"), b.String()); err != nil {
		return err
	}

	for _, s := range subs {
		content := common.FileHeader() +
			fmt.Sprintf("//! Register API for the %s controller.\n", s.Original)
		if err := dir.Publish(path.Join("src", "spi", s.Module+".rs"), content); err != nil {
			return err
		}
	}

	logger.Info("Generated SPI module", "device", md.DeviceName, "submodules", len(subs))
	return nil
}
