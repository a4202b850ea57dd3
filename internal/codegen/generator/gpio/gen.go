// Package gpio generates the GPIO module of a register-API crate: one
// submodule declaration per port plus the family's shared hardware
// enumerations.
package gpio

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

// Generate emits src/gpio/mod.rs and one stub file per port. The shared
// enumerations are emitted even for a device without GPIO ports; an invalid
// or colliding port identifier fails the whole family before anything is
// published.
func Generate(logger *slog.Logger, dir *output.Directory, md *meta.Metadata) error {
	logger.Debug("Generating GPIO module", "device", md.DeviceName, "ports", len(md.GpioPorts))

	if err := hwenum.ValidateAll(Enums); err != nil {
		return fmt.Errorf("gpio enum catalog: %w", err)
	}

	subs, err := common.BuildSubmodules("gpio", md.GpioPorts)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(common.FileHeader())
	fmt.Fprintf(&b, "//! GPIO port APIs for the %s.\n", md.DeviceName)
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

	if err := dir.Publish(path.Join("src", "gpio", "mod.rs"), b.String()); err != nil {
		return err
	}

	for _, s := range subs {
		content := common.FileHeader() +
			fmt.Sprintf("//! Pin-level register API for the %s port.\n",
				common.ToPascalCase(s.Original))
		if err := dir.Publish(path.Join("src", "gpio", s.Module+".rs"), content); err != nil {
			return err
		}
	}

	logger.Info("Generated GPIO module", "device", md.DeviceName, "submodules", len(subs))
	return nil
}
