// Package system extracts the generator's view of a chip from a parsed SVD
// device: which GPIO ports and SPI controllers exist and what they are
// called. Document order is preserved throughout so repeated runs over the
// same description generate identical output.
package system

import (
	"fmt"
	"strings"

	"github.com/Past9/stm32-api-generator/internal/codegen/common"
	"github.com/Past9/stm32-api-generator/internal/codegen/meta"
	"github.com/Past9/stm32-api-generator/internal/svd"
)

// Name wraps a peripheral identifier and derives the naming forms used in
// generated code from it on demand. It keeps no state beyond the original
// spelling.
type Name struct {
	Original string
}

func NameOf(s string) Name { return Name{Original: s} }

// Snake returns the lowercase underscore-separated form used for submodule
// names.
func (n Name) Snake() string { return common.ToSnakeCase(n.Original) }

// Pascal returns the struct-name form used for generated types.
func (n Name) Pascal() string { return common.ToPascalCase(n.Original) }

// SystemInfo is the device description consumed by the generators.
type SystemInfo struct {
	Device *svd.Device
	Gpios  []Gpio
	Spis   []Spi
}

// Load builds a SystemInfo from a parsed device. GPIO peripherals are those
// named with the GPIO prefix, SPI controllers those with the SPI prefix,
// in both cases keeping the order they appear in the document. A peripheral
// deriving from one the document does not declare is a load error.
func Load(dev *svd.Device) (*SystemInfo, error) {
	info := &SystemInfo{Device: dev}
	for _, p := range dev.Peripherals {
		if p.DerivedFrom != nil {
			if _, ok := dev.PeripheralByName(*p.DerivedFrom); !ok {
				return nil, fmt.Errorf("peripheral %q derives from unknown peripheral %q",
					p.Name, *p.DerivedFrom)
			}
		}
		lower := strings.ToLower(p.Name)
		switch {
		case strings.HasPrefix(lower, "gpio"):
			g, err := NewGpio(p)
			if err != nil {
				return nil, err
			}
			info.Gpios = append(info.Gpios, g)
		case strings.HasPrefix(lower, "spi"):
			info.Spis = append(info.Spis, NewSpi(p))
		}
	}
	return info, nil
}

// Metadata reduces the system model to the identifier collections the
// family generators consume.
func (s *SystemInfo) Metadata() *meta.Metadata {
	md := &meta.Metadata{DeviceName: s.Device.Name}
	for _, g := range s.Gpios {
		md.GpioPorts = append(md.GpioPorts, g.Name.Original)
	}
	for _, sp := range s.Spis {
		md.SpiInstances = append(md.SpiInstances, sp.StructName.Original)
	}
	return md
}
