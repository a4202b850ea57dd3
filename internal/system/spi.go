package system

import "github.com/Past9/stm32-api-generator/internal/svd"

// Spi describes one SPI controller instance, identified by the peripheral
// name as spelled in the device description (e.g. "SPI1").
type Spi struct {
	StructName Name
}

func NewSpi(p *svd.Peripheral) Spi {
	return Spi{StructName: NameOf(p.Name)}
}
