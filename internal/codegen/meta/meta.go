// Package meta carries the generation plan handed from the device
// description layer to the per-family generators. Only ordered identifier
// collections cross this boundary; register addresses and bit offsets stay
// with the SVD layer.
package meta

// Metadata holds everything the family generators need for one device.
type Metadata struct {
	// DeviceName is the SVD device name, e.g. "STM32F303".
	DeviceName string
	// GpioPorts lists GPIO port identifiers in device-description order.
	GpioPorts []string
	// SpiInstances lists SPI controller identifiers in device-description
	// order.
	SpiInstances []string
}
