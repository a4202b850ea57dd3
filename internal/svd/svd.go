// Package svd holds a trimmed CMSIS-SVD device model covering the parts of
// the schema the generator consumes: device identity and the peripheral
// list. SVD integer fields mix decimal and 0x/0b notations, so the scalar
// types parse with base auto-detection.
package svd

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

type Uint uint

func (u *Uint) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 0, 0)
	*u = Uint(v)
	return err
}

type Uint64 uint64

func (u *Uint64) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 0, 64)
	*u = Uint64(v)
	return err
}

// Device is the root of an SVD document.
type Device struct {
	Vendor      *string       `xml:"vendor"`
	Name        string        `xml:"name"`
	Series      *string       `xml:"series"`
	Version     string        `xml:"version"`
	Description string        `xml:"description"`
	Width       Uint          `xml:"width"`
	Peripherals []*Peripheral `xml:"peripherals>peripheral"`
}

// Peripheral is one peripheral instance. Instances cloned from another via
// derivedFrom carry only the fields that differ, so consumers must resolve
// DerivedFrom before reading optional fields.
type Peripheral struct {
	DerivedFrom *string `xml:"derivedFrom,attr"`
	Name        string  `xml:"name"`
	Description *string `xml:"description"`
	GroupName   *string `xml:"groupName"`
	BaseAddress Uint64  `xml:"baseAddress"`
}

// Parse decodes an SVD document.
func Parse(data []byte) (*Device, error) {
	dev := new(Device)
	if err := xml.Unmarshal(data, dev); err != nil {
		return nil, fmt.Errorf("decode SVD: %w", err)
	}
	if dev.Name == "" {
		return nil, fmt.Errorf("SVD document has no device name")
	}
	return dev, nil
}

// ParseFile reads and decodes one SVD file.
func ParseFile(path string) (*Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read SVD file: %w", err)
	}
	dev, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dev, nil
}

// PeripheralByName returns the named peripheral, if present.
func (d *Device) PeripheralByName(name string) (*Peripheral, bool) {
	for _, p := range d.Peripherals {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}
