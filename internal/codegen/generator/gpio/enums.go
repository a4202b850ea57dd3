package gpio

import "github.com/Past9/stm32-api-generator/internal/codegen/hwenum"

// Enums is the shared enumeration catalog emitted into every generated GPIO
// module, whatever ports the device has. Every encoding is stated per
// variant, straight from the reference manual's register bit-field tables;
// none is derived from declaration order (OutputSpeed skips 0b10).
var Enums = []hwenum.Enum{
	{
		Name:    "DigitalValue",
		Doc:     "Logic level of a pin, as read from IDR or written to ODR.",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "High", Value: 1},
			{Name: "Low", Value: 0},
		},
		BoolConv: &hwenum.BoolConv{TrueVariant: "High", FalseVariant: "Low"},
	},
	{
		Name:    "PullDirection",
		Doc:     "Internal pull resistor configuration (PUPDR field).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "Floating", Value: 0b00, Lit: "0b00", Doc: "No pull-up or pull-down."},
			{Name: "Up", Value: 0b01, Lit: "0b01"},
			{Name: "Down", Value: 0b10, Lit: "0b10"},
		},
	},
	{
		Name:    "OutputType",
		Doc:     "Output driver topology (OTYPER field).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "PushPull", Value: 0},
			{Name: "OpenDrain", Value: 1},
		},
	},
	{
		Name:    "OutputSpeed",
		Doc:     "Output slew rate (OSPEEDR field). High is 0b11; 0b10 is reserved.",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "Low", Value: 0b00, Lit: "0b00"},
			{Name: "Medium", Value: 0b01, Lit: "0b01"},
			{Name: "High", Value: 0b11, Lit: "0b11"},
		},
	},
}
