package spi

import "github.com/Past9/stm32-api-generator/internal/codegen/hwenum"

// Enums is the shared enumeration catalog emitted into every generated SPI
// module. Encodings are the CR1 bit-field values from the reference manual,
// stated explicitly per variant.
var Enums = []hwenum.Enum{
	{
		Name:    "BitOrder",
		Doc:     "Frame transmission order (LSBFIRST bit).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "MsbFirst", Value: 0},
			{Name: "LsbFirst", Value: 1},
		},
	},
	{
		Name:    "BidiMode",
		Doc:     "Data-line topology (BIDIMODE bit).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "TwoLineUnidirectional", Value: 0},
			{Name: "OneLineBidirectional", Value: 1},
		},
	},
	{
		Name:    "FrameFormat",
		Doc:     "Frame format selection.",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "MsbFirst", Value: 0},
			{Name: "LsbFirst", Value: 1},
		},
	},
	{
		Name:    "BaudRateScale",
		Doc:     "Peripheral clock divisor for the baud rate generator (BR field).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "Div2", Value: 0},
			{Name: "Div4", Value: 1},
			{Name: "Div8", Value: 2},
			{Name: "Div16", Value: 3},
			{Name: "Div32", Value: 4},
			{Name: "Div64", Value: 5},
			{Name: "Div128", Value: 6},
			{Name: "Div256", Value: 7},
		},
	},
	{
		Name:    "ClockPolarity",
		Doc:     "Idle state of the clock line (CPOL bit).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "IdleLow", Value: 0},
			{Name: "IdleHigh", Value: 1},
		},
	},
	{
		Name:    "ClockPhase",
		Doc:     "Clock transition on which data is captured (CPHA bit).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "FirstTransition", Value: 0},
			{Name: "SecondTransition", Value: 1},
		},
	},
	{
		Name: "SpiChannelType",
		Doc:  "Logical bus topology of a channel. Not a register encoding.",
		Variants: []hwenum.Variant{
			{Name: "FullDuplex", Value: 0},
			{Name: "HalfDuplex", Value: 1},
			{Name: "SimplexReceive", Value: 2},
			{Name: "SimplexTransmit", Value: 3},
		},
	},
}
