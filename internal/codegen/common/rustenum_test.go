package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Past9/stm32-api-generator/internal/codegen/hwenum"
)

func TestRenderEnumEncodedVariants(t *testing.T) {
	out, err := RenderEnum(hwenum.Enum{
		Name:    "PullDirection",
		Doc:     "Internal pull resistor configuration (PUPDR field).",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "Floating", Value: 0, Lit: "0b00"},
			{Name: "Up", Value: 1, Lit: "0b01"},
			{Name: "Down", Value: 2, Lit: "0b10"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "pub enum PullDirection {")
	assert.Contains(t, out, "pub fn val(&self) -> u32 {")
	assert.Contains(t, out, "Self::Floating => 0b00,")
	assert.Contains(t, out, "Self::Up => 0b01,")
	assert.Contains(t, out, "Self::Down => 0b10,")
}

func TestRenderEnumBoolConversion(t *testing.T) {
	out, err := RenderEnum(hwenum.Enum{
		Name:    "DigitalValue",
		Encoded: true,
		Variants: []hwenum.Variant{
			{Name: "High", Value: 1},
			{Name: "Low", Value: 0},
		},
		BoolConv: &hwenum.BoolConv{TrueVariant: "High", FalseVariant: "Low"},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "pub fn from_bool(value: bool) -> Self {")
	assert.Contains(t, out, "true => Self::High,")
	assert.Contains(t, out, "false => Self::Low,")
	assert.Contains(t, out, "pub fn as_bool(&self) -> bool {")
	assert.Contains(t, out, "Self::High => true,")
	assert.Contains(t, out, "Self::Low => false,")
}

func TestRenderEnumUnencodedHasNoValAccessor(t *testing.T) {
	out, err := RenderEnum(hwenum.Enum{
		Name: "SpiChannelType",
		Variants: []hwenum.Variant{
			{Name: "FullDuplex", Value: 0},
			{Name: "HalfDuplex", Value: 1},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out, "pub enum SpiChannelType {")
	assert.NotContains(t, out, "impl SpiChannelType")
	assert.NotContains(t, out, "fn val")
}
