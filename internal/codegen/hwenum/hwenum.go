// Package hwenum models the fixed hardware enumerations emitted into
// generated register APIs. Each enumeration is a closed, ordered catalog of
// variants bound to explicit integer encodings. The encodings are IP-block
// constants taken from the reference manual, never derived from variant
// declaration order: OutputSpeed declares Low, Medium, High but encodes
// 0b00, 0b01, 0b11.
package hwenum

import (
	"fmt"
	"strconv"
)

// Variant is one named member of a hardware enumeration. Value is the exact
// bit pattern the target register field expects; Lit, when set, is the
// source literal to emit for it (e.g. "0b10"). Lit must agree with Value.
type Variant struct {
	Name  string
	Value uint32
	Lit   string
	Doc   string
}

// Literal returns the source form of the variant's encoding.
func (v Variant) Literal() string {
	if v.Lit != "" {
		return v.Lit
	}
	return fmt.Sprintf("%d", v.Value)
}

// Enum is a hardware enumeration catalog. When Encoded is false the
// variants are logical mode tags with no register bit-field behind them and
// no value accessor is generated; the tag values still must be distinct.
type Enum struct {
	Name     string
	Doc      string
	Encoded  bool
	Variants []Variant
	// BoolConv, when set, generates boolean conversion helpers: from_bool
	// maps true to TrueVariant and false to FalseVariant, as_bool inverts
	// it. The two round-trip for both booleans.
	BoolConv *BoolConv
}

// BoolConv names the variants a boolean maps onto. This is a documented
// call-site convention (true means logic-high), not a hardware encoding.
type BoolConv struct {
	TrueVariant  string
	FalseVariant string
}

// Variant returns the catalog entry with the given name.
func (e Enum) Variant(name string) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Validate checks the catalog's structural invariants: at least one
// variant, no duplicate variant names, no two variants sharing an encoding,
// and every explicit literal agreeing with its numeric value. A failure
// here is a defect in the catalog definition, not an input condition.
func (e Enum) Validate() error {
	if len(e.Variants) == 0 {
		return fmt.Errorf("enum %s has no variants", e.Name)
	}
	names := make(map[string]bool, len(e.Variants))
	values := make(map[uint32]string, len(e.Variants))
	for _, v := range e.Variants {
		if v.Name == "" {
			return fmt.Errorf("enum %s has an unnamed variant", e.Name)
		}
		if names[v.Name] {
			return fmt.Errorf("enum %s declares variant %s twice", e.Name, v.Name)
		}
		names[v.Name] = true
		if prev, ok := values[v.Value]; ok {
			return fmt.Errorf("enum %s: variants %s and %s share encoding %d",
				e.Name, prev, v.Name, v.Value)
		}
		values[v.Value] = v.Name
		if v.Lit != "" {
			if err := checkLiteral(v.Lit, v.Value); err != nil {
				return fmt.Errorf("enum %s variant %s: %w", e.Name, v.Name, err)
			}
		}
	}
	if bc := e.BoolConv; bc != nil {
		if bc.TrueVariant == bc.FalseVariant {
			return fmt.Errorf("enum %s: bool conversion maps both booleans to %s", e.Name, bc.TrueVariant)
		}
		for _, name := range []string{bc.TrueVariant, bc.FalseVariant} {
			if !names[name] {
				return fmt.Errorf("enum %s: bool conversion references unknown variant %s", e.Name, name)
			}
		}
		if len(e.Variants) != 2 {
			return fmt.Errorf("enum %s: bool conversion requires exactly two variants", e.Name)
		}
	}
	return nil
}

// ValidateAll validates every catalog in order and reports the first defect.
func ValidateAll(enums []Enum) error {
	for _, e := range enums {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func checkLiteral(lit string, want uint32) error {
	parsed, err := strconv.ParseUint(lit, 0, 32)
	if err != nil {
		return fmt.Errorf("unparseable literal %q", lit)
	}
	if uint32(parsed) != want {
		return fmt.Errorf("literal %q does not encode value %d", lit, want)
	}
	return nil
}
