package common

import "fmt"

// Submodule is one generated per-instance module declaration within a
// peripheral family's aggregate module.
type Submodule struct {
	// Original is the identifier as it appeared in the device description.
	Original string
	// Module is the sanitized submodule name derived from Original.
	Module string
}

// NameCollisionError reports two descriptors of the same family whose
// identifiers sanitize to the same submodule name. Generation for the
// family is aborted; nothing is renamed or dropped.
type NameCollisionError struct {
	Family string
	First  string
	Second string
	Module string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("%s: peripherals %q and %q both sanitize to submodule %q",
		e.Family, e.First, e.Second, e.Module)
}

// EmptyIdentifierError reports a descriptor whose identifier is empty or
// cannot be sanitized into a valid submodule name.
type EmptyIdentifierError struct {
	Family string
	Index  int
	Ident  string
}

func (e *EmptyIdentifierError) Error() string {
	if e.Ident == "" {
		return fmt.Sprintf("%s: descriptor %d has an empty identifier", e.Family, e.Index)
	}
	return fmt.Sprintf("%s: descriptor %d identifier %q does not sanitize to a valid submodule name",
		e.Family, e.Index, e.Ident)
}

// BuildSubmodules maps the ordered identifier list of one peripheral family
// to its ordered submodule declarations. Input order is preserved so
// repeated runs produce identical output. The whole input is validated
// before any result is returned: a name collision or an unusable identifier
// fails the family as a whole.
func BuildSubmodules(family string, idents []string) ([]Submodule, error) {
	subs := make([]Submodule, 0, len(idents))
	seen := make(map[string]string, len(idents))
	for i, ident := range idents {
		mod := ToSnakeCase(ident)
		if !IsModuleName(mod) {
			return nil, &EmptyIdentifierError{Family: family, Index: i, Ident: ident}
		}
		if prev, ok := seen[mod]; ok {
			return nil, &NameCollisionError{Family: family, First: prev, Second: ident, Module: mod}
		}
		seen[mod] = ident
		subs = append(subs, Submodule{Original: ident, Module: mod})
	}
	return subs, nil
}
