// Package extraction holds the declaration types shared between the
// language parsers and the indexer.
package extraction

// DeclarationKind identifies a declaration node the indexer cares about.
type DeclarationKind string

const (
	KindClass      DeclarationKind = "class"
	KindStruct     DeclarationKind = "struct"
	KindInterface  DeclarationKind = "interface"
	KindEnum       DeclarationKind = "enum"
	KindDelegate   DeclarationKind = "delegate"
	KindRecord     DeclarationKind = "record"
	KindEnumMember DeclarationKind = "enum_member"
)

// IsType reports whether the kind declares a type. Enum members are
// visited alongside types but never produce index records.
func (k DeclarationKind) IsType() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum, KindDelegate, KindRecord:
		return true
	}
	return false
}

// Declaration is a single declaration found inside a namespace scope.
type Declaration struct {
	Kind       DeclarationKind
	Identifier string // simple identifier, generic parameters excluded
	Owner      string // dotted name of the owning namespace
}

// QualifiedName returns "Owner.Identifier".
func (d Declaration) QualifiedName() string {
	return d.Owner + "." + d.Identifier
}

// FileDeclarations is the extraction result for one compilation unit.
type FileDeclarations struct {
	Language     string
	FilePath     string
	Namespaces   []string // namespace names in discovery order
	Declarations []Declaration
}

// Types returns the declarations that declare types, preserving order.
func (f *FileDeclarations) Types() []Declaration {
	types := make([]Declaration, 0, len(f.Declarations))
	for _, d := range f.Declarations {
		if d.Kind.IsType() {
			types = append(types, d)
		}
	}
	return types
}
