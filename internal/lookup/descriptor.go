package lookup

import (
	"path"
	"reflect"
)

// TypeDescriptor describes a type well enough to name it.
type TypeDescriptor interface {
	// FullName returns the namespace-qualified name, or "" if unknown.
	FullName() string
	// Name returns the simple name.
	Name() string
}

// QualifiedName returns FullName, falling back to Name when it is empty.
// A nil descriptor has no name.
func QualifiedName(t TypeDescriptor) string {
	if t == nil {
		return ""
	}
	if full := t.FullName(); full != "" {
		return full
	}
	return t.Name()
}

// TypeName is a TypeDescriptor for a plain dotted name such as "System.Console".
type TypeName string

func (n TypeName) FullName() string { return string(n) }

func (n TypeName) Name() string {
	s := string(n)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '.' {
			return s[i+1:]
		}
	}
	return s
}

// reflectType adapts a reflect.Type.
type reflectType struct {
	t reflect.Type
}

// ReflectType returns a TypeDescriptor for a Go type. Named types map to
// "<package name>.<TypeName>"; unnamed types have no full name and fall
// back to their string form.
func ReflectType(t reflect.Type) TypeDescriptor {
	return reflectType{t: t}
}

func (r reflectType) FullName() string {
	if r.t.Name() == "" || r.t.PkgPath() == "" {
		return ""
	}
	return path.Base(r.t.PkgPath()) + "." + r.t.Name()
}

func (r reflectType) Name() string {
	if name := r.t.Name(); name != "" {
		return name
	}
	return r.t.String()
}
