package java

import (
	"sort"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Import references a class from another package.
type Import struct {
	// Package is the class's home package, e.g. "java.util".
	Package string
	// Name is the simple class name, e.g. "List".
	Name string
}

var _ tokens.LangItem = Import{}

// Imported references the class name from pkg.
func Imported(pkg, name string) Import {
	return Import{Package: pkg, Name: name}
}

func (i Import) qualified() string {
	return i.Package + "." + i.Name
}

func (i Import) FormatInto(f *format.Formatter, lang tokens.Lang, state any) error {
	if st, ok := state.(*fileState); ok && st.qualified[i.qualified()] {
		return f.WriteString(i.qualified())
	}
	return f.WriteString(i.Name)
}

// Type is a class reference with type arguments; the arguments participate
// in the import walk.
type Type struct {
	Import    Import
	Arguments []tokens.LangItem
}

var (
	_ tokens.LangItem     = Type{}
	_ tokens.ImportWalker = Type{}
)

// Generic builds a parameterized reference to base.
func Generic(base Import, arguments ...tokens.LangItem) Type {
	return Type{Import: base, Arguments: arguments}
}

func (t Type) FormatInto(f *format.Formatter, lang tokens.Lang, state any) error {
	if err := t.Import.FormatInto(f, lang, state); err != nil {
		return err
	}
	if len(t.Arguments) == 0 {
		return nil
	}
	if err := f.WriteString("<"); err != nil {
		return err
	}
	for n, arg := range t.Arguments {
		if n > 0 {
			if err := f.WriteString(", "); err != nil {
				return err
			}
		}
		if err := arg.FormatInto(f, lang, state); err != nil {
			return err
		}
	}
	return f.WriteString(">")
}

func (t Type) WalkImports(yield func(tokens.LangItem) bool) bool {
	if !yield(t.Import) {
		return false
	}
	for _, arg := range t.Arguments {
		if w, ok := arg.(tokens.ImportWalker); ok {
			if !w.WalkImports(yield) {
				return false
			}
			continue
		}
		if !yield(arg) {
			return false
		}
	}
	return true
}

type fileState struct {
	qualified map[string]bool
}

// resolveImports applies the first-seen-wins policy. Classes from the
// file's own package and from java.lang claim their short name but never
// produce an import line.
func (c Config) resolveImports(t *tokens.Tokens) ([]Import, *fileState) {
	byName := make(map[string]string)
	st := &fileState{qualified: make(map[string]bool)}
	var list []Import

	t.WalkImports(func(li tokens.LangItem) bool {
		imp, ok := li.(Import)
		if !ok {
			return true
		}
		if pkg, seen := byName[imp.Name]; seen {
			if pkg != imp.Package {
				st.qualified[imp.qualified()] = true
			}
			return true
		}
		byName[imp.Name] = imp.Package
		if imp.Package != c.Package && imp.Package != langPackage {
			list = append(list, imp)
		}
		return true
	})

	sort.Slice(list, func(a, b int) bool {
		if list[a].Package != list[b].Package {
			return list[a].Package < list[b].Package
		}
		return list[a].Name < list[b].Name
	})
	return list, st
}
