package csharp

import (
	"sort"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Import references a type from a namespace.
type Import struct {
	// Namespace is the type's home namespace, e.g. "System.Collections".
	Namespace string
	// Name is the simple type name.
	Name string
}

var _ tokens.LangItem = Import{}

// Imported references the type name from ns.
func Imported(ns, name string) Import {
	return Import{Namespace: ns, Name: name}
}

func (i Import) qualified() string {
	return i.Namespace + "." + i.Name
}

func (i Import) FormatInto(f *format.Formatter, lang tokens.Lang, state any) error {
	if st, ok := state.(*fileState); ok && st.qualified[i.qualified()] {
		return f.WriteString(i.qualified())
	}
	return f.WriteString(i.Name)
}

// Type is a type reference with generic arguments; the arguments
// participate in the import walk.
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

// resolveImports applies the first-seen-wins policy per short name, then
// emits one using per namespace that won at least one name. Types from the
// file's own namespace claim names but produce no using.
func (c Config) resolveImports(t *tokens.Tokens) ([]string, *fileState) {
	byName := make(map[string]string)
	st := &fileState{qualified: make(map[string]bool)}
	needed := make(map[string]bool)

	t.WalkImports(func(li tokens.LangItem) bool {
		imp, ok := li.(Import)
		if !ok {
			return true
		}
		if ns, seen := byName[imp.Name]; seen {
			if ns != imp.Namespace {
				st.qualified[imp.qualified()] = true
			}
			return true
		}
		byName[imp.Name] = imp.Namespace
		if imp.Namespace != c.Namespace {
			needed[imp.Namespace] = true
		}
		return true
	})

	usings := make([]string, 0, len(needed))
	for ns := range needed {
		usings = append(usings, ns)
	}
	sort.Strings(usings)
	return usings, st
}
