package rust

import (
	"sort"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Import references a name from another Rust path, rendered as the short
// name when a use declaration covers it and fully qualified otherwise.
type Import struct {
	// Path is the module path, e.g. "std::fmt".
	Path string
	// Name is the imported name, e.g. "Debug".
	Name string
	// Alias, when set, imports the name with `as` and uses the alias at
	// every use site.
	Alias string
}

var _ tokens.LangItem = Import{}

// Imported references name from path.
func Imported(path, name string) Import {
	return Import{Path: path, Name: name}
}

// WithAlias returns the import bound under alias.
func (i Import) WithAlias(alias string) Import {
	i.Alias = alias
	return i
}

func (i Import) short() string {
	if i.Alias != "" {
		return i.Alias
	}
	return i.Name
}

func (i Import) qualified() string {
	return i.Path + "::" + i.Name
}

func (i Import) useDecl() string {
	if i.Alias != "" {
		return "use " + i.qualified() + " as " + i.Alias + ";"
	}
	return "use " + i.qualified() + ";"
}

func (i Import) FormatInto(f *format.Formatter, lang tokens.Lang, state any) error {
	if st, ok := state.(*fileState); ok && st.qualified[i.qualified()] {
		return f.WriteString(i.qualified())
	}
	return f.WriteString(i.short())
}

// fileState is the per-render qualification state installed by FormatFile.
type fileState struct {
	qualified map[string]bool
}

// resolveImports walks the stream and applies the first-seen-wins policy:
// the first path to claim a short name keeps it and gets a use declaration;
// later paths claiming the same short name render fully qualified with no
// declaration.
func resolveImports(t *tokens.Tokens) ([]Import, *fileState) {
	byName := make(map[string]string)
	st := &fileState{qualified: make(map[string]bool)}
	var list []Import

	t.WalkImports(func(li tokens.LangItem) bool {
		imp, ok := li.(Import)
		if !ok {
			return true
		}
		short := imp.short()
		if path, seen := byName[short]; seen {
			if path != imp.Path {
				st.qualified[imp.qualified()] = true
			}
			return true
		}
		byName[short] = imp.Path
		list = append(list, imp)
		return true
	})

	sort.Slice(list, func(a, b int) bool {
		if list[a].Path != list[b].Path {
			return list[a].Path < list[b].Path
		}
		return list[a].Name < list[b].Name
	})
	return list, st
}
