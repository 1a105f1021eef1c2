package golang

import (
	"sort"
	"strconv"
	"strings"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Import references a name exported by another Go package, rendered as
// `pkg.Name` through the package identifier chosen for the module.
type Import struct {
	// Module is the import path, e.g. "encoding/json".
	Module string
	// Name is the exported name, e.g. "Marshal".
	Name string
	// Alias forces the package identifier instead of the module basename.
	Alias string
}

var _ tokens.LangItem = Import{}

// Imported references name from module.
func Imported(module, name string) Import {
	return Import{Module: module, Name: name}
}

// WithAlias returns the import under a forced package identifier.
func (i Import) WithAlias(alias string) Import {
	i.Alias = alias
	return i
}

func (i Import) base() string {
	if i.Alias != "" {
		return i.Alias
	}
	if n := strings.LastIndexByte(i.Module, '/'); n >= 0 {
		return i.Module[n+1:]
	}
	return i.Module
}

func (i Import) FormatInto(f *format.Formatter, lang tokens.Lang, state any) error {
	if cfg, ok := lang.(Config); ok && cfg.Module != "" && cfg.Module == i.Module {
		return f.WriteString(i.Name)
	}
	ident := i.base()
	if st, ok := state.(*fileState); ok {
		if resolved, ok := st.idents[i.Module]; ok {
			ident = resolved
		}
	}
	return f.WriteString(ident + "." + i.Name)
}

// spec renders the inside of an import block line for this import's module.
func (i Import) spec(st *fileState) string {
	ident := st.idents[i.Module]
	quoted := `"` + i.Module + `"`
	if ident != i.base() || i.Alias != "" {
		return ident + " " + quoted
	}
	return quoted
}

type fileState struct {
	idents map[string]string
}

// resolveImports assigns one package identifier per module. The first module
// to claim a basename keeps it; later modules with the same basename get a
// deterministic numeric alias.
func (c Config) resolveImports(t *tokens.Tokens) ([]Import, *fileState) {
	st := &fileState{idents: make(map[string]string)}
	taken := make(map[string]string)
	var list []Import

	t.WalkImports(func(li tokens.LangItem) bool {
		imp, ok := li.(Import)
		if !ok {
			return true
		}
		if c.Module != "" && imp.Module == c.Module {
			return true
		}
		if _, done := st.idents[imp.Module]; done {
			return true
		}
		ident := imp.base()
		if owner, used := taken[ident]; used && owner != imp.Module {
			base := ident
			for n := 2; ; n++ {
				ident = base + strconv.Itoa(n)
				if _, used := taken[ident]; !used {
					break
				}
			}
		}
		taken[ident] = imp.Module
		st.idents[imp.Module] = ident
		list = append(list, imp)
		return true
	})

	sort.Slice(list, func(a, b int) bool {
		return list[a].Module < list[b].Module
	})
	return list, st
}
