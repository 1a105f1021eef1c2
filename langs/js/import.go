package js

import (
	"sort"
	"strconv"
	"strings"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Import references a named export from a module.
type Import struct {
	// Module is the specifier, e.g. "./collections.js".
	Module string
	// Name is the exported name.
	Name string
	// Alias forces the local binding name.
	Alias string
}

var _ tokens.LangItem = Import{}

// Imported references the named export name from module.
func Imported(module, name string) Import {
	return Import{Module: module, Name: name}
}

// WithAlias returns the import bound under a forced local name.
func (i Import) WithAlias(alias string) Import {
	i.Alias = alias
	return i
}

func (i Import) local() string {
	if i.Alias != "" {
		return i.Alias
	}
	return i.Name
}

func (i Import) key() string {
	return i.Module + "#" + i.Name
}

func (i Import) FormatInto(f *format.Formatter, lang tokens.Lang, state any) error {
	if st, ok := state.(*fileState); ok {
		if bound, ok := st.bindings[i.key()]; ok {
			return f.WriteString(bound)
		}
	}
	return f.WriteString(i.local())
}

// group is one import statement: every binding pulled from one module.
type group struct {
	module   string
	bindings []binding
}

type binding struct {
	name  string
	local string
}

func (g group) statement() string {
	var sb strings.Builder
	sb.WriteString("import {")
	for n, b := range g.bindings {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.name)
		if b.local != b.name {
			sb.WriteString(" as ")
			sb.WriteString(b.local)
		}
	}
	sb.WriteString(`} from "`)
	sb.WriteString(g.module)
	sb.WriteString(`";`)
	return sb.String()
}

type fileState struct {
	bindings map[string]string
}

// resolveImports assigns one local binding per (module, name) pair and
// groups bindings into one statement per module. The first module to claim
// a local name keeps it; later collisions get a numeric alias.
func resolveImports(t *tokens.Tokens) ([]group, *fileState) {
	st := &fileState{bindings: make(map[string]string)}
	taken := make(map[string]string)
	byModule := make(map[string][]binding)

	t.WalkImports(func(li tokens.LangItem) bool {
		imp, ok := li.(Import)
		if !ok {
			return true
		}
		if _, done := st.bindings[imp.key()]; done {
			return true
		}
		local := imp.local()
		if owner, used := taken[local]; used && owner != imp.key() {
			base := local
			for n := 2; ; n++ {
				local = base + strconv.Itoa(n)
				if _, used := taken[local]; !used {
					break
				}
			}
		}
		taken[local] = imp.key()
		st.bindings[imp.key()] = local
		byModule[imp.Module] = append(byModule[imp.Module], binding{name: imp.Name, local: local})
		return true
	})

	groups := make([]group, 0, len(byModule))
	for module, bindings := range byModule {
		sort.Slice(bindings, func(a, b int) bool {
			return bindings[a].name < bindings[b].name
		})
		groups = append(groups, group{module: module, bindings: bindings})
	}
	sort.Slice(groups, func(a, b int) bool {
		return groups[a].module < groups[b].module
	})
	return groups, st
}
