package dart

import (
	"sort"
	"strconv"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Import references a name from a Dart library.
type Import struct {
	// Path is the library URI, e.g. "dart:math" or "package:demo/demo.dart".
	Path string
	// Name is the referenced top-level name.
	Name string
	// Alias forces a library prefix; use sites render as alias.Name.
	Alias string
}

var _ tokens.LangItem = Import{}

// Imported references name from the library at path.
func Imported(path, name string) Import {
	return Import{Path: path, Name: name}
}

// WithAlias returns the import under a forced library prefix.
func (i Import) WithAlias(alias string) Import {
	i.Alias = alias
	return i
}

func (i Import) FormatInto(f *format.Formatter, lang tokens.Lang, state any) error {
	prefix := i.Alias
	if st, ok := state.(*fileState); ok {
		if p, ok := st.prefixes[i.Path]; ok {
			prefix = p
		}
	}
	if prefix != "" {
		return f.WriteString(prefix + "." + i.Name)
	}
	return f.WriteString(i.Name)
}

type directive struct {
	path   string
	prefix string
}

func (d directive) render() string {
	if d.prefix != "" {
		return `import "` + d.path + `" as ` + d.prefix + `;`
	}
	return `import "` + d.path + `";`
}

type fileState struct {
	prefixes map[string]string
}

// resolveImports emits one directive per library. Unprefixed libraries
// expose names directly; when a later library would shadow an already
// claimed name it gets a deterministic `_iN` prefix instead.
func resolveImports(t *tokens.Tokens) ([]directive, *fileState) {
	st := &fileState{prefixes: make(map[string]string)}
	claimed := make(map[string]string)
	ordered := make([]string, 0, 8)
	seen := make(map[string]bool)
	prefixed := make(map[string]bool)
	next := 1

	t.WalkImports(func(li tokens.LangItem) bool {
		imp, ok := li.(Import)
		if !ok {
			return true
		}
		if !seen[imp.Path] {
			seen[imp.Path] = true
			ordered = append(ordered, imp.Path)
		}
		if imp.Alias != "" {
			st.prefixes[imp.Path] = imp.Alias
			prefixed[imp.Path] = true
			return true
		}
		if prefixed[imp.Path] {
			return true
		}
		if owner, taken := claimed[imp.Name]; taken && owner != imp.Path {
			prefix := "_i" + strconv.Itoa(next)
			next++
			st.prefixes[imp.Path] = prefix
			prefixed[imp.Path] = true
			return true
		}
		claimed[imp.Name] = imp.Path
		return true
	})

	list := make([]directive, 0, len(ordered))
	for _, path := range ordered {
		list = append(list, directive{path: path, prefix: st.prefixes[path]})
	}
	sort.Slice(list, func(a, b int) bool {
		return list[a].path < list[b].path
	})
	return list, st
}
