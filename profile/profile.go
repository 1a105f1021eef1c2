package profile

import (
	"errors"
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/udoprog/genco-sub000/format"
)

var (
	// ErrMissing indicates that no manifest exists at the given path.
	ErrMissing = errors.New("profile: manifest not found")
	// ErrIndentRange indicates an indent width outside the supported range.
	ErrIndentRange = errors.New("profile: indent width out of range")
)

// LangProfile overrides formatting policy for one target language.
type LangProfile struct {
	// Indent is the spaces-per-level override. Zero keeps the language
	// default.
	Indent int `toml:"indent"`
	// Tabs switches indentation to tab characters.
	Tabs bool `toml:"tabs"`
	// Package is the default package or namespace for file assembly.
	Package string `toml:"package"`
}

// Profile is a loaded codegen.toml manifest.
type Profile struct {
	// Newline is the line terminator for emitted files; "\n" when unset.
	Newline string `toml:"newline"`
	// Langs maps language keys ("rust", "go", "java", ...) to overrides.
	Langs map[string]LangProfile `toml:"lang"`
}

// Load reads and validates the manifest at path.
func Load(path string) (Profile, error) {
	var p Profile
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Profile{}, fmt.Errorf("%w: %s", ErrMissing, path)
		}
		return Profile{}, err
	}
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return Profile{}, fmt.Errorf("profile: decode %s: %w", path, err)
	}
	for key, lp := range p.Langs {
		if _, err := safecast.Conv[uint8](lp.Indent); err != nil {
			return Profile{}, fmt.Errorf("%w: [lang.%s] indent = %d", ErrIndentRange, key, lp.Indent)
		}
	}
	return p, nil
}

// Config applies the overrides for the given language key on top of def,
// typically the language's DefaultConfig.
func (p Profile) Config(lang string, def format.Config) format.Config {
	lp, ok := p.Langs[lang]
	if !ok {
		return def
	}
	if lp.Tabs {
		def.UseTabs = true
		def.IndentWidth = 0
	} else if lp.Indent > 0 {
		def.UseTabs = false
		def.IndentWidth = lp.Indent
	}
	return def
}

// Package returns the configured default package or namespace for the
// given language key, or the empty string.
func (p Profile) Package(lang string) string {
	return p.Langs[lang].Package
}
