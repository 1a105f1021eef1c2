package format

import "strings"

// Config controls how indentation levels are rendered.
type Config struct {
	// IndentWidth is the number of spaces per indentation level.
	// Ignored when UseTabs is set.
	IndentWidth int
	UseTabs     bool
}

func (c Config) withDefaults() Config {
	if c.IndentWidth == 0 {
		c.IndentWidth = 4
	}
	return c
}

// unit returns the text emitted for a single indentation level.
func (c Config) unit() string {
	if c.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", c.IndentWidth)
}
