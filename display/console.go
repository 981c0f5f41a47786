package display

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/ordmap/wbtree"
	"golang.org/x/term"
)

// Class names a renderable piece of output. The color palette of a Config
// maps classes to terminal colors.
type Class int

const (
	// ClassKey colors map keys.
	ClassKey Class = iota
	// ClassValue colors map values.
	ClassValue
	// ClassSize colors subtree size annotations in tree output.
	ClassSize
	// ClassUnbalanced colors keys of weight-violating tree nodes.
	ClassUnbalanced
)

// Config holds rendering parameters.
//
// Colors maps output classes to colors used for display. It may contain just
// a subset of the classes; unmapped classes render unstyled.
type Config struct {
	LineWidth int
	Colors    map[Class]*color.Color
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{Colors: makeDefaultPalette()}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func makeDefaultPalette() map[Class]*color.Color {
	palette := map[Class]*color.Color{
		ClassKey:        color.New(color.FgBlue),
		ClassSize:       color.New(color.FgHiBlack),
		ClassUnbalanced: color.New(color.FgRed),
	}
	return palette
}

// styled outputs s in the color its class is mapped to, or unstyled for
// unmapped classes.
func (config *Config) styled(class Class, w io.Writer, s string) {
	if config.Colors != nil {
		if c, ok := config.Colors[class]; ok {
			c.Fprint(w, s)
			return
		}
	}
	io.WriteString(w, s)
}

// Listing prints the entries of a map as "key: value" pairs in ascending key
// order, wrapped to the configured line width.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties.
func Listing[K cmp.Ordered, V any](m ordmap.Map[K, V], out io.Writer, config *Config) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	line := 0
	first := true
	for key, val := range m.RangeEntry() {
		keystr := fmt.Sprintf("%v", key)
		valstr := fmt.Sprintf("%v", val)
		width := len(keystr) + len(valstr) + 2
		if !first {
			io.WriteString(out, ",")
			line++
			if line+width+1 > config.LineWidth {
				io.WriteString(out, "\n")
				line = 0
			} else {
				io.WriteString(out, " ")
				line++
			}
		}
		first = false
		config.styled(ClassKey, out, keystr)
		io.WriteString(out, ": ")
		config.styled(ClassValue, out, valstr)
		line += width
	}
	if !first {
		io.WriteString(out, "\n")
	}
}

// Tree prints the shape of the map's search tree, one node per line in
// ascending key order, indented by tree depth. Every line shows the key and
// the size of the subtree below it; nodes violating the weight criterion are
// marked with '!'.
//
// If config is nil, a heuristic will create a config from the current
// terminal's properties.
func Tree[K cmp.Ordered, V any](m ordmap.Map[K, V], out io.Writer, config *Config) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	m.InspectNodes(func(info wbtree.NodeInfo[K, V]) bool {
		io.WriteString(out, strings.Repeat("  ", info.Depth))
		keyclass := ClassKey
		if !info.Balanced {
			keyclass = ClassUnbalanced
		}
		config.styled(keyclass, out, fmt.Sprintf("%v", info.Entry.Key))
		config.styled(ClassSize, out, fmt.Sprintf(" #%d", info.Size))
		if !info.Balanced {
			io.WriteString(out, " !")
		}
		io.WriteString(out, "\n")
		return true
	})
}
