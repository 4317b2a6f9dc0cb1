package visual

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/dvector/avl"
	"golang.org/x/term"
)

// Config controls console output.
type Config struct {
	LineWidth int  // lines are cut off after LineWidth runes; 0 means unlimited
	Colored   bool // emit color escape sequences
}

// ConfigFromTerminal creates a configuration from the properties of the
// terminal attached to stdout. If stdout is not interactive, output is plain
// and 80 columns wide.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 10 {
			config.LineWidth = w
		}
		config.Colored = !color.NoColor
	}
	tracer().P("visual", "console").Infof("setting line length to %d, colored=%v",
		config.LineWidth, config.Colored)
	return config
}

// Palette holds the colors for the different kinds of nodes.
type Palette struct {
	Balanced *color.Color
	Leaning  *color.Color
	Broken   *color.Color
	Leaf     *color.Color
	Guide    *color.Color
}

// DefaultPalette returns the default node colors.
func DefaultPalette() *Palette {
	return &Palette{
		Balanced: color.New(color.FgGreen),
		Leaning:  color.New(color.FgYellow),
		Broken:   color.New(color.FgRed, color.Bold),
		Leaf:     color.New(color.FgCyan),
		Guide:    color.New(color.FgHiBlack),
	}
}

func (p *Palette) enable(on bool) {
	for _, c := range []*color.Color{p.Balanced, p.Leaning, p.Broken, p.Leaf, p.Guide} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Printer renders trees to a console.
type Printer struct {
	config  *Config
	palette *Palette
}

// NewPrinter creates a printer. If config is nil, a configuration is derived
// from the current terminal. If palette is nil, DefaultPalette is used.
func NewPrinter(config *Config, palette *Palette) *Printer {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	palette.enable(config.Colored)
	return &Printer{config: config, palette: palette}
}

// Fprint writes a rendering of tree to w.
func Fprint[T any](p *Printer, w io.Writer, tree *avl.Tree[T]) error {
	if tree.IsEmpty() {
		_, err := p.palette.Guide.Fprintln(w, "<empty>")
		return err
	}
	var err error
	for _, r := range collect(tree) {
		indent := strings.Repeat("  ", r.depth)
		label := p.clip(r.label, len(indent))
		if _, err = p.palette.Guide.Fprint(w, indent); err != nil {
			break
		}
		if _, err = p.colorFor(r).Fprint(w, label); err != nil {
			break
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			break
		}
	}
	return err
}

type row struct {
	label   string
	depth   int
	leaf    bool
	balance int
}

// collect lists the nodes of tree right subtree first, the order of avl's Dump.
func collect[T any](tree *avl.Tree[T]) []row {
	var rows []row
	var visit func(n avl.Node[T], depth int)
	visit = func(n avl.Node[T], depth int) {
		r := row{label: avl.NodeLabel(n), depth: depth, leaf: n.IsLeaf()}
		rows = append(rows, r)
		if b, ok := n.(*avl.Branch[T]); ok {
			rows[len(rows)-1].balance = b.Balance()
			visit(b.Right(), depth+1)
			visit(b.Left(), depth+1)
		}
	}
	visit(tree.Root(), 0)
	return rows
}

func (p *Printer) colorFor(r row) *color.Color {
	switch {
	case r.leaf:
		return p.palette.Leaf
	case r.balance == 0:
		return p.palette.Balanced
	case r.balance == 1 || r.balance == -1:
		return p.palette.Leaning
	}
	return p.palette.Broken
}

// clip cuts label so that it fits into the line after an indent of
// indent runes.
func (p *Printer) clip(label string, indent int) string {
	if p.config.LineWidth <= 0 {
		return label
	}
	room := p.config.LineWidth - indent
	runes := []rune(label)
	if len(runes) <= room {
		return label
	}
	if room <= 1 {
		return "…"
	}
	return string(runes[:room-1]) + "…"
}
