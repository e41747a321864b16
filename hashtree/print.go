package hashtree

import (
	"fmt"
	"io"
)

// PrintOptions configures Fprint output.
type PrintOptions struct {
	// ShowValues appends " = value" after each key.
	ShowValues bool

	// MaxDepth limits how many levels below the root are rendered.
	// 0 means unlimited.
	MaxDepth int

	// ASCII replaces box-drawing characters with ASCII equivalents.
	ASCII bool
}

// DefaultPrintOptions returns the options used by the treectl CLI.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{ShowValues: true}
}

// glyphs are the per-style branch markers: [branch, lastBranch, pipe, gap].
var (
	unicodeGlyphs = [4]string{"├── ", "└── ", "│   ", "    "}
	asciiGlyphs   = [4]string{"|-- ", "`-- ", "|   ", "    "}
)

// Fprint renders the tree as indented text, one node per line, children in
// stored order. An empty tree renders nothing.
func (t *Tree[K, V]) Fprint(w io.Writer, opts PrintOptions) error {
	if t.root == nilRef {
		return nil
	}
	g := &unicodeGlyphs
	if opts.ASCII {
		g = &asciiGlyphs
	}
	if err := t.printNode(w, t.root, opts); err != nil {
		return err
	}
	return t.printChildren(w, t.root, "", 1, opts, g)
}

func (t *Tree[K, V]) printChildren(w io.Writer, i ref, prefix string, depth int, opts PrintOptions, g *[4]string) error {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return nil
	}
	children := t.nodes.At(i).children
	for k, c := range children {
		last := k == len(children)-1
		branch, next := g[0], g[2]
		if last {
			branch, next = g[1], g[3]
		}
		if _, err := io.WriteString(w, prefix+branch); err != nil {
			return err
		}
		if err := t.printNode(w, c, opts); err != nil {
			return err
		}
		if err := t.printChildren(w, c, prefix+next, depth+1, opts, g); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree[K, V]) printNode(w io.Writer, i ref, opts PrintOptions) error {
	n := t.nodes.At(i)
	if opts.ShowValues {
		_, err := fmt.Fprintf(w, "%v = %v\n", n.key, n.value)
		return err
	}
	_, err := fmt.Fprintf(w, "%v\n", n.key)
	return err
}
