package render

import (
	"github.com/alexisbeaulieu97/richterm/internal/style"
	"github.com/alexisbeaulieu97/richterm/internal/ui"
)

// Tree renders a labeled hierarchy with box-drawing guides. Children
// render at the same width budget as the parent; the first line of each
// child is prefixed with a branch glyph and subsequent lines with the
// matching continuation guide.
type Tree struct {
	label      Content
	children   []*Tree
	style      *style.Style
	guideStyle *style.Style
}

// NewTree creates a tree rooted at label.
func NewTree(label any) *Tree {
	dim := true
	return &Tree{
		label:      NormalizeContent(label),
		guideStyle: &style.Style{Dim: &dim},
	}
}

// WithStyle styles the node's label line.
func (t *Tree) WithStyle(st style.Style) *Tree {
	t.style = &st
	return t
}

// WithGuideStyle styles the branch and continuation glyphs.
func (t *Tree) WithGuideStyle(st style.Style) *Tree {
	t.guideStyle = &st
	return t
}

// Add appends a child node and returns it for chaining.
func (t *Tree) Add(label any) *Tree {
	child := NewTree(label)
	child.style = t.style
	child.guideStyle = t.guideStyle
	t.children = append(t.children, child)
	return child
}

// AddTree appends an existing subtree.
func (t *Tree) AddTree(child *Tree) *Tree {
	t.children = append(t.children, child)
	return t
}

// RenderLines implements ui.Renderable.
func (t *Tree) RenderLines(opts ui.Options) []string {
	reset := style.Reset
	guideANSI := sgr(t.guideStyle)

	var lines []string
	for _, label := range t.label.Lines(opts) {
		lines = append(lines, styled(label, sgr(t.style), reset))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	for i, child := range t.children {
		last := i == len(t.children)-1
		branch, guide := "├── ", "│   "
		if last {
			branch, guide = "└── ", "    "
		}

		for j, line := range child.RenderLines(opts) {
			prefix := guide
			if j == 0 {
				prefix = branch
			}
			lines = append(lines, styled(prefix, guideANSI, reset)+line)
		}
	}
	return lines
}
