package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/richterm/internal/style"
)

func TestTree(t *testing.T) {
	plain := func(tr *Tree) []string {
		tr.guideStyle = nil
		for _, child := range tr.children {
			child.guideStyle = nil
		}
		return tr.RenderLines(plainOpts(80))
	}

	t.Run("root label comes first", func(t *testing.T) {
		root := NewTree("root")
		lines := plain(root)
		require.Len(t, lines, 1)
		assert.Equal(t, "root", lines[0])
	})

	t.Run("middle children use tee guides and the last an elbow", func(t *testing.T) {
		root := NewTree("root")
		root.Add("a")
		root.Add("b")
		root.Add("c")
		lines := plain(root)
		require.Len(t, lines, 4)
		assert.Equal(t, "├── a", lines[1])
		assert.Equal(t, "├── b", lines[2])
		assert.Equal(t, "└── c", lines[3])
	})

	t.Run("nested children extend their parent guides", func(t *testing.T) {
		root := NewTree("root")
		a := root.Add("a")
		a.guideStyle = nil
		a.Add("a1")
		root.Add("b")
		lines := plain(root)
		require.Len(t, lines, 4)
		assert.Equal(t, "├── a", lines[1])
		assert.Equal(t, "│   └── a1", lines[2])
		assert.Equal(t, "└── b", lines[3])
	})

	t.Run("last childs subtree continues with spaces", func(t *testing.T) {
		root := NewTree("root")
		a := root.Add("a")
		a.guideStyle = nil
		a.Add("a1")
		lines := plain(root)
		require.Len(t, lines, 3)
		assert.Equal(t, "└── a", lines[1])
		assert.Equal(t, "    └── a1", lines[2])
	})

	t.Run("guides carry the guide style", func(t *testing.T) {
		root := NewTree("root").WithGuideStyle(style.ParseStyle("red"))
		root.Add("a")
		lines := root.RenderLines(plainOpts(80))
		assert.Contains(t, lines[1], "\x1b[31m└── \x1b[0m")
	})

	t.Run("node style applies to the label", func(t *testing.T) {
		root := NewTree("root").WithStyle(style.ParseStyle("bold"))
		lines := root.RenderLines(plainOpts(80))
		assert.Equal(t, "\x1b[1mroot\x1b[0m", lines[0])
	})

	t.Run("added subtree keeps its own styling", func(t *testing.T) {
		sub := NewTree("sub")
		sub.guideStyle = nil
		root := NewTree("root")
		root.AddTree(sub)
		lines := plain(root)
		require.Len(t, lines, 2)
		assert.Equal(t, "└── sub", lines[1])
	})
}
