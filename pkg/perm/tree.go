package perm

import (
	"bytes"
	"context"
	"fmt"
	"math/big"

	"github.com/goccy/go-graphviz"
)

// Tree is the decision tree behind Of: every edge from a node picks one of
// the remaining symbols as the next element, so each root-to-leaf path spells
// one permutation.
//
// When built with distinct set, sibling branches that pick an equal symbol are
// collapsed and the leaves correspond to distinct arrangements only.
//
// Tree is immutable after construction.
type Tree struct {
	root     *treeNode
	labels   []string
	distinct bool
}

type treeNode struct {
	label    string
	children []*treeNode
}

// NewTree builds the permutation tree for labels.
//
// The tree has n! leaves for n labels, or the multinomial count of the label
// multiset when distinct is true. The labels slice is not modified.
func NewTree(labels []string, distinct bool) *Tree {
	root := &treeNode{}
	grow(root, labels, distinct)
	return &Tree{
		root:     root,
		labels:   append([]string(nil), labels...),
		distinct: distinct,
	}
}

func grow(n *treeNode, remaining []string, distinct bool) {
	seen := make(map[string]bool, len(remaining))
	for i, label := range remaining {
		if distinct {
			if seen[label] {
				continue
			}
			seen[label] = true
		}
		child := &treeNode{label: label}
		rest := make([]string, 0, len(remaining)-1)
		rest = append(rest, remaining[:i]...)
		rest = append(rest, remaining[i+1:]...)
		grow(child, rest, distinct)
		n.children = append(n.children, child)
	}
}

// Leaves returns the number of complete arrangements in the tree.
func (t *Tree) Leaves() int {
	if t.root == nil {
		return 0
	}
	return countLeaves(t.root)
}

func countLeaves(n *treeNode) int {
	if len(n.children) == 0 {
		return 1
	}
	total := 0
	for _, c := range n.children {
		total += countLeaves(c)
	}
	return total
}

// Size returns the total number of nodes, root included.
func (t *Tree) Size() int {
	if t.root == nil {
		return 0
	}
	return countNodes(t.root)
}

func countNodes(n *treeNode) int {
	total := 1
	for _, c := range n.children {
		total += countNodes(c)
	}
	return total
}

// Paths returns the arrangement spelled by each root-to-leaf path, in tree order.
func (t *Tree) Paths() [][]string {
	if t.root == nil {
		return nil
	}
	var out [][]string
	var walk func(n *treeNode, prefix []string)
	walk = func(n *treeNode, prefix []string) {
		if len(n.children) == 0 {
			out = append(out, append([]string(nil), prefix...))
			return
		}
		for _, c := range n.children {
			walk(c, append(prefix, c.label))
		}
	}
	walk(t.root, make([]string, 0, len(t.labels)))
	return out
}

// maxLeaves bounds the trees worth rendering; beyond it the graph is unreadable.
var maxLeaves = big.NewInt(720)

// TooLarge reports whether a tree over n labels would exceed the render limit.
func TooLarge(n int) bool {
	return BigFactorial(n).Cmp(maxLeaves) > 0
}

// ToDOT returns a Graphviz DOT representation of the tree.
//
// The root is drawn as a point, interior nodes as ellipses labeled with the
// symbol chosen at that step, and leaves as rounded boxes labeled with the
// full arrangement they complete.
func (t *Tree) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph Permutations {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if t.root != nil {
		buf.WriteString("  n0 [label=\"\", shape=point];\n")
		next := 1
		for _, c := range t.root.children {
			fmt.Fprintf(&buf, "  n0 -> n%d;\n", next)
			next = writeDOTNode(&buf, c, next, c.label)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n *treeNode, id int, path string) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	if len(n.children) == 0 {
		fmt.Fprintf(buf, "  %s [label=%q, shape=box, style=\"filled,rounded\"];\n", nodeID, path)
		return next
	}

	fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", nodeID, n.label)
	for _, c := range n.children {
		fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(buf, c, next, path+c.label)
	}
	return next
}

// RenderSVG renders the tree as an SVG image through Graphviz.
//
// Errors are returned if Graphviz cannot initialize, the DOT is malformed,
// or rendering fails. All errors are wrapped with fmt.Errorf and %w.
func (t *Tree) RenderSVG(ctx context.Context) ([]byte, error) {
	dot := t.ToDOT()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
