package jenkins

import (
	"fmt"
	"strings"
)

// TreeQueryParam is the tree query parameter the server accepts to return
// only a subset of an object's fields. It renders to the compact grammar
// field[sub1,sub2] with an optional {start,end} range suffix on
// array-valued fields, the range being half-open. Values are immutable
// once built and safe to share across requests.
//
// See https://www.cloudbees.com/blog/taming-jenkins-json-api-depth-and-tree
type TreeQueryParam struct {
	keyname string
	subkeys []TreeQueryParam
	start   int64
	end     int64
	ranged  bool
}

func (t TreeQueryParam) String() string {
	var b strings.Builder

	b.WriteString(t.keyname)

	if len(t.subkeys) > 0 {
		if t.keyname != "" {
			b.WriteString("[")
		}

		for i, sub := range t.subkeys {
			if i > 0 {
				b.WriteString(",")
			}

			b.WriteString(sub.String())
		}

		if t.keyname != "" {
			b.WriteString("]")
		}
	}

	if t.ranged {
		fmt.Fprintf(&b, "{%d,%d}", t.start, t.end)
	}

	return b.String()
}

// TreeBuilder assembles a TreeQueryParam. Children render in append
// order; the server cares about neither order nor validity of field
// names, unknown fields are simply a server-side runtime error.
type TreeBuilder struct {
	tree TreeQueryParam
}

// NewTree returns a builder for an unnamed root group whose children are
// comma-joined without a prefix.
func NewTree() *TreeBuilder {
	return &TreeBuilder{}
}

// NewTreeObject returns a builder for a named node.
func NewTreeObject(name string) *TreeBuilder {
	return &TreeBuilder{
		tree: TreeQueryParam{
			keyname: name,
		},
	}
}

// WithField appends a leaf field to the node.
func (b *TreeBuilder) WithField(name string) *TreeBuilder {
	b.tree.subkeys = append(b.tree.subkeys, TreeQueryParam{keyname: name})
	return b
}

// WithSubtree appends a nested node to the node.
func (b *TreeBuilder) WithSubtree(sub *TreeBuilder) *TreeBuilder {
	b.tree.subkeys = append(b.tree.subkeys, sub.Build())
	return b
}

// WithRange constrains an array-valued node to the half-open interval
// [start, end).
func (b *TreeBuilder) WithRange(start, end int64) *TreeBuilder {
	b.tree.start = start
	b.tree.end = end
	b.tree.ranged = true

	return b
}

// Build finalizes the query parameter.
func (b *TreeBuilder) Build() TreeQueryParam {
	return b.tree
}
