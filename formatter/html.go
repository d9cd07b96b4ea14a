package formatter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes the materialized structure of tree to w as a nested list:
//
//	<ul class="segtree">
//	  <li data-lo="0" data-hi="7">12<ul>…</ul></li>
//	</ul>
//
// Leaves carry class "leaf". Line width and colors of config are ignored.
func HTML[T any](w io.Writer, tree *segtree.Tree[T], config *Config) error {
	if tree == nil {
		return ErrNilTree
	}
	config = config.normalized()
	root := element(atom.Ul, html.Attribute{Key: "class", Val: "segtree"})
	lists := []*html.Node{root} // lists[d] receives the items of depth d
	err := tree.Walk(func(seg segtree.Segment[T]) error {
		if seg.Depth >= len(lists) {
			return fmt.Errorf("formatter: walk skipped a level at [%d..%d]", seg.Lo, seg.Hi)
		}
		attrs := []html.Attribute{
			{Key: "data-lo", Val: strconv.Itoa(seg.Lo)},
			{Key: "data-hi", Val: strconv.Itoa(seg.Hi)},
		}
		if seg.IsLeaf() {
			attrs = append(attrs, html.Attribute{Key: "class", Val: "leaf"})
		}
		li := element(atom.Li, attrs...)
		li.AppendChild(&html.Node{Type: html.TextNode, Data: config.Label(seg.Value)})
		lists[seg.Depth].AppendChild(li)
		lists = lists[:seg.Depth+1]
		if !seg.IsLeaf() {
			ul := element(atom.Ul)
			li.AppendChild(ul)
			lists = append(lists, ul)
		}
		return nil
	})
	if err != nil {
		tracer().Errorf("HTML output of segment tree failed: %v", err)
		return err
	}
	return html.Render(w, root)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
