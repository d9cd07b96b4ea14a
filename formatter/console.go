package formatter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Console writes an indented outline of all materialized nodes of tree to w,
// one node per line:
//
//	[0..7] 12
//	  [0..3] 5
//	    1: 5
//
// Inner nodes and leaves are colored differently (colors are switched off
// automatically if w is not a terminal, see package fatih/color). If config is
// nil, DefaultConfig is used.
func Console[T any](w io.Writer, tree *segtree.Tree[T], config *Config) error {
	if tree == nil {
		return ErrNilTree
	}
	config = config.normalized()
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	err := tree.Walk(func(seg segtree.Segment[T]) error {
		indent := strings.Repeat(" ", seg.Depth*config.Indent)
		var head string
		if seg.IsLeaf() {
			head = fmt.Sprintf("%d: ", seg.Lo)
		} else {
			head = fmt.Sprintf("[%d..%d] ", seg.Lo, seg.Hi)
		}
		label := config.Label(seg.Value)
		if config.LineWidth > 0 {
			label = truncate(label, config.LineWidth-len(indent)-len(head), config.Context)
		}
		c := config.InnerColor
		if seg.IsLeaf() {
			c = config.LeafColor
		}
		if _, err := io.WriteString(w, indent); err != nil {
			return err
		}
		if _, err := c.Fprint(w, head); err != nil {
			return err
		}
		_, err := io.WriteString(w, label+"\n")
		return err
	})
	if err != nil {
		tracer().Errorf("console output of segment tree failed: %v", err)
	}
	return err
}

// truncate shortens s to at most width display positions, marking a cut with
// an ellipsis.
func truncate(s string, width int, context *uax11.Context) string {
	if width <= 0 {
		return ""
	}
	if uax11.StringWidth(grapheme.StringFromString(s), context) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := uax11.StringWidth(grapheme.StringFromString(string(r)), context)
		if used+rw > width-1 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	b.WriteString("…")
	return b.String()
}
