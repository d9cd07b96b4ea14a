/*
Package formatter renders the materialized structure of a segment tree for
humans, either as an indented console outline or as an HTML fragment.

Output is meant for debugging and inspection; there is no way to read it back.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package formatter

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}

// ErrNilTree is returned when a formatter is called without a tree.
var ErrNilTree = errors.New("formatter: tree is nil")
