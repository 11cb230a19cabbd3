package render

import (
	"strings"

	"github.com/stache-go/stache/data"
)

// resolve looks up a (possibly dotted) name against the scope chain rooted
// at the given context.
//
// The whole name is tried as a single key first, so a key that happens to
// contain a dot is still reachable.  Failing that, the segment before the
// first dot is resolved through the scope chain and the remaining segments
// are strict map-child lookups, never re-consulting ancestor contexts.
// Every failure mode (missing key, descent into a non-map) resolves to
// Undefined.
func resolve(c *context, name string) data.Value {
	if v := c.lookup(name); !undefined(v) {
		return v
	}
	var dot = strings.IndexByte(name, '.')
	if dot == -1 {
		return data.Undefined{}
	}
	var node = c.lookup(name[:dot])
	if undefined(node) {
		return data.Undefined{}
	}
	for _, seg := range strings.Split(name[dot+1:], ".") {
		var m, ok = node.(data.Map)
		if !ok {
			return data.Undefined{}
		}
		node = m.Key(seg)
		if undefined(node) {
			return data.Undefined{}
		}
	}
	return node
}

func undefined(v data.Value) bool {
	_, ok := v.(data.Undefined)
	return ok
}
