package render

import "github.com/stache-go/stache/data"

// context is one level of section nesting during a render.  Its focus is the
// data node undotted names resolve against first; the parent links form the
// scope chain back to the document root.  Contexts are created on section
// entry and discarded on exit; a render never mutates one after creation.
type context struct {
	focus  data.Value
	parent *context
}

// enter returns a new innermost context focused on the given node.
func (c *context) enter(focus data.Value) *context {
	return &context{focus: focus, parent: c}
}

// lookup checks the scope chain, innermost out, for a map containing the
// given key.  A context whose focus is not a map contributes no match but
// does not break the chain.
func (c *context) lookup(key string) data.Value {
	for s := c; s != nil; s = s.parent {
		if m, ok := s.focus.(data.Map); ok {
			if val, ok := m[key]; ok {
				return val
			}
		}
	}
	return data.Undefined{}
}
