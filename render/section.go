package render

import "github.com/stache-go/stache/data"

// sectionCount reports how many times a section guarded by the given value
// renders: the element count for lists, zero for falsey values (including
// Undefined), one for any other present value.  Inverted sections are the
// caller's interpretation of a zero count, not computed here.
func sectionCount(v data.Value) int {
	if list, ok := v.(data.List); ok {
		return len(list)
	}
	if !v.Truthy() {
		return 0
	}
	return 1
}

// iterationFocus returns the data node iteration i of a section focuses on:
// element i for lists, the value itself otherwise.
func iterationFocus(v data.Value, i int) data.Value {
	if list, ok := v.(data.List); ok {
		return list.Index(i)
	}
	return v
}
