// Package template provides the registry of compiled templates that a
// renderer selects from by name.
package template

import (
	"fmt"

	"github.com/stache-go/stache/ast"
)

// Template is a named, compiled template body.
type Template struct {
	Name string        // the template's name, e.g. "user.list"
	Body *ast.ListNode // the instructions making up the template
}

// Registry is a bundle of templates.
type Registry struct {
	Templates []Template
}

// Add adds the given template to the registry.
// Template names must be unique within a registry.
func (r *Registry) Add(t Template) error {
	if t.Name == "" {
		return fmt.Errorf("template requires a name")
	}
	if t.Body == nil {
		return fmt.Errorf("template %q requires a body", t.Name)
	}
	if _, ok := r.Template(t.Name); ok {
		return fmt.Errorf("template %q is already registered", t.Name)
	}
	r.Templates = append(r.Templates, t)
	return nil
}

// Template returns the named template, if present.
func (r *Registry) Template(name string) (Template, bool) {
	for _, t := range r.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
