// Package render applies compiled mustache templates to a data tree.  It
// resolves names through the chain of open sections, decides how many times
// each section repeats, and emits resolved values with optional HTML
// escaping.
package render

import (
	"errors"
	"io"

	"github.com/stache-go/stache/data"
	"github.com/stache-go/stache/template"
)

var ErrTemplateNotFound = errors.New("template not found")

// Renderer provides parameters to template execution.
// At minimum, a registry and a template name are required to render.
type Renderer struct {
	registry *template.Registry // the bundle of compiled templates
	name     string             // name of the template to render
}

// New returns a Renderer that executes the named template from the registry.
func New(registry *template.Registry, name string) Renderer {
	return Renderer{registry, name}
}

// Execute applies the named template to the given data tree and writes the
// output to wr.  The tree is only read; concurrent Executes over the same
// tree are safe provided each has its own writer.
func (t Renderer) Execute(wr io.Writer, obj data.Map) error {
	if t.registry == nil {
		return errors.New("template registry required")
	}
	if t.name == "" {
		return errors.New("template name required")
	}

	var tmpl, ok = t.registry.Template(t.name)
	if !ok {
		return ErrTemplateNotFound
	}
	return Execute(wr, tmpl, obj)
}

// Execute applies a single compiled template to the given data tree and
// writes the output to wr.
func Execute(wr io.Writer, tmpl template.Template, obj data.Map) (err error) {
	state := &state{
		tmplName: tmpl.Name,
		wr:       wr,
		ctx:      &context{focus: obj},
	}
	defer state.errRecover(&err)
	state.walk(tmpl.Body)
	return
}
