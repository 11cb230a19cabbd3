package stache

import (
	"io"

	"github.com/stache-go/stache/data"
	"github.com/stache-go/stache/render"
	"github.com/stache-go/stache/template"
)

// Render applies the compiled template to obj and writes the output to wr.
func Render(wr io.Writer, t template.Template, obj data.Map) error {
	return render.Execute(wr, t, obj)
}

// RenderNamed renders the named template from the registry.
func RenderNamed(wr io.Writer, registry *template.Registry, name string, obj data.Map) error {
	return render.New(registry, name).Execute(wr, obj)
}
