/*
Package stache resolves named references against a hierarchical data tree and
renders compiled mustache templates with that resolution.

Templates are instruction sequences (see the ast package); this module does
not parse template text.  A rendering host builds the instructions, registers
them, and renders against a data tree:

  var registry template.Registry
  registry.Add(template.Template{
      Name: "user.row",
      Body: &ast.ListNode{Nodes: []ast.Node{
          &ast.VariableNode{Name: "name"},
          &ast.RawTextNode{Text: []byte(" lives in ")},
          &ast.VariableNode{Name: "address.city"},
      }},
  })

  var obj, _ = data.FromYAML(src)
  err := stache.RenderNamed(w, &registry, "user.row", obj)

Name resolution searches the chain of open sections innermost-first; a dotted
name resolves its first segment through that chain and the rest by direct
descent.  Sections repeat per array element, render once for other truthy
values, and not at all for absent or falsey ones; inverted sections render
exactly when their value is absent or falsey.
*/
package stache
