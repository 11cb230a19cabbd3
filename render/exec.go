package render

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"runtime/debug"

	"github.com/stache-go/stache/ast"
	"github.com/stache-go/stache/data"
	"github.com/stache-go/stache/errortypes"
)

// Logger, if set, receives a report whenever a render aborts.
var Logger *log.Logger

// state represents the state of an execution.
type state struct {
	tmplName string
	wr       io.Writer
	node     ast.Node // current node, for errors
	ctx      *context // innermost section context
}

// at marks the state to be on node n, for error reporting.
func (s *state) at(node ast.Node) {
	s.node = node
}

// errorf formats the error and terminates processing.
func (s *state) errorf(format string, args ...interface{}) {
	format = fmt.Sprintf("template %s: %v: %s", s.tmplName, s.node, format)
	panic(fmt.Errorf(format, args...))
}

// errRecover is the handler that turns panics into returns from the top
// level of Execute.
func (s *state) errRecover(errp *error) {
	if e := recover(); e != nil {
		switch e := e.(type) {
		case runtime.Error:
			*errp = fmt.Errorf("template %s: %v\n%v", s.tmplName, e, string(debug.Stack()))
		case error:
			*errp = e
		default:
			*errp = fmt.Errorf("template %s: %v", s.tmplName, e)
		}
		s.formattingError(*errp)
	}
}

// formattingError is the best-effort cleanup hook for an aborted render.
// Resolution holds no resources, so reporting is all there is to do.  The
// destination writer may have received a partially rendered prefix.
func (s *state) formattingError(err error) {
	if Logger != nil {
		Logger.Printf("render aborted: %s", err)
	}
}

// walk recursively goes through each instruction node and writes the output.
func (s *state) walk(node ast.Node) {
	s.at(node)
	switch node := node.(type) {
	case *ast.ListNode:
		for _, node := range node.Nodes {
			s.walk(node)
		}
	case *ast.RawTextNode:
		s.text(node.Text)
	case *ast.VariableNode:
		s.arg(node.Name, !node.NoEscape)
	case *ast.SectionNode:
		s.section(node)
	default:
		s.errorf("unknown node: %T", node)
	}
}

// text appends raw template text to the output verbatim.
func (s *state) text(text []byte) {
	if _, err := s.wr.Write(text); err != nil {
		s.errorf("%s", err)
	}
}

// arg resolves a variable reference and emits its string form.  A name that
// doesn't resolve, or a value whose string form is empty, emits nothing;
// neither is an error.
func (s *state) arg(name string, escape bool) {
	var v = resolve(s.ctx, name)
	switch v.(type) {
	case data.Undefined, data.Null:
		return
	}
	var str = v.String()
	if str == "" {
		return
	}
	if escape {
		htmlEscapeString(s.wr, str)
	} else if _, err := io.WriteString(s.wr, str); err != nil {
		s.errorf("%s", err)
	}
}

func (s *state) section(node *ast.SectionNode) {
	var count = s.sectionTest(node.Name)
	if node.Inverted {
		if count == 0 {
			s.walk(node.Body)
		}
		return
	}
	for i := 0; i < count; i++ {
		s.at(node)
		s.sectionStart(node.Name, i)
		s.walk(node.Body)
		s.ctx = s.ctx.parent
	}
}

// sectionTest reports the repeat count for the named section.  A missing
// name, a falsey value, and an empty list are indistinguishable here.
func (s *state) sectionTest(name string) int {
	return sectionCount(resolve(s.ctx, name))
}

// sectionStart enters iteration i of the named section, binding a new
// innermost context before any of the body's names resolve.  Entering a
// section whose name has no value anywhere in the tree aborts the render;
// that differs from a falsey value, which renders the section zero times.
func (s *state) sectionStart(name string, i int) {
	var v = resolve(s.ctx, name)
	if undefined(v) {
		panic(errortypes.NewErrUndefinedSectionf(name,
			"template %s: %v: section %q has no value to enter", s.tmplName, s.node, name))
	}
	s.ctx = s.ctx.enter(iterationFocus(v, i))
}

var (
	htmlQuot  = []byte("&#34;") // shorter than "&quot;"
	htmlApos  = []byte("&#39;") // shorter than "&apos;" and apos was not in HTML until HTML5
	htmlAmp   = []byte("&amp;")
	htmlLt    = []byte("&lt;")
	htmlGt    = []byte("&gt;")
	htmlSpace = []byte("&#32;")
)

// htmlEscapeString is a modified version of the stdlib HTMLEscape routine
// that escapes a string without making copies.  Spaces escape to a numeric
// entity as well, which keeps escaped values whole inside unquoted HTML
// attributes.
func htmlEscapeString(w io.Writer, str string) {
	last := 0
	for i := 0; i < len(str); i++ {
		var html []byte
		switch str[i] {
		case '"':
			html = htmlQuot
		case '\'':
			html = htmlApos
		case '&':
			html = htmlAmp
		case '<':
			html = htmlLt
		case '>':
			html = htmlGt
		case ' ':
			html = htmlSpace
		default:
			continue
		}
		io.WriteString(w, str[last:i])
		w.Write(html)
		last = i + 1
	}
	io.WriteString(w, str[last:])
}
