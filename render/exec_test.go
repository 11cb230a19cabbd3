package render

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/andreyvit/diff"
	"github.com/stache-go/stache/ast"
	"github.com/stache-go/stache/data"
	"github.com/stache-go/stache/errortypes"
	"github.com/stache-go/stache/template"
)

type d map[string]interface{}

type execTest struct {
	name   string
	tmpl   *ast.ListNode
	output string
	data   map[string]interface{}
	ok     bool
}

// node builders, to keep the test tables readable.

func body(nodes ...ast.Node) *ast.ListNode {
	return &ast.ListNode{Nodes: nodes}
}
func rawtext(s string) ast.Node {
	return &ast.RawTextNode{Text: []byte(s)}
}
func variable(name string) ast.Node {
	return &ast.VariableNode{Name: name}
}
func rawvariable(name string) ast.Node {
	return &ast.VariableNode{Name: name, NoEscape: true}
}
func section(name string, nodes ...ast.Node) ast.Node {
	return &ast.SectionNode{Name: name, Body: body(nodes...)}
}
func inverted(name string, nodes ...ast.Node) ast.Node {
	return &ast.SectionNode{Name: name, Inverted: true, Body: body(nodes...)}
}

func TestBasicExec(t *testing.T) {
	runExecTests(t, []execTest{
		{"empty", body(), "", nil, true},
		{"raw text", body(rawtext("Hello world!")), "Hello world!", nil, true},
		{"variable", body(rawtext("Hello "), variable("name"), rawtext("!")),
			"Hello Ann!", d{"name": "Ann"}, true},
		{"variable escapes", body(variable("x")),
			"a&#32;&lt;b&gt;&#32;&amp;&#32;&#34;c&#34;&#32;&#39;d&#39;", d{"x": `a <b> & "c" 'd'`}, true},
		{"raw variable does not escape", body(rawvariable("x")),
			`a <b> & "c" 'd'`, d{"x": `a <b> & "c" 'd'`}, true},
		{"missing variable emits nothing", body(rawtext("["), variable("ghost"), rawtext("]")),
			"[]", d{"name": "Ann"}, true},
		{"null variable emits nothing", body(rawtext("["), variable("x"), rawtext("]")),
			"[]", d{"x": nil}, true},
		{"empty string emits nothing", body(rawtext("["), variable("x"), rawtext("]")),
			"[]", d{"x": ""}, true},
		{"zero stringifies", body(variable("x")), "0", d{"x": 0}, true},
	})
}

func TestSections(t *testing.T) {
	runExecTests(t, []execTest{
		{"map focuses the section", body(section("user", variable("name"))),
			"Ann", d{"user": d{"name": "Ann"}}, true},
		{"scalar focus falls back to ancestors",
			body(section("title", rawtext("["), variable("title"), rawtext("]"))),
			"[T]", d{"title": "T"}, true},
		{"true renders once", body(section("ok", rawtext("y"))), "y", d{"ok": true}, true},
		{"false suppresses", body(section("ok", rawtext("y"))), "", d{"ok": false}, true},
		{"null suppresses", body(section("ok", rawtext("y"))), "", d{"ok": nil}, true},
		{"empty list suppresses", body(section("xs", rawtext("y"))),
			"", d{"xs": []interface{}{}}, true},
		{"missing name suppresses without error", body(section("ghost", rawtext("y"))),
			"", d{"other": 1}, true},
		{"list iterates", body(section("xs", variable("n"), rawtext(";"))),
			"1;2;3;", d{"xs": []d{{"n": 1}, {"n": 2}, {"n": 3}}}, true},
		{"scalar list repeats per element",
			body(section("xs", rawtext("x"))),
			"xx", d{"xs": []interface{}{"a", "b"}}, true},
		{"iteration sees ancestors", body(section("xs", variable("sep"), variable("n"))),
			",1,2", d{"xs": []d{{"n": 1}, {"n": 2}}, "sep": ","}, true},
		{"nested sections",
			body(section("outer", section("inner", variable("leaf")))),
			"v", d{"outer": d{"inner": d{"leaf": "v"}}}, true},
		{"dotted path inside iteration",
			body(section("users", variable("address.city"), rawtext(" "))),
			"Kyiv Lviv ", d{"users": []d{
				{"address": d{"city": "Kyiv"}},
				{"address": d{"city": "Lviv"}},
			}}, true},
	})
}

func TestInvertedSections(t *testing.T) {
	runExecTests(t, []execTest{
		{"renders on missing", body(inverted("ghost", rawtext("none"))),
			"none", d{}, true},
		{"renders on false", body(inverted("ok", rawtext("none"))),
			"none", d{"ok": false}, true},
		{"renders on empty list", body(inverted("xs", rawtext("none"))),
			"none", d{"xs": []interface{}{}}, true},
		{"suppressed on truthy", body(inverted("ok", rawtext("none"))),
			"", d{"ok": true}, true},
		{"suppressed on non-empty list", body(inverted("xs", rawtext("none"))),
			"", d{"xs": []interface{}{1}}, true},
		{"keeps the current focus", body(inverted("ghost", variable("name"))),
			"Ann", d{"name": "Ann"}, true},
	})
}

// bogusNode is an instruction the walker does not understand.
type bogusNode struct{ ast.Pos }

func (b bogusNode) String() string { return "{{bogus}}" }

func TestWalkErrors(t *testing.T) {
	runExecTests(t, []execTest{
		// the partially rendered prefix remains in the destination
		{"unknown node aborts", body(rawtext("pre"), bogusNode{}), "pre", nil, false},
	})
}

// Entering a section whose name resolves nowhere is a hard failure, unlike
// a falsey value (count zero) which renders nothing and succeeds.
func TestSectionStartUndefined(t *testing.T) {
	var s = &state{
		tmplName: "test",
		wr:       new(bytes.Buffer),
		ctx:      &context{focus: data.Map{"present": data.Bool(false)}},
	}
	var err error
	func() {
		defer s.errRecover(&err)
		s.sectionStart("ghost", 0)
	}()
	if err == nil {
		t.Fatal("expected an error entering an undefined section")
	}
	if !errortypes.IsErrUndefinedSection(err) {
		t.Fatalf("expected ErrUndefinedSection, got %T: %s", err, err)
	}
	if name := errortypes.ToErrUndefinedSection(err).Name(); name != "ghost" {
		t.Errorf("expected failing section name %q, got %q", "ghost", name)
	}
}

func TestLoggerReportsAbort(t *testing.T) {
	var logbuf bytes.Buffer
	Logger = log.New(&logbuf, "", 0)
	defer func() { Logger = nil }()

	var err = Execute(new(bytes.Buffer),
		template.Template{Name: "test", Body: body(bogusNode{})}, nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if logbuf.Len() == 0 {
		t.Error("expected the abort to be reported to the Logger")
	}
}

// userFixture mirrors the canonical users/nested scenario: iterate users
// printing id, the raw name and the escaped name, then reach a nested value
// by dotted path from the root scope.
func userFixture() (*ast.ListNode, d, string) {
	var users []d
	for i := 0; i < 4; i++ {
		users = append(users, d{
			"id":   fmt.Sprintf("%d", i),
			"name": fmt.Sprintf("User %d", i),
		})
	}
	var tmpl = body(
		rawtext("* Users:\r\n"),
		section("users",
			variable("id"),
			rawtext(". "),
			rawvariable("name"),
			rawtext(" ("),
			variable("name"),
			rawtext(")\r\n"),
		),
		rawtext("Nested: "),
		rawvariable("nested.item"),
		rawtext("."),
	)
	var input = d{
		"users":  users,
		"nested": d{"item": "dot notation success"},
	}
	const expected = "* Users:\r\n" +
		"0. User 0 (User&#32;0)\r\n" +
		"1. User 1 (User&#32;1)\r\n" +
		"2. User 2 (User&#32;2)\r\n" +
		"3. User 3 (User&#32;3)\r\n" +
		"Nested: dot notation success."
	return tmpl, input, expected
}

func TestUserFixture(t *testing.T) {
	var tmpl, input, expected = userFixture()
	runExecTests(t, []execTest{
		{"user fixture", tmpl, expected, input, true},
	})
}

// A data tree is never written during a render, so independent renders of
// the same tree may run concurrently with their own writers.
func TestConcurrentExec(t *testing.T) {
	var tmpl, input, expected = userFixture()
	var obj = data.New(map[string]interface{}(input)).(data.Map)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var b bytes.Buffer
			if err := Execute(&b, template.Template{Name: "fixture", Body: tmpl}, obj); err != nil {
				t.Errorf("unexpected error: %s", err)
				return
			}
			if b.String() != expected {
				t.Errorf("unexpected output:\n%v", diff.LineDiff(expected, b.String()))
			}
		}()
	}
	wg.Wait()
}

func runExecTests(t *testing.T, tests []execTest) {
	b := new(bytes.Buffer)
	for _, test := range tests {
		var registry = template.Registry{}
		if err := registry.Add(template.Template{Name: test.name, Body: test.tmpl}); err != nil {
			t.Errorf("%s: add error: %s", test.name, err)
			continue
		}

		b.Reset()
		var datamap data.Map
		if test.data != nil {
			datamap = data.New(test.data).(data.Map)
		}
		err := New(&registry, test.name).Execute(b, datamap)
		switch {
		case !test.ok && err == nil:
			t.Errorf("%s: expected error; got none", test.name)
			continue
		case test.ok && err != nil:
			t.Errorf("%s: unexpected execute error: %s", test.name, err)
			continue
		case !test.ok && err != nil:
			// expected error, got one
		}
		result := b.String()
		if result != test.output {
			t.Errorf("%s: did not get expected results:\n%v",
				test.name, diff.LineDiff(test.output, result))
		}
	}
}
