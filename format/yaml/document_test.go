package yaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/yacchi/docfmt/doctest"
	"github.com/yacchi/docfmt/document"
	"gopkg.in/yaml.v3"
)

func decodeYAML(data []byte) (any, error) {
	var v any
	err := yaml.Unmarshal(data, &v)
	return v, err
}

func TestDocument_Format(t *testing.T) {
	doc := New()
	if doc.Format() != document.FormatYAML {
		t.Errorf("Format() = %v, want %v", doc.Format(), document.FormatYAML)
	}
}

func TestNewParser(t *testing.T) {
	p := NewParser()
	if p.Format() != document.FormatYAML {
		t.Errorf("Format() = %v, want %v", p.Format(), document.FormatYAML)
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	doctest.NewRoundTripTester(t, NewParser(), decodeYAML).Run(
		doctest.Case{
			Name:  "mapping keeps key order",
			Input: "b: 1\na: 2\n",
			Want:  "b: 1\na: 2\n",
		},
		doctest.Case{
			Name:  "nested mapping is reindented",
			Input: "server:\n      port: 8080\n      debug: false\n",
			Want:  "server:\n  port: 8080\n  debug: false\n",
		},
		doctest.Case{
			Name:  "flow mapping becomes block",
			Input: "{a: 1, b: x}",
			Want:  "a: 1\nb: x\n",
		},
		doctest.Case{
			Name:  "comments are dropped",
			Input: "# head\na: 1 # line\n# foot\n",
			Want:  "a: 1\n",
		},
		doctest.Case{
			Name:  "unneeded quotes are dropped",
			Input: "name: 'hello'\n",
			Want:  "name: hello\n",
		},
		doctest.Case{
			Name:  "quotes kept where type would change",
			Input: "port: \"8080\"\nflag: 'true'\n",
			Want:  "port: \"8080\"\nflag: \"true\"\n",
		},
		doctest.Case{
			Name:  "yaml 1.1 boolean words stay quoted",
			Input: "v: 'yes'\nw: on\nx: 'maybe'\n",
			Want:  "v: \"yes\"\nw: \"on\"\nx: maybe\n",
		},
		doctest.Case{
			Name:  "scalar document",
			Input: "hello",
			Want:  "hello\n",
		},
		doctest.Case{
			Name:  "sequences",
			Input: "items: [x, y]\nnested:\n- - 1\n  - 2\n",
		},
		doctest.Case{
			Name:  "literal block",
			Input: "text: |\n  line one\n  line two\n",
		},
		doctest.Case{
			Name:  "anchors and aliases",
			Input: "base: &base\n  a: 1\nderived: *base\n",
		},
		doctest.Case{
			Name:  "explicit document start",
			Input: "---\na: 1\n",
			Want:  "a: 1\n",
		},
	)
}

func TestParse_Empty(t *testing.T) {
	for _, input := range []string{"", "\n", "# only a comment\n"} {
		doc, err := Parse([]byte(input))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		out, err := doc.Marshal()
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(out) != "null\n" {
			t.Errorf("Parse(%q).Marshal() = %q, want %q", input, out, "null\n")
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	doctest.NewRoundTripTester(t, NewParser(), decodeYAML).RunInvalid(
		doctest.Case{Name: "bad indentation", Input: "a:\n  b: 1\n c: 2\n"},
		doctest.Case{Name: "unclosed flow sequence", Input: "a: [1, 2\n"},
		doctest.Case{Name: "tab indentation", Input: "a:\n\tb: 1\n"},
		doctest.Case{Name: "unknown alias", Input: "a: *missing\n"},
		doctest.Case{Name: "two documents", Input: "a: 1\n---\nb: 2\n"},
		doctest.Case{Name: "duplicate key", Input: "a: 1\na: 2\n"},
		doctest.Case{Name: "nested duplicate key", Input: "server:\n  port: 1\n  port: 2\n"},
	)
}

func TestParse_MultipleDocuments(t *testing.T) {
	_, err := Parse([]byte("a: 1\n---\nb: 2\n"))
	if !errors.Is(err, ErrMultipleDocuments) {
		t.Fatalf("Parse() error = %v, want %v", err, ErrMultipleDocuments)
	}
	if !strings.HasPrefix(err.Error(), "failed to parse YAML: ") {
		t.Errorf("Parse() error = %q, want prefix %q", err, "failed to parse YAML: ")
	}
}

func TestNormalize_StripsCommentsAndStyles(t *testing.T) {
	doc, err := Parse([]byte("# c\nlist: [1, 2] # x\nname: \"v\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var walk func(n *yaml.Node)
	walk = func(n *yaml.Node) {
		if n.HeadComment != "" || n.LineComment != "" || n.FootComment != "" {
			t.Errorf("node %q still has comments", n.Value)
		}
		if n.Style&^yaml.TaggedStyle != 0 {
			t.Errorf("node %q still has style %v", n.Value, n.Style)
		}
		for _, c := range n.Content {
			walk(c)
		}
	}
	walk(doc.(*Document).root)
}

func TestParse_DuplicateKeyMessage(t *testing.T) {
	_, err := Parse([]byte("a: 1\na: 2\n"))
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "already defined") {
		t.Errorf("Parse() error = %q, want duplicate key message", err)
	}
}

func TestNormalize_KeepsExplicitTags(t *testing.T) {
	doc, err := Parse([]byte("v: !!str 123\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["v"] != "123" {
		t.Errorf("v = %#v, want string \"123\" (output %q)", got["v"], out)
	}
}
