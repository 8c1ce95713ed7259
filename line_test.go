package fermi

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	cases := []struct {
		src  string
		want line
	}{
		// empty
		{"", line{kind: LineEmpty}},
		{"   \t  ", line{kind: LineEmpty}},
		// comments, text after '#' kept verbatim
		{"# revenue model", line{kind: LineComment, comment: " revenue model"}},
		{"#tight", line{kind: LineComment, comment: "tight"}},
		{"#", line{kind: LineComment}},
		{"   # indented", line{kind: LineComment, comment: " indented"}},
		// assignments
		{"x = 10", line{kind: LineAssign, name: "x", expr: "10"}},
		{"x=10", line{kind: LineAssign, name: "x", expr: "10"}},
		{"  spam = 1 + 2  ", line{kind: LineAssign, name: "spam", expr: "1 + 2"}},
		{"_a1 = b * c", line{kind: LineAssign, name: "_a1", expr: "b * c"}},
		{"π = 3.14", line{kind: LineAssign, name: "π", expr: "3.14"}},
		// inline comments are trimmed and removed from the expression
		{"x = 10 # tax free", line{kind: LineAssign, name: "x", expr: "10", comment: "tax free"}},
		{"x = 10#c", line{kind: LineAssign, name: "x", expr: "10", comment: "c"}},
		{"x = # nothing left", line{kind: LineAssign, name: "x", expr: "", comment: "nothing left"}},
	}
	for _, c := range cases {
		got, err := parseLine(c.src)
		if err != nil {
			t.Errorf("parsing %q: unexpected error %v", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("parsing %q: want %+v, got %+v", c.src, c.want, got)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"hello", "expected an assignment"},
		{"= 10", "missing variable name"},
		{"1x = 2", "invalid variable name"},
		{"a b = 2", "invalid variable name"},
		{"x =", "missing expression"},
		{"x =   ", "missing expression"},
		{"x = 1 = 2", `"=" is not allowed`},
	}
	for _, c := range cases {
		_, err := parseLine(c.src)
		if err == nil {
			t.Errorf("parsing %q: want an error", c.src)
			continue
		}
		se := new(SyntaxError)
		if !errors.As(err, &se) {
			t.Errorf("parsing %q: error %#v is not a *SyntaxError", c.src, err)
			continue
		}
		if !strings.Contains(se.Msg, c.msg) {
			t.Errorf("parsing %q: error %q does not mention %q", c.src, err, c.msg)
		}
	}
}

func TestIsIdent(t *testing.T) {
	valid := []string{"x", "_", "_a", "a1", "snake_case", "π"}
	invalid := []string{"", "1x", "a b", "a-b", "x.y", "#x"}
	for _, s := range valid {
		if !isIdent(s) {
			t.Errorf("%q should be a valid identifier", s)
		}
	}
	for _, s := range invalid {
		if isIdent(s) {
			t.Errorf("%q should not be a valid identifier", s)
		}
	}
}
