package fermi

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		err    bool
	}{
		// spaces
		{"", nil, false},
		{" \t \r\n ", nil, false},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, false},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, false},
		{"2.5", []lexToken{{text: "2.5", kind: tokenNum, pos: 1}}, false},
		{"2.", []lexToken{{text: "2.", kind: tokenNum, pos: 1}}, false},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, false},
		// magnitude suffixes
		{"10K", []lexToken{{text: "10K", kind: tokenNum, pos: 1}}, false},
		{"2.7m", []lexToken{{text: "2.7m", kind: tokenNum, pos: 1}}, false},
		{"1.5B", []lexToken{{text: "1.5B", kind: tokenNum, pos: 1}}, false},
		{"2M 3M", []lexToken{{text: "2M", kind: tokenNum, pos: 1}, {text: "3M", kind: tokenNum, pos: 4}}, false},
		// malformed numbers
		{"1.2.3", nil, true},
		{"1e3", nil, true},
		{"2Kx", nil, true},
		{"2K3", nil, true},
		{"1_000", nil, true},
		{".5", nil, true},
		// identifiers
		{"x", []lexToken{{text: "x", kind: tokenIdent, pos: 1}}, false},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, pos: 1}}, false},
		{"πx", []lexToken{{text: "πx", kind: tokenIdent, pos: 1}}, false},
		{"k", []lexToken{{text: "k", kind: tokenIdent, pos: 1}}, false},
		// operators
		{"x+2", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, false},
		{"a--b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}, false},
		{"1 * 2 / 3", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 3}, {text: "2", kind: tokenNum, pos: 5}, {text: "/", kind: tokenOp, pos: 7}, {text: "3", kind: tokenNum, pos: 9}}, false},
		// parens
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, false},
		// erroneous symbols
		{"$", nil, true},
		{"=", nil, true},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}}, true},
		{"1 ? 2", []lexToken{{text: "1", kind: tokenNum, pos: 1}}, true},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var got []lexToken
		var lexErr error
		for {
			tok, err := scan.next()
			if err != nil {
				lexErr = err
				break
			}
			if tok.kind == tokenEOF {
				break
			}
			got = append(got, tok)
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q: want tokens %v, got %v", c.src, c.tokens, got)
		}
		if c.err != (lexErr != nil) {
			t.Errorf("scanning %q: want error %v, got %v", c.src, c.err, lexErr)
		}
		if lexErr != nil {
			le := new(LexError)
			if !errors.As(lexErr, &le) {
				t.Errorf("scanning %q: error %#v is not a *LexError", c.src, lexErr)
			}
		}
	}
}

func TestLexPush(t *testing.T) {
	scan := lex(strings.NewReader("1 + 2"))
	tok, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	scan.push(tok)
	again := scan.must()
	if tok != again {
		t.Errorf("pushed %v but must gave %v", tok, again)
	}
}

func TestValidNumber(t *testing.T) {
	valid := []string{"0", "10", "2.5", "2.", "10K", "10k", "2.7M", "2.7m", "1B", "1b", "0.25K"}
	invalid := []string{"", ".", ".5", "K", "1K2", "1.2.3", "1e3", "2Kx", "1_0", "1.5Mm"}
	for _, s := range valid {
		if !validNumber(s) {
			t.Errorf("%q should be a valid number", s)
		}
	}
	for _, s := range invalid {
		if validNumber(s) {
			t.Errorf("%q should not be a valid number", s)
		}
	}
}
