package fermi

import (
	"io"
	"sort"
	"strings"
)

// Expr = num | name | Range | Add | Sub | Mul | Div | '(' Expr ')'
// Range = num num
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Expr is a parsed expression that can be evaluated by an Engine.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of variable names used in the expression.
	names []string
}

// Parse parses an expression so it can be evaluated against an environment.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	names := make(map[string]bool)
	n, err := parseterm(scan, names, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	default:
		return nil, itShouldNotHaveEndedThisWay(tok, "")
	}
	if n == nil {
		panic("fermi: parsed no expression without error")
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(names)),
	}
	for k := range names {
		ex.names = append(ex.names, k)
	}
	sort.Strings(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression ended by a close paren, the result is nil with no error;
// callers must create an error in contexts where empty subexpressions are
// illegal.
func parseterm(scan *lexer, names map[string]bool, until operator) (*node, error) {
	n, lit, err := parselhs(scan, names)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			// Two adjacent plain numbers denote an uncertainty range. The
			// fold happens where the second number is scanned, so a range
			// binds tighter than any operator. Only a bare number token may
			// be the left bound; a parenthesized constant like (2) does not
			// fold even though its node is a number.
			if !lit {
				return nil, &RangeError{Col: tok.pos, Text: tok.text}
			}
			n = &node{kind: nodeRange, left: n, right: &node{kind: nodeNum, name: tok.text}}
			lit = false
		case tokenIdent, tokenOpen:
			// No implicit multiplication, and no variable or parenthesized
			// range endpoints.
			return nil, &RangeError{Col: tok.pos, Text: tok.text}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, names, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, left: n, right: rhs}
			lit = false
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("fermi: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term, so any encountered token
// must be valid as the start of a subexpression. lit reports whether the
// component was a bare number token, which is the only thing allowed as the
// left bound of an uncertainty range.
func parselhs(scan *lexer, names map[string]bool) (n *node, lit bool, err error) {
	tok, err := scan.next()
	if err != nil {
		return nil, false, err
	}
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, name: tok.text}, true, nil
	case tokenIdent:
		names[tok.text] = true
		return &node{kind: nodeName, name: tok.text}, false, nil
	case tokenOp:
		// No unary operators.
		return nil, false, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
	case tokenOpen:
		rhs, err := parseterm(scan, names, exprprec)
		if err != nil {
			return nil, false, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, false, itShouldNotHaveEndedThisWay(end, tok.text)
		}
		if rhs == nil {
			return nil, false, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return rhs, false, nil
	case tokenClose:
		// An empty subexpression; the caller decides what to do.
		scan.push(tok)
		return nil, false, nil
	case tokenEOF:
		return nil, false, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("fermi: unknown token: " + tok.String())
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is the paren the expression
// should have closed, or the empty string at the top level.
func itShouldNotHaveEndedThisWay(tok lexToken, open string) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open paren that was not closed.
		return &BracketError{Col: tok.pos, Left: open, Right: ""}
	case tokenClose:
		return &BracketError{Col: tok.pos, Left: open, Right: tok.text}
	default:
		panic("fermi: it really should not have ended this way: " + tok.String())
	}
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression, with
// parens grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
