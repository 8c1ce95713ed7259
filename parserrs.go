package fermi

import "strconv"

// OperatorError is an error indicating an operator in a position where the
// parser cannot accept it, e.g. at the start of a (sub)expression. It
// implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected the start of a term at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" where a value was expected")
	}
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parens in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the paren.
	Col int
	// Left is the opening paren, if any.
	Left string
	// Right is the mismatched closing paren, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// RangeError is an error indicating an illegal juxtaposition of terms.
// Exactly two plain numbers may stand side by side, forming an uncertainty
// range; anything else next to a term is an error. It implements InputError.
type RangeError struct {
	// Col is the position of the offending token.
	Col int
	// Text is the offending token.
	Text string
}

func (err *RangeError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after a term: only two plain numbers may stand side by side, as an uncertainty range")
}

func (err *RangeError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from an invalid expression implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*RangeError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
