package fermi

import (
	"strconv"
	"strings"
	"unicode"
)

// LineKind tags the structural classification of one model line.
type LineKind int8

const (
	// LineEmpty is a blank or all-whitespace line.
	LineEmpty LineKind = iota
	// LineComment is a line whose first non-space character is '#'.
	LineComment
	// LineAssign is an assignment of an expression to a variable.
	LineAssign
	// LineError is a line that failed to parse or evaluate.
	LineError
)

func (k LineKind) String() string {
	switch k {
	case LineEmpty:
		return "Empty"
	case LineComment:
		return "Comment"
	case LineAssign:
		return "Assign"
	case LineError:
		return "Error"
	}
	return "LineKind(" + strconv.Itoa(int(k)) + ")"
}

// LineResult is the outcome of executing one model line.
type LineResult struct {
	Kind LineKind
	// Name and Value are set for assignments.
	Name  string
	Value Value
	// Comment is the text after '#' for comment lines, kept verbatim, or
	// the trimmed inline comment of an assignment.
	Comment string
	// Err is the failure of an error result.
	Err error
}

// line is the structural form of one raw input line before any arithmetic is
// attempted.
type line struct {
	kind    LineKind
	name    string
	expr    string
	comment string
}

// parseLine classifies one raw line as empty, comment, or assignment. The
// assignment shape is validated here; the expression text is validated later
// by the lexer and parser.
func parseLine(raw string) (line, error) {
	s := strings.TrimRightFunc(raw, unicode.IsSpace)
	if s == "" {
		return line{kind: LineEmpty}, nil
	}
	if t := strings.TrimLeftFunc(s, unicode.IsSpace); strings.HasPrefix(t, "#") {
		return line{kind: LineComment, comment: t[1:]}, nil
	}
	name, rest, ok := strings.Cut(s, "=")
	if !ok {
		return line{}, &SyntaxError{Line: s, Msg: "expected an assignment"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return line{}, &SyntaxError{Line: s, Msg: "missing variable name"}
	}
	if !isIdent(name) {
		return line{}, &SyntaxError{Line: s, Msg: "invalid variable name " + strconv.Quote(name)}
	}
	if strings.TrimSpace(rest) == "" {
		return line{}, &SyntaxError{Line: s, Msg: `missing expression after "="`}
	}
	if strings.Contains(rest, "=") {
		return line{}, &SyntaxError{Line: s, Msg: `"=" is not allowed in an expression`}
	}
	comment := ""
	if expr, c, ok := strings.Cut(rest, "#"); ok {
		rest = expr
		comment = strings.TrimSpace(c)
	}
	return line{kind: LineAssign, name: name, expr: strings.TrimSpace(rest), comment: comment}, nil
}

// isIdent reports whether s is a valid identifier: a letter or underscore
// followed by letters, digits, or underscores. The lexer applies the same
// grammar to variables inside expressions.
func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return s != ""
}

// SyntaxError indicates a line that fits none of the model line shapes:
// empty, comment, or a single assignment.
type SyntaxError struct {
	// Line is the offending line, trailing whitespace stripped.
	Line string
	// Msg describes what was wrong with it.
	Msg string
}

func (err *SyntaxError) Error() string {
	return err.Msg + ": " + strconv.Quote(err.Line)
}
