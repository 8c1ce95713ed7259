package fermi

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultSampleCount is the number of Monte Carlo samples drawn for each
// uncertainty range unless SampleCount says otherwise.
const DefaultSampleCount = 100000

// Engine evaluates expressions and threads variable bindings across the
// lines of a model. It is not safe to use an Engine concurrently; callers
// that share one environment must serialize access.
type Engine struct {
	names   map[string]Value
	nums    map[string]float64
	rng     *rand.Rand
	samples int
}

// EngineOption is an option used when creating an engine.
type EngineOption interface {
	engineOption(*Engine)
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt   map[string]Value
	sampleopt int
	seedopt   int64
)

func (o varopt) engineOption(g *Engine)    { g.names[o.name] = o.val }
func (o sampleopt) engineOption(g *Engine) { g.samples = int(o) }
func (o seedopt) engineOption(g *Engine)   { g.rng = rand.New(rand.NewSource(int64(o))) }

func (o varsopt) engineOption(g *Engine) {
	for k, v := range o {
		g.names[k] = v
	}
}

// SetVar sets the value of a variable in the engine's environment.
func SetVar(name string, val Value) EngineOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the engine's
// environment.
func SetVars(vars map[string]Value) EngineOption {
	return varsopt(vars)
}

// SampleCount sets the number of Monte Carlo samples drawn per uncertainty
// range. Panics if n is not positive.
func SampleCount(n int) EngineOption {
	if n <= 0 {
		panic("fermi: sample count must be positive: " + strconv.Itoa(n))
	}
	return sampleopt(n)
}

// Seed fixes the engine's random source so that sample draws are
// reproducible.
func Seed(seed int64) EngineOption {
	return seedopt(seed)
}

// NewEngine creates an engine with an empty environment. Without options,
// each uncertainty range draws DefaultSampleCount samples from a time-seeded
// source.
func NewEngine(opts ...EngineOption) *Engine {
	g := &Engine{
		names:   make(map[string]Value),
		nums:    make(map[string]float64),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		samples: DefaultSampleCount,
	}
	for _, opt := range opts {
		opt.engineOption(g)
	}
	return g
}

// Eval evaluates a parsed expression against the engine's environment.
func (g *Engine) Eval(e *Expr) (Value, error) {
	return e.n.eval(g)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func (g *Engine) EvalString(src string) (Value, error) {
	e, err := ParseString(src)
	if err != nil {
		return Value{}, err
	}
	return g.Eval(e)
}

// ExecuteLine parses and executes one model line. Every failure, from the
// lexer through evaluation, is reported as a LineError result; ExecuteLine
// itself never fails. A failed assignment binds nothing.
func (g *Engine) ExecuteLine(raw string) LineResult {
	ln, err := parseLine(raw)
	if err != nil {
		return LineResult{Kind: LineError, Err: err}
	}
	switch ln.kind {
	case LineEmpty:
		return LineResult{Kind: LineEmpty}
	case LineComment:
		return LineResult{Kind: LineComment, Comment: ln.comment}
	}
	v, err := g.EvalString(ln.expr)
	if err != nil {
		return LineResult{Kind: LineError, Err: err}
	}
	g.names[ln.name] = v
	return LineResult{Kind: LineAssign, Name: ln.name, Value: v, Comment: ln.comment}
}

// ExecuteModel executes every line of a model in order against the shared
// environment, so later lines see variables bound by earlier ones. A failing
// line yields an error result but does not stop the lines after it. The
// environment is not reset; call Clear first for a fresh calculation.
func (g *Engine) ExecuteModel(text string) []LineResult {
	lines := strings.Split(text, "\n")
	results := make([]LineResult, len(lines))
	for i, ln := range lines {
		results[i] = g.ExecuteLine(ln)
	}
	return results
}

// Set sets the value of a variable. Returns g for chaining.
func (g *Engine) Set(name string, val Value) *Engine {
	g.names[name] = val
	return g
}

// Lookup returns the value of a variable and whether it is bound.
func (g *Engine) Lookup(name string) (Value, bool) {
	v, ok := g.names[name]
	return v, ok
}

// Names returns the sorted names of the variables currently bound in the
// environment.
func (g *Engine) Names() []string {
	names := make([]string, 0, len(g.names))
	for k := range g.names {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clear empties the environment. The sample count, random source, and
// literal cache are kept.
func (g *Engine) Clear() {
	clear(g.names)
}

// num gets a possibly cached literal value from its text. The lexer has
// already validated the literal, so a failure to convert is a bug.
func (g *Engine) num(s string) float64 {
	if v, ok := g.nums[s]; ok {
		return v
	}
	v, err := ParseNumber(s)
	if err != nil {
		panic("fermi: invalid number: " + s + " (" + err.Error() + ")")
	}
	g.nums[s] = v
	return v
}

// eval computes the node's value. Range samples live only in the returned
// Value; nothing temporary is ever written to the environment.
func (n *node) eval(g *Engine) (Value, error) {
	switch n.kind {
	case nodeNum:
		return Scalar(g.num(n.name)), nil
	case nodeName:
		v, ok := g.names[n.name]
		if !ok {
			return Value{}, &NameError{Name: n.name}
		}
		return v, nil
	case nodeRange:
		lo, hi := g.num(n.left.name), g.num(n.right.name)
		// The bounds may be given in either order.
		if hi < lo {
			lo, hi = hi, lo
		}
		out := make([]float64, g.samples)
		for i := range out {
			out[i] = lo + g.rng.Float64()*(hi-lo)
		}
		return Distribution(out), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		l, err := n.left.eval(g)
		if err != nil {
			return Value{}, err
		}
		r, err := n.right.eval(g)
		if err != nil {
			return Value{}, err
		}
		switch n.kind {
		case nodeAdd:
			return combine(add, l, r)
		case nodeSub:
			return combine(sub, l, r)
		case nodeMul:
			return combine(mul, l, r)
		default:
			return combine(div, l, r)
		}
	default:
		panic("fermi: invalid AST node " + n.kind.String())
	}
}

// NameError is an error from a lookup for a variable that is missing from
// the environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
