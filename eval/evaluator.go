// Package eval implements the tree-walking evaluator: it executes a
// parsed AST against a single shared Environment, performing the
// interpreter's only side effects (printing to stdout, diagnostics to
// stderr).
//
// The teacher interpreter's own evaluator propagates an Error object
// that callers must check and bubble up, aborting the walk the first
// time something goes wrong. This language instead reports a diagnostic
// and substitutes a defined fallback value (0, false, or a partial
// result), then keeps walking — the report-and-continue policy the
// language is built around, needed so one bad identifier or a division
// typo doesn't take down the rest of the program.
package eval

import (
	"fmt"
	"io"

	"github.com/Neche-Stephen/igbo-programming-language/ast"
	"github.com/Neche-Stephen/igbo-programming-language/diagnostics"
	"github.com/Neche-Stephen/igbo-programming-language/env"
	"github.com/Neche-Stephen/igbo-programming-language/token"
	"github.com/Neche-Stephen/igbo-programming-language/value"
)

// maxWhileIterations is the WHILE_STMT watchdog: no single loop may
// outlive this many condition evaluations.
const maxWhileIterations = 10000

// Evaluator walks an AST against a single Environment, writing
// PRINT_STMT output to Out and diagnostics through Reporter.
type Evaluator struct {
	Env      *env.Environment
	Out      io.Writer
	Reporter *diagnostics.Reporter
}

// New creates an Evaluator writing program output to out and
// diagnostics through reporter, with a fresh empty Environment.
func New(out io.Writer, reporter *diagnostics.Reporter) *Evaluator {
	return &Evaluator{Env: env.New(), Out: out, Reporter: reporter}
}

// Run executes a PROGRAM chain from the top level. A nil root (an empty
// program) is a no-op.
func (e *Evaluator) Run(root *ast.Node) {
	e.execChain(root)
}

// execChain walks a right-leaning PROGRAM chain, executing each
// statement in order. Per the AST's own invariant, Right is always
// either another PROGRAM node or nil, so this always terminates.
func (e *Evaluator) execChain(n *ast.Node) {
	for n != nil {
		e.execStatement(n.Left)
		n = n.Right
	}
}

func (e *Evaluator) execStatement(n *ast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ast.VAR_DECL:
		v := e.eval(n.Left)
		e.Env.Bind(n.Payload, v)
	case ast.PRINT_STMT:
		v := e.eval(n.Left)
		fmt.Fprintln(e.Out, v.Print())
	case ast.IF_STMT:
		cond := e.eval(n.Left)
		if cond.Truthy() {
			e.execChain(n.Right)
		} else if n.Third != nil {
			e.execChain(n.Third)
		}
	case ast.WHILE_STMT:
		e.execWhile(n)
	default:
		// Bare expression statement: evaluate for side effects and
		// discard the result.
		e.eval(n)
	}
}

func (e *Evaluator) execWhile(n *ast.Node) {
	for i := 0; ; i++ {
		if i >= maxWhileIterations {
			e.Reporter.Report("Possible infinite loop detected", n.Line)
			return
		}
		cond := e.eval(n.Left)
		if !cond.Truthy() {
			return
		}
		e.execChain(n.Right)
	}
}

// eval evaluates an expression node to a Value. It never returns an
// error: every failure mode reports a diagnostic and yields the
// operator table's or the spec's defined fallback value.
func (e *Evaluator) eval(n *ast.Node) value.Value {
	if n == nil {
		// A partial tree from a parse error: the parser already reported it.
		return value.Num(0)
	}
	switch n.Kind {
	case ast.NUMBER:
		f, err := value.ParseNumber(n.Payload)
		if err != nil {
			e.Reporter.Reportf(n.Line, "Invalid number literal '%s'", n.Payload)
			return value.Num(0)
		}
		return value.Num(f)
	case ast.STRING:
		return value.Str(n.Payload)
	case ast.BOOL:
		return value.Boolean(n.Payload == token.TrueLiteral)
	case ast.IDENTIFIER:
		if v, ok := e.Env.Lookup(n.Payload); ok {
			return v
		}
		e.Reporter.Reportf(n.Line, "Undefined variable '%s'", n.Payload)
		return value.Num(0)
	case ast.BINARY_EXPR:
		return e.evalBinary(n)
	default:
		return value.Num(0)
	}
}

func (e *Evaluator) evalBinary(n *ast.Node) value.Value {
	left := e.eval(n.Left)
	right := e.eval(n.Right)
	op := n.Payload

	switch op {
	case "+":
		if left.IsString() || right.IsString() {
			return value.Str(operandText(left) + operandText(right))
		}
		if left.IsNumber() && right.IsNumber() {
			return value.Num(left.AsNumber() + right.AsNumber())
		}
		e.Reporter.Reportf(n.Line, "Operands must be numbers for '%s'", op)
		return value.Num(0)
	case "-", "*", "/":
		if !left.IsNumber() || !right.IsNumber() {
			e.Reporter.Reportf(n.Line, "Operands must be numbers for '%s'", op)
			return value.Num(0)
		}
		return value.Num(arith(op, left.AsNumber(), right.AsNumber()))
	case "==", "!=":
		return e.evalEquality(n, op, left, right)
	case "<", ">", "<=", ">=":
		if !left.IsNumber() || !right.IsNumber() {
			e.Reporter.Reportf(n.Line, "Operands must be numbers for '%s'", op)
			return value.Boolean(false)
		}
		return value.Boolean(compare(op, left.AsNumber(), right.AsNumber()))
	default:
		e.Reporter.Reportf(n.Line, "Unknown binary operator")
		return value.Num(0)
	}
}

// operandText renders an operand for string concatenation: strings
// pass through unchanged, numbers use the same shortest-round-trip text
// the evaluator prints, matching the spec's coercion law for "x" + 1.
func operandText(v value.Value) string {
	if v.IsString() {
		return v.AsString()
	}
	return v.Print()
}

func arith(op string, l, r float64) float64 {
	switch op {
	case "-":
		return l - r
	case "*":
		return l * r
	default: // "/"
		return l / r
	}
}

func compare(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	default: // ">="
		return l >= r
	}
}

func (e *Evaluator) evalEquality(n *ast.Node, op string, left, right value.Value) value.Value {
	if left.Type() != right.Type() {
		e.Reporter.Reportf(n.Line, "Type mismatch for '%s'", op)
		return value.Boolean(false)
	}
	var equal bool
	switch left.Type() {
	case value.Number:
		equal = left.AsNumber() == right.AsNumber()
	case value.String:
		equal = left.AsString() == right.AsString()
	case value.Bool:
		equal = left.AsBool() == right.AsBool()
	}
	if op == "!=" {
		return value.Boolean(!equal)
	}
	return value.Boolean(equal)
}
