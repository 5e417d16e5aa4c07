package frame

import (
	"fmt"
	"math"
)

// Expr is a row-wise numeric expression over a frame's columns. Undefined
// operands propagate: any arithmetic over an undefined cell is undefined.
type Expr struct {
	node exprNode
}

type exprNode interface {
	eval(df *DataFrame, row int) (float64, bool)
	validate(df *DataFrame) error
}

// Named pairs an expression with the output column name it produces.
type Named struct {
	Name string
	Expr Expr
}

// As names the column an expression produces.
func (e Expr) As(name string) Named { return Named{Name: name, Expr: e} }

func (e Expr) eval(df *DataFrame, row int) (float64, bool) { return e.node.eval(df, row) }
func (e Expr) validate(df *DataFrame) error                { return e.node.validate(df) }

// Col references a numeric column by name.
func Col(name string) Expr { return Expr{node: colNode{name: name}} }

// Lit is a constant expression.
func Lit(v float64) Expr { return Expr{node: litNode{val: v, ok: true}} }

// NullLit is the undefined-value expression, used as the suppressed branch of
// conditional columns.
func NullLit() Expr { return Expr{node: litNode{}} }

// Sub returns e - o.
func (e Expr) Sub(o Expr) Expr {
	return Expr{node: binNode{l: e, r: o, op: func(a, b float64) float64 { return a - b }}}
}

// Div returns e / o. Division is plain IEEE arithmetic; callers wanting a
// guarded denominator build it with When and Eq.
func (e Expr) Div(o Expr) Expr {
	return Expr{node: binNode{l: e, r: o, op: func(a, b float64) float64 { return a / b }}}
}

// Abs returns the magnitude of e.
func (e Expr) Abs() Expr {
	return Expr{node: unaryNode{of: e, op: math.Abs}}
}

// Pred is a row-wise boolean expression. A predicate over an undefined
// operand is false.
type Pred struct {
	node predNode
}

type predNode interface {
	test(df *DataFrame, row int) bool
	validate(df *DataFrame) error
}

// IsNotNull is true where e evaluates to a defined value.
func (e Expr) IsNotNull() Pred { return Pred{node: notNullNode{of: e}} }

// Eq is true where both operands are defined and equal.
func (e Expr) Eq(o Expr) Pred { return Pred{node: eqNode{l: e, r: o}} }

// When starts a conditional column: When(p).Then(a).Otherwise(b).
func When(p Pred) WhenExpr { return WhenExpr{pred: p} }

// WhenExpr is a conditional column missing its branches.
type WhenExpr struct {
	pred Pred
}

// Then sets the value taken where the predicate holds.
func (w WhenExpr) Then(e Expr) ThenExpr { return ThenExpr{pred: w.pred, then: e} }

// ThenExpr is a conditional column missing its fallback branch.
type ThenExpr struct {
	pred Pred
	then Expr
}

// Otherwise completes the conditional with the value taken elsewhere.
func (t ThenExpr) Otherwise(e Expr) Expr {
	return Expr{node: condNode{pred: t.pred, then: t.then, other: e}}
}

type colNode struct {
	name string
}

func (n colNode) eval(df *DataFrame, row int) (float64, bool) {
	s := df.series[df.index[n.name]]
	return s.Value(row)
}

func (n colNode) validate(df *DataFrame) error {
	s, err := df.Column(n.name)
	if err != nil {
		return err
	}
	if !s.IsNumeric() {
		return fmt.Errorf("%q: %w", n.name, ErrNotNumeric)
	}
	return nil
}

type litNode struct {
	val float64
	ok  bool
}

func (n litNode) eval(*DataFrame, int) (float64, bool) { return n.val, n.ok }
func (n litNode) validate(*DataFrame) error            { return nil }

type binNode struct {
	l, r Expr
	op   func(a, b float64) float64
}

func (n binNode) eval(df *DataFrame, row int) (float64, bool) {
	a, ok := n.l.eval(df, row)
	if !ok {
		return 0, false
	}
	b, ok := n.r.eval(df, row)
	if !ok {
		return 0, false
	}
	return n.op(a, b), true
}

func (n binNode) validate(df *DataFrame) error {
	if err := n.l.validate(df); err != nil {
		return err
	}
	return n.r.validate(df)
}

type unaryNode struct {
	of Expr
	op func(float64) float64
}

func (n unaryNode) eval(df *DataFrame, row int) (float64, bool) {
	v, ok := n.of.eval(df, row)
	if !ok {
		return 0, false
	}
	return n.op(v), true
}

func (n unaryNode) validate(df *DataFrame) error { return n.of.validate(df) }

type notNullNode struct {
	of Expr
}

func (n notNullNode) test(df *DataFrame, row int) bool {
	_, ok := n.of.eval(df, row)
	return ok
}

func (n notNullNode) validate(df *DataFrame) error { return n.of.validate(df) }

type eqNode struct {
	l, r Expr
}

func (n eqNode) test(df *DataFrame, row int) bool {
	a, ok := n.l.eval(df, row)
	if !ok {
		return false
	}
	b, ok := n.r.eval(df, row)
	if !ok {
		return false
	}
	return a == b
}

func (n eqNode) validate(df *DataFrame) error {
	if err := n.l.validate(df); err != nil {
		return err
	}
	return n.r.validate(df)
}

type condNode struct {
	pred  Pred
	then  Expr
	other Expr
}

func (n condNode) eval(df *DataFrame, row int) (float64, bool) {
	if n.pred.node.test(df, row) {
		return n.then.eval(df, row)
	}
	return n.other.eval(df, row)
}

func (n condNode) validate(df *DataFrame) error {
	if err := n.pred.node.validate(df); err != nil {
		return err
	}
	if err := n.then.validate(df); err != nil {
		return err
	}
	return n.other.validate(df)
}
