package helpers

import "math"

// ConstFloat wraps the float64 arithmetic minifier.Evaluate performs while
// folding a numeric ConstantValue. The Go compiler may fuse a chain of
// float64 operations into a single FMA instruction on some architectures,
// which rounds differently than executing them one at a time; that would
// make constant folding non-deterministic across platforms. Routing every
// op through an explicit float64(...) conversion on this type (instead of
// computing directly on bare float64 operands) blocks that fusion, so a
// fold like `a - b` produces the identical bit pattern everywhere.
type ConstFloat struct {
	value float64
}

func NewConstFloat(v float64) ConstFloat {
	return ConstFloat{value: float64(v)}
}

func (a ConstFloat) Value() float64 {
	return a.value
}

func (a ConstFloat) Neg() ConstFloat {
	return NewConstFloat(-a.value)
}

func (a ConstFloat) Add(b ConstFloat) ConstFloat {
	return NewConstFloat(a.value + b.value)
}

func (a ConstFloat) Sub(b ConstFloat) ConstFloat {
	return NewConstFloat(a.value - b.value)
}

func (a ConstFloat) Mul(b ConstFloat) ConstFloat {
	return NewConstFloat(a.value * b.value)
}

func (a ConstFloat) Div(b ConstFloat) ConstFloat {
	return NewConstFloat(a.value / b.value)
}

func (a ConstFloat) Pow(b ConstFloat) ConstFloat {
	return NewConstFloat(math.Pow(a.value, b.value))
}
