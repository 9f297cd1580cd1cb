package motion

import "github.com/iburimskiy/sorry-card/internal/card"

// Bezier is a CSS style cubic-bezier timing curve with fixed end points at
// (0,0) and (1,1).
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// EaseOutCurve is the standard ease-out curve, cubic-bezier(0, 0, 0.58, 1).
var EaseOutCurve = Bezier{X1: 0, Y1: 0, X2: 0.58, Y2: 1}

func bezierAxis(p1, p2, t float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(p1, p2, t float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// At returns the eased progress for linear progress x in [0, 1].
func (b Bezier) At(x float64) float64 {
	x = clamp01(x)
	if x == 0 || x == 1 {
		return x
	}

	// Newton first, bisection if the slope flattens out.
	t := x
	for i := 0; i < 8; i++ {
		dx := bezierAxis(b.X1, b.X2, t) - x
		if dx < 1e-7 && dx > -1e-7 {
			return bezierAxis(b.Y1, b.Y2, t)
		}
		d := bezierSlope(b.X1, b.X2, t)
		if d < 1e-6 && d > -1e-6 {
			break
		}
		t -= dx / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 40; i++ {
		v := bezierAxis(b.X1, b.X2, t)
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return bezierAxis(b.Y1, b.Y2, t)
}

// Ease maps linear progress through the named curve.
func Ease(c card.Curve, x float64) float64 {
	switch c {
	case card.EaseOut:
		return EaseOutCurve.At(x)
	default:
		return clamp01(x)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
