package pairing

// Miller loop for the optimal ate pairing.
//
// Both curves share the Jacobian doubling/addition steps below (the
// formulas from "Faster Computation of the Tate Pairing", eprint 2010/354,
// Algorithms 26 and 27). The steps emit raw tangent/chord coefficients; the
// per-curve drivers scale them by the G1 point's coordinates and route them
// into the curve's sparse Fp12 slots, which is where the D-twist (BN254)
// and M-twist (BLS12-381) differ.

import "math/big"

// twistPoint is the Miller loop accumulator in Jacobian coordinates with
// the cached t = z^2.
type twistPoint struct {
	x, y, z, t *fp2
}

func (c *Curve) twistPointFromAffine(qx, qy *fp2) *twistPoint {
	return &twistPoint{
		x: newFp2(qx.c0, qx.c1),
		y: newFp2(qy.c0, qy.c1),
		z: fp2One(),
		t: fp2One(),
	}
}

// lineEval carries the raw line coefficients of one step: cy is scaled by
// the G1 point's y, cx by its x, and cc is used as-is.
type lineEval struct {
	cy, cx, cc *fp2
}

// doublingStep computes the tangent line at r and returns the line
// coefficients together with 2r.
func (c *Curve) doublingStep(r *twistPoint) (*lineEval, *twistPoint) {
	A := c.fp2Sqr(r.x)
	B := c.fp2Sqr(r.y)
	C := c.fp2Sqr(B)

	D := c.fp2Add(r.x, B)
	D = c.fp2Sqr(D)
	D = c.fp2Sub(D, A)
	D = c.fp2Sub(D, C)
	D = c.fp2Add(D, D)

	E := c.fp2Add(c.fp2Add(A, A), A) // 3A
	G := c.fp2Sqr(E)

	out := &twistPoint{}
	out.x = c.fp2Sub(c.fp2Sub(G, D), D)

	out.z = c.fp2Add(r.y, r.z)
	out.z = c.fp2Sqr(out.z)
	out.z = c.fp2Sub(out.z, B)
	out.z = c.fp2Sub(out.z, r.t)

	out.y = c.fp2Sub(D, out.x)
	out.y = c.fp2Mul(out.y, E)
	t := c.fp2Add(C, C)
	t = c.fp2Add(t, t)
	t = c.fp2Add(t, t)
	out.y = c.fp2Sub(out.y, t) // (D - x3)*E - 8C

	out.t = c.fp2Sqr(out.z)

	// Line coefficients.
	cx := c.fp2Mul(E, r.t)
	cx = c.fp2Add(cx, cx)
	cx = c.fp2Neg(cx) // -2*E*t, to be scaled by P.x

	cc := c.fp2Add(r.x, E)
	cc = c.fp2Sqr(cc)
	cc = c.fp2Sub(cc, A)
	cc = c.fp2Sub(cc, G)
	t = c.fp2Add(B, B)
	t = c.fp2Add(t, t)
	cc = c.fp2Sub(cc, t) // (x+E)^2 - A - G - 4B

	cy := c.fp2Mul(out.z, r.t)
	cy = c.fp2Add(cy, cy) // 2*z3*t, to be scaled by P.y

	return &lineEval{cy: cy, cx: cx, cc: cc}, out
}

// additionStep computes the chord through r and the affine twist point
// (qx, qy) and returns the line coefficients together with r + Q.
func (c *Curve) additionStep(r *twistPoint, qx, qy *fp2) (*lineEval, *twistPoint) {
	r2 := c.fp2Sqr(qy)
	B := c.fp2Mul(qx, r.t)

	D := c.fp2Add(qy, r.z)
	D = c.fp2Sqr(D)
	D = c.fp2Sub(D, r2)
	D = c.fp2Sub(D, r.t)
	D = c.fp2Mul(D, r.t)

	H := c.fp2Sub(B, r.x)
	I := c.fp2Sqr(H)

	E := c.fp2Add(I, I)
	E = c.fp2Add(E, E) // 4I

	J := c.fp2Mul(H, E)

	L1 := c.fp2Sub(D, r.y)
	L1 = c.fp2Sub(L1, r.y)

	V := c.fp2Mul(r.x, E)

	out := &twistPoint{}
	out.x = c.fp2Sub(c.fp2Sub(c.fp2Sqr(L1), J), c.fp2Add(V, V))

	out.z = c.fp2Add(r.z, H)
	out.z = c.fp2Sqr(out.z)
	out.z = c.fp2Sub(out.z, r.t)
	out.z = c.fp2Sub(out.z, I)

	t := c.fp2Sub(V, out.x)
	t = c.fp2Mul(t, L1)
	t2 := c.fp2Mul(r.y, J)
	t2 = c.fp2Add(t2, t2)
	out.y = c.fp2Sub(t, t2)

	out.t = c.fp2Sqr(out.z)

	// Line coefficients.
	t = c.fp2Add(qy, out.z)
	t = c.fp2Sqr(t)
	t = c.fp2Sub(t, r2)
	t = c.fp2Sub(t, out.t)

	t2 = c.fp2Mul(L1, qx)
	t2 = c.fp2Add(t2, t2)
	cc := c.fp2Sub(t2, t) // 2*L1*qx - ((qy+z3)^2 - qy^2 - z3^2)

	cy := c.fp2Add(out.z, out.z) // 2*z3, to be scaled by P.y

	cx := c.fp2Neg(L1)
	cx = c.fp2Add(cx, cx) // -2*L1, to be scaled by P.x

	return &lineEval{cy: cy, cx: cx, cc: cc}, out
}

// mulLine folds one line evaluation into the accumulator using the curve's
// sparse slot mapping.
//
// BN254 (D-twist): the line lives in slots 0, 3, 4 as
// c0 = (cy*py, 0, 0), c1 = (cx*px, cc, 0).
// BLS12-381 (M-twist): slots 0, 1, 4 as c0 = (cc, cx*px, 0), c1 = (0, cy*py, 0).
func (c *Curve) mulLine(f *fp12, l *lineEval, px, py *big.Int) *fp12 {
	switch c.family {
	case familyBN:
		return c.fp12MulBy034(f, c.fp2MulScalar(l.cy, py), c.fp2MulScalar(l.cx, px), l.cc)
	default:
		return c.fp12MulBy014(f, l.cc, c.fp2MulScalar(l.cx, px), c.fp2MulScalar(l.cy, py))
	}
}

// millerLoop dispatches to the family driver. Affine inputs, non-infinite.
func (c *Curve) millerLoop(px, py *big.Int, qx, qy *fp2) *fp12 {
	if c.family == familyBN {
		return c.millerLoopBN(px, py, qx, qy)
	}
	return c.millerLoopBLS(px, py, qx, qy)
}

// millerLoopBN walks the NAF digits of |6u+2| and finishes with the two
// Frobenius addition steps for Q1 and -Q2.
func (c *Curve) millerLoopBN(px, py *big.Int, qx, qy *fp2) *fp12 {
	digits := c.loopDigits
	f := fp12One()
	r := c.twistPointFromAffine(qx, qy)
	minusQy := c.fp2Neg(qy)

	for i := len(digits) - 1; i > 0; i-- {
		line, newR := c.doublingStep(r)
		if i != len(digits)-1 {
			f = c.fp12Sqr(f)
		}
		f = c.mulLine(f, line, px, py)
		r = newR

		switch digits[i-1] {
		case 1:
			line, r = c.additionStep(r, qx, qy)
			f = c.mulLine(f, line, px, py)
		case -1:
			line, r = c.additionStep(r, qx, minusQy)
			f = c.mulLine(f, line, px, py)
		}
	}

	// Q1 = pi_p(Q): conjugate coordinates scaled by xi^((p-1)/3), xi^((p-1)/2).
	q1x := c.fp2Mul(c.fp2Conj(qx), c.frob[1][2])
	q1y := c.fp2Mul(c.fp2Conj(qy), c.frob[1][3])
	line, newR := c.additionStep(r, q1x, q1y)
	f = c.mulLine(f, line, px, py)
	r = newR

	// -Q2 = -pi_p^2(Q): x scaled by xi^((p^2-1)/3), y unchanged.
	q2x := c.fp2Mul(qx, c.frob[2][2])
	line, _ = c.additionStep(r, q2x, qy)
	f = c.mulLine(f, line, px, py)

	return f
}

// millerLoopBLS walks the bits of |x|>>1 high-to-low, squaring after the
// updates of each iteration, then performs one final doubling step. The
// trailing conjugation accounts for x < 0.
func (c *Curve) millerLoopBLS(px, py *big.Int, qx, qy *fp2) *fp12 {
	half := new(big.Int).Rsh(c.u, 1)
	f := fp12One()
	r := c.twistPointFromAffine(qx, qy)

	for i := half.BitLen() - 2; i >= 0; i-- {
		line, newR := c.doublingStep(r)
		f = c.mulLine(f, line, px, py)
		r = newR

		if half.Bit(i) == 1 {
			line, r = c.additionStep(r, qx, qy)
			f = c.mulLine(f, line, px, py)
		}

		f = c.fp12Sqr(f)
	}

	line, _ := c.doublingStep(r)
	f = c.mulLine(f, line, px, py)

	if c.uNeg {
		f = c.fp12Conj(f)
	}
	return f
}
