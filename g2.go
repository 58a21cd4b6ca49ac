package pairing

// G2 group operations on the sextic twist E'(F_p^2): y^2 = x^3 + b'.
//
// BN254 uses the D-type twist with b' = 3/(9+u); BLS12-381 uses the M-type
// twist with b' = 4(1+u). The group law is twist-agnostic.

import "math/big"

// G2Affine is a point on the twist curve in affine coordinates.
type G2Affine struct {
	x, y     *fp2
	infinity bool
}

// G2Infinity returns the identity element of G2.
func G2Infinity() *G2Affine {
	return &G2Affine{x: fp2Zero(), y: fp2Zero(), infinity: true}
}

// NewG2Affine builds a point from the four affine coordinate limbs
// (x = x0 + x1*u, y = y0 + y1*u) without validation.
func NewG2Affine(x0, x1, y0, y1 *big.Int) *G2Affine {
	return &G2Affine{
		x: &fp2{c0: new(big.Int).Set(x0), c1: new(big.Int).Set(x1)},
		y: &fp2{c0: new(big.Int).Set(y0), c1: new(big.Int).Set(y1)},
	}
}

// IsInfinity reports whether q is the identity.
func (q *G2Affine) IsInfinity() bool {
	return q.infinity
}

// G2Generator returns the standard generator of G2.
func (c *Curve) G2Generator() *G2Affine {
	return &G2Affine{x: newFp2(c.g2x.c0, c.g2x.c1), y: newFp2(c.g2y.c0, c.g2y.c1)}
}

// G2Equal reports whether a and b are the same point.
func (c *Curve) G2Equal(a, b *G2Affine) bool {
	if a.infinity || b.infinity {
		return a.infinity == b.infinity
	}
	return c.fp2Equal(a.x, b.x) && c.fp2Equal(a.y, b.y)
}

// G2Neg returns -q. Negating the identity keeps the identity flag and sets
// y to the field's multiplicative unit.
func (c *Curve) G2Neg(q *G2Affine) *G2Affine {
	if q.infinity {
		return &G2Affine{x: fp2Zero(), y: fp2One(), infinity: true}
	}
	return &G2Affine{x: newFp2(q.x.c0, q.x.c1), y: c.fp2Neg(q.y)}
}

// G2IsOnCurve checks y^2 == x^3 + b' with all coordinate limbs reduced.
func (c *Curve) G2IsOnCurve(q *G2Affine) bool {
	if q.infinity {
		return true
	}
	for _, limb := range []*big.Int{q.x.c0, q.x.c1, q.y.c0, q.y.c1} {
		if limb.Sign() < 0 || limb.Cmp(c.p) >= 0 {
			return false
		}
	}
	lhs := c.fp2Sqr(q.y)
	rhs := c.fp2Add(c.fp2Mul(c.fp2Sqr(q.x), q.x), c.twistB)
	return c.fp2Equal(lhs, rhs)
}

// g2Jacobian is the internal working representation; z = 0 is the identity.
type g2Jacobian struct {
	x, y, z *fp2
}

func g2JacobianInfinity() *g2Jacobian {
	return &g2Jacobian{x: fp2One(), y: fp2One(), z: fp2Zero()}
}

func (c *Curve) g2FromAffine(q *G2Affine) *g2Jacobian {
	if q.infinity {
		return g2JacobianInfinity()
	}
	return &g2Jacobian{
		x: newFp2(q.x.c0, q.x.c1),
		y: newFp2(q.y.c0, q.y.c1),
		z: fp2One(),
	}
}

func (c *Curve) g2ToAffine(q *g2Jacobian) *G2Affine {
	if q.z.isZero() {
		return G2Infinity()
	}
	zInv := c.fp2Inv(q.z)
	zInv2 := c.fp2Sqr(zInv)
	zInv3 := c.fp2Mul(zInv2, zInv)
	return &G2Affine{
		x: c.fp2Mul(q.x, zInv2),
		y: c.fp2Mul(q.y, zInv3),
	}
}

func (c *Curve) g2Double(a *g2Jacobian) *g2Jacobian {
	if a.z.isZero() {
		return g2JacobianInfinity()
	}

	A := c.fp2Sqr(a.x)
	B := c.fp2Sqr(a.y)
	C := c.fp2Sqr(B)

	D := c.fp2Sub(c.fp2Sub(c.fp2Sqr(c.fp2Add(a.x, B)), A), C)
	D = c.fp2Add(D, D)

	E := c.fp2Add(c.fp2Add(A, A), A)

	x3 := c.fp2Sub(c.fp2Sqr(E), c.fp2Add(D, D))

	eightC := c.fp2MulScalar(C, big.NewInt(8))
	y3 := c.fp2Sub(c.fp2Mul(E, c.fp2Sub(D, x3)), eightC)

	z3 := c.fp2Mul(c.fp2Add(a.y, a.y), a.z)

	return &g2Jacobian{x: x3, y: y3, z: z3}
}

func (c *Curve) g2Add(a, b *g2Jacobian) *g2Jacobian {
	if a.z.isZero() {
		return &g2Jacobian{x: newFp2(b.x.c0, b.x.c1), y: newFp2(b.y.c0, b.y.c1), z: newFp2(b.z.c0, b.z.c1)}
	}
	if b.z.isZero() {
		return &g2Jacobian{x: newFp2(a.x.c0, a.x.c1), y: newFp2(a.y.c0, a.y.c1), z: newFp2(a.z.c0, a.z.c1)}
	}

	z1sq := c.fp2Sqr(a.z)
	z2sq := c.fp2Sqr(b.z)
	u1 := c.fp2Mul(a.x, z2sq)
	u2 := c.fp2Mul(b.x, z1sq)
	s1 := c.fp2Mul(a.y, c.fp2Mul(b.z, z2sq))
	s2 := c.fp2Mul(b.y, c.fp2Mul(a.z, z1sq))

	if c.fp2Equal(u1, u2) {
		if c.fp2Equal(s1, s2) {
			return c.g2Double(a)
		}
		return g2JacobianInfinity()
	}

	h := c.fp2Sub(u2, u1)
	i := c.fp2Sqr(c.fp2Add(h, h))
	j := c.fp2Mul(h, i)
	r := c.fp2Sub(s2, s1)
	r = c.fp2Add(r, r)
	v := c.fp2Mul(u1, i)

	x3 := c.fp2Sub(c.fp2Sub(c.fp2Sqr(r), j), c.fp2Add(v, v))
	s1j := c.fp2Mul(s1, j)
	y3 := c.fp2Sub(c.fp2Mul(r, c.fp2Sub(v, x3)), c.fp2Add(s1j, s1j))
	z3 := c.fp2Mul(c.fp2Sub(c.fp2Sub(c.fp2Sqr(c.fp2Add(a.z, b.z)), z1sq), z2sq), h)

	return &g2Jacobian{x: x3, y: y3, z: z3}
}

// G2Add returns a + b.
func (c *Curve) G2Add(a, b *G2Affine) *G2Affine {
	return c.g2ToAffine(c.g2Add(c.g2FromAffine(a), c.g2FromAffine(b)))
}

// G2ScalarMul returns k*q by double-and-add. The scalar is reduced mod r.
func (c *Curve) G2ScalarMul(q *G2Affine, k *big.Int) *G2Affine {
	s := new(big.Int).Mod(k, c.r)
	acc := g2JacobianInfinity()
	base := c.g2FromAffine(q)
	for i := s.BitLen() - 1; i >= 0; i-- {
		acc = c.g2Double(acc)
		if s.Bit(i) == 1 {
			acc = c.g2Add(acc, base)
		}
	}
	return c.g2ToAffine(acc)
}
