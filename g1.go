package pairing

// G1 group operations on E(F_p): y^2 = x^3 + b.
//
// The exported type is affine; scalar multiplication and addition work
// internally in Jacobian coordinates (z = 0 encodes the identity).

import "math/big"

// G1Affine is a point on the base curve in affine coordinates.
type G1Affine struct {
	x, y     *big.Int
	infinity bool
}

// G1Infinity returns the identity element of G1.
func G1Infinity() *G1Affine {
	return &G1Affine{x: new(big.Int), y: new(big.Int), infinity: true}
}

// NewG1Affine builds a point from affine coordinates without validation.
// Use G1IsOnCurve to check membership.
func NewG1Affine(x, y *big.Int) *G1Affine {
	return &G1Affine{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// IsInfinity reports whether p is the identity.
func (p *G1Affine) IsInfinity() bool {
	return p.infinity
}

// X returns the affine x coordinate.
func (p *G1Affine) X() *big.Int { return new(big.Int).Set(p.x) }

// Y returns the affine y coordinate.
func (p *G1Affine) Y() *big.Int { return new(big.Int).Set(p.y) }

// G1Generator returns the standard generator of G1.
func (c *Curve) G1Generator() *G1Affine {
	return NewG1Affine(c.g1x, c.g1y)
}

// G1Equal reports whether a and b are the same point.
func (c *Curve) G1Equal(a, b *G1Affine) bool {
	if a.infinity || b.infinity {
		return a.infinity == b.infinity
	}
	ax := new(big.Int).Mod(a.x, c.p)
	bx := new(big.Int).Mod(b.x, c.p)
	ay := new(big.Int).Mod(a.y, c.p)
	by := new(big.Int).Mod(b.y, c.p)
	return ax.Cmp(bx) == 0 && ay.Cmp(by) == 0
}

// G1Neg returns -p. Negating the identity keeps the identity flag and sets
// y to the field's multiplicative unit.
func (c *Curve) G1Neg(p *G1Affine) *G1Affine {
	if p.infinity {
		return &G1Affine{x: new(big.Int), y: big.NewInt(1), infinity: true}
	}
	return &G1Affine{x: new(big.Int).Set(p.x), y: c.fpNeg(p.y)}
}

// G1IsOnCurve checks y^2 == x^3 + b with both coordinates reduced.
func (c *Curve) G1IsOnCurve(p *G1Affine) bool {
	if p.infinity {
		return true
	}
	if p.x.Sign() < 0 || p.x.Cmp(c.p) >= 0 || p.y.Sign() < 0 || p.y.Cmp(c.p) >= 0 {
		return false
	}
	lhs := c.fpSqr(p.y)
	rhs := c.fpAdd(c.fpMul(c.fpSqr(p.x), p.x), c.b)
	return lhs.Cmp(rhs) == 0
}

// g1Jacobian is the internal working representation; z = 0 is the identity.
type g1Jacobian struct {
	x, y, z *big.Int
}

func (c *Curve) g1FromAffine(p *G1Affine) *g1Jacobian {
	if p.infinity {
		return &g1Jacobian{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
	}
	return &g1Jacobian{
		x: new(big.Int).Set(p.x),
		y: new(big.Int).Set(p.y),
		z: big.NewInt(1),
	}
}

func (c *Curve) g1ToAffine(p *g1Jacobian) *G1Affine {
	if p.z.Sign() == 0 {
		return G1Infinity()
	}
	zInv := c.fpInv(p.z)
	zInv2 := c.fpSqr(zInv)
	zInv3 := c.fpMul(zInv2, zInv)
	return &G1Affine{
		x: c.fpMul(p.x, zInv2),
		y: c.fpMul(p.y, zInv3),
	}
}

func (c *Curve) g1Double(a *g1Jacobian) *g1Jacobian {
	if a.z.Sign() == 0 {
		return &g1Jacobian{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
	}

	A := c.fpSqr(a.x)
	B := c.fpSqr(a.y)
	C := c.fpSqr(B)

	D := c.fpSub(c.fpSub(c.fpSqr(c.fpAdd(a.x, B)), A), C)
	D = c.fpAdd(D, D)

	E := c.fpAdd(c.fpAdd(A, A), A)

	x3 := c.fpSub(c.fpSqr(E), c.fpAdd(D, D))

	eightC := c.fpMul(C, big.NewInt(8))
	y3 := c.fpSub(c.fpMul(E, c.fpSub(D, x3)), eightC)

	z3 := c.fpMul(c.fpAdd(a.y, a.y), a.z)

	return &g1Jacobian{x: x3, y: y3, z: z3}
}

func (c *Curve) g1Add(a, b *g1Jacobian) *g1Jacobian {
	if a.z.Sign() == 0 {
		return &g1Jacobian{x: new(big.Int).Set(b.x), y: new(big.Int).Set(b.y), z: new(big.Int).Set(b.z)}
	}
	if b.z.Sign() == 0 {
		return &g1Jacobian{x: new(big.Int).Set(a.x), y: new(big.Int).Set(a.y), z: new(big.Int).Set(a.z)}
	}

	z1sq := c.fpSqr(a.z)
	z2sq := c.fpSqr(b.z)
	u1 := c.fpMul(a.x, z2sq)
	u2 := c.fpMul(b.x, z1sq)
	s1 := c.fpMul(a.y, c.fpMul(b.z, z2sq))
	s2 := c.fpMul(b.y, c.fpMul(a.z, z1sq))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return c.g1Double(a)
		}
		return &g1Jacobian{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
	}

	h := c.fpSub(u2, u1)
	i := c.fpSqr(c.fpAdd(h, h))
	j := c.fpMul(h, i)
	r := c.fpSub(s2, s1)
	r = c.fpAdd(r, r)
	v := c.fpMul(u1, i)

	x3 := c.fpSub(c.fpSub(c.fpSqr(r), j), c.fpAdd(v, v))
	s1j := c.fpMul(s1, j)
	y3 := c.fpSub(c.fpMul(r, c.fpSub(v, x3)), c.fpAdd(s1j, s1j))
	z3 := c.fpMul(c.fpSub(c.fpSub(c.fpSqr(c.fpAdd(a.z, b.z)), z1sq), z2sq), h)

	return &g1Jacobian{x: x3, y: y3, z: z3}
}

// G1Add returns a + b.
func (c *Curve) G1Add(a, b *G1Affine) *G1Affine {
	return c.g1ToAffine(c.g1Add(c.g1FromAffine(a), c.g1FromAffine(b)))
}

// G1ScalarMul returns k*p by double-and-add. The scalar is reduced mod r.
func (c *Curve) G1ScalarMul(p *G1Affine, k *big.Int) *G1Affine {
	s := new(big.Int).Mod(k, c.r)
	acc := &g1Jacobian{x: big.NewInt(1), y: big.NewInt(1), z: new(big.Int)}
	base := c.g1FromAffine(p)
	for i := s.BitLen() - 1; i >= 0; i-- {
		acc = c.g1Double(acc)
		if s.Bit(i) == 1 {
			acc = c.g1Add(acc, base)
		}
	}
	return c.g1ToAffine(acc)
}
