package pairing

// Quadratic extension F_p^2 = F_p[u]/(u^2+1).
//
// Elements are (c0 + c1*u). G2 point coordinates and all higher tower levels
// are built on this type. The representation is shared by both curves; only
// the modulus and the sextic non-residue xi differ.

import "math/big"

// fp2 represents an element of F_p^2 as (c0 + c1*u).
type fp2 struct {
	c0, c1 *big.Int
}

func newFp2(c0, c1 *big.Int) *fp2 {
	return &fp2{c0: new(big.Int).Set(c0), c1: new(big.Int).Set(c1)}
}

func fp2Zero() *fp2 {
	return &fp2{c0: new(big.Int), c1: new(big.Int)}
}

func fp2One() *fp2 {
	return &fp2{c0: big.NewInt(1), c1: new(big.Int)}
}

func (e *fp2) isZero() bool {
	return e.c0.Sign() == 0 && e.c1.Sign() == 0
}

func (e *fp2) isOne() bool {
	return e.c0.Cmp(big.NewInt(1)) == 0 && e.c1.Sign() == 0
}

func (c *Curve) fp2Equal(a, b *fp2) bool {
	a0 := new(big.Int).Mod(a.c0, c.p)
	a1 := new(big.Int).Mod(a.c1, c.p)
	b0 := new(big.Int).Mod(b.c0, c.p)
	b1 := new(big.Int).Mod(b.c1, c.p)
	return a0.Cmp(b0) == 0 && a1.Cmp(b1) == 0
}

// fp2Add returns a + b.
func (c *Curve) fp2Add(a, b *fp2) *fp2 {
	return &fp2{
		c0: c.fpAdd(a.c0, b.c0),
		c1: c.fpAdd(a.c1, b.c1),
	}
}

// fp2Sub returns a - b.
func (c *Curve) fp2Sub(a, b *fp2) *fp2 {
	return &fp2{
		c0: c.fpSub(a.c0, b.c0),
		c1: c.fpSub(a.c1, b.c1),
	}
}

// fp2Mul returns a * b.
// (a0 + a1*u)(b0 + b1*u) = (a0*b0 - a1*b1) + (a0*b1 + a1*b0)*u
func (c *Curve) fp2Mul(a, b *fp2) *fp2 {
	// Karatsuba: three base field multiplications.
	// v0 = a0*b0, v1 = a1*b1
	// real = v0 - v1
	// imag = (a0+a1)(b0+b1) - v0 - v1
	v0 := c.fpMul(a.c0, b.c0)
	v1 := c.fpMul(a.c1, b.c1)
	return &fp2{
		c0: c.fpSub(v0, v1),
		c1: c.fpSub(c.fpMul(c.fpAdd(a.c0, a.c1), c.fpAdd(b.c0, b.c1)), c.fpAdd(v0, v1)),
	}
}

// fp2Sqr returns a^2.
// (a0 + a1*u)^2 = (a0+a1)(a0-a1) + 2*a0*a1*u
func (c *Curve) fp2Sqr(a *fp2) *fp2 {
	ab := c.fpMul(a.c0, a.c1)
	return &fp2{
		c0: c.fpMul(c.fpAdd(a.c0, a.c1), c.fpSub(a.c0, a.c1)),
		c1: c.fpAdd(ab, ab),
	}
}

// fp2Neg returns -a.
func (c *Curve) fp2Neg(a *fp2) *fp2 {
	return &fp2{
		c0: c.fpNeg(a.c0),
		c1: c.fpNeg(a.c1),
	}
}

// fp2Conj returns the conjugate (c0 - c1*u), which is the p-power Frobenius
// on F_p^2.
func (c *Curve) fp2Conj(a *fp2) *fp2 {
	return &fp2{
		c0: new(big.Int).Set(a.c0),
		c1: c.fpNeg(a.c1),
	}
}

// fp2Inv returns a^(-1).
// (a0 + a1*u)^(-1) = (a0 - a1*u) / (a0^2 + a1^2)
func (c *Curve) fp2Inv(a *fp2) *fp2 {
	t := c.fpAdd(c.fpSqr(a.c0), c.fpSqr(a.c1))
	inv := c.fpInv(t)
	return &fp2{
		c0: c.fpMul(a.c0, inv),
		c1: c.fpMul(c.fpNeg(a.c1), inv),
	}
}

// fp2MulScalar returns a * s for s in F_p.
func (c *Curve) fp2MulScalar(a *fp2, s *big.Int) *fp2 {
	return &fp2{
		c0: c.fpMul(a.c0, s),
		c1: c.fpMul(a.c1, s),
	}
}

// fp2Double returns 2a.
func (c *Curve) fp2Double(a *fp2) *fp2 {
	return c.fp2Add(a, a)
}

// fp2MulByNonResidue multiplies by the curve's sextic non-residue xi.
// BN254 uses xi = 9+u, BLS12-381 uses xi = 1+u; both reduce to one generic
// fp2 multiplication since xi is part of the curve configuration.
func (c *Curve) fp2MulByNonResidue(a *fp2) *fp2 {
	return c.fp2Mul(a, c.xi)
}

// fp2Exp returns a^e by square-and-multiply. Only used at curve construction
// to derive the Frobenius coefficient tables.
func (c *Curve) fp2Exp(a *fp2, e *big.Int) *fp2 {
	r := fp2One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = c.fp2Sqr(r)
		if e.Bit(i) == 1 {
			r = c.fp2Mul(r, a)
		}
	}
	return r
}
