package pairing

// Cubic extension F_p^6 = F_p^2[v]/(v^3 - xi).
//
// Elements are (c0 + c1*v + c2*v^2) with coefficients in F_p^2. The
// non-residue xi comes from the curve configuration, so the same code serves
// BN254 (xi = 9+u) and BLS12-381 (xi = 1+u).

// fp6 represents an element of F_p^6.
type fp6 struct {
	c0, c1, c2 *fp2
}

func fp6Zero() *fp6 {
	return &fp6{c0: fp2Zero(), c1: fp2Zero(), c2: fp2Zero()}
}

func fp6One() *fp6 {
	return &fp6{c0: fp2One(), c1: fp2Zero(), c2: fp2Zero()}
}

func (e *fp6) isZero() bool {
	return e.c0.isZero() && e.c1.isZero() && e.c2.isZero()
}

func fp6Copy(e *fp6) *fp6 {
	return &fp6{
		c0: newFp2(e.c0.c0, e.c0.c1),
		c1: newFp2(e.c1.c0, e.c1.c1),
		c2: newFp2(e.c2.c0, e.c2.c1),
	}
}

// fp6Add returns a + b.
func (c *Curve) fp6Add(a, b *fp6) *fp6 {
	return &fp6{
		c0: c.fp2Add(a.c0, b.c0),
		c1: c.fp2Add(a.c1, b.c1),
		c2: c.fp2Add(a.c2, b.c2),
	}
}

// fp6Sub returns a - b.
func (c *Curve) fp6Sub(a, b *fp6) *fp6 {
	return &fp6{
		c0: c.fp2Sub(a.c0, b.c0),
		c1: c.fp2Sub(a.c1, b.c1),
		c2: c.fp2Sub(a.c2, b.c2),
	}
}

// fp6Neg returns -a.
func (c *Curve) fp6Neg(a *fp6) *fp6 {
	return &fp6{
		c0: c.fp2Neg(a.c0),
		c1: c.fp2Neg(a.c1),
		c2: c.fp2Neg(a.c2),
	}
}

// fp6Double returns 2a.
func (c *Curve) fp6Double(a *fp6) *fp6 {
	return c.fp6Add(a, a)
}

// fp6Mul returns a * b by interleaved Karatsuba over the tower.
// v^3 = xi, so overflow past v^2 wraps multiplied by xi.
func (c *Curve) fp6Mul(a, b *fp6) *fp6 {
	t0 := c.fp2Mul(a.c0, b.c0)
	t1 := c.fp2Mul(a.c1, b.c1)
	t2 := c.fp2Mul(a.c2, b.c2)

	// c0 = t0 + xi*((a1+a2)(b1+b2) - t1 - t2)
	c0 := c.fp2Add(t0, c.fp2MulByNonResidue(
		c.fp2Sub(c.fp2Sub(c.fp2Mul(c.fp2Add(a.c1, a.c2), c.fp2Add(b.c1, b.c2)), t1), t2)))

	// c1 = (a0+a1)(b0+b1) - t0 - t1 + xi*t2
	c1 := c.fp2Add(
		c.fp2Sub(c.fp2Sub(c.fp2Mul(c.fp2Add(a.c0, a.c1), c.fp2Add(b.c0, b.c1)), t0), t1),
		c.fp2MulByNonResidue(t2))

	// c2 = (a0+a2)(b0+b2) - t0 - t2 + t1
	c2 := c.fp2Add(
		c.fp2Sub(c.fp2Sub(c.fp2Mul(c.fp2Add(a.c0, a.c2), c.fp2Add(b.c0, b.c2)), t0), t2),
		t1)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

// fp6Sqr returns a^2 using the 5-multiplication squaring identity.
func (c *Curve) fp6Sqr(a *fp6) *fp6 {
	s0 := c.fp2Sqr(a.c0)
	ab := c.fp2Mul(a.c0, a.c1)
	s1 := c.fp2Add(ab, ab)
	s2 := c.fp2Sqr(c.fp2Sub(c.fp2Add(a.c0, a.c2), a.c1))
	bc := c.fp2Mul(a.c1, a.c2)
	s3 := c.fp2Add(bc, bc)
	s4 := c.fp2Sqr(a.c2)

	c0 := c.fp2Add(s0, c.fp2MulByNonResidue(s3))
	c1 := c.fp2Add(s1, c.fp2MulByNonResidue(s4))
	c2 := c.fp2Sub(c.fp2Sub(c.fp2Add(c.fp2Add(s1, s2), s3), s0), s4)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

// fp6Inv returns a^(-1) by norm reduction to one Fp2 inverse.
// A = c0^2 - xi*c1*c2
// B = xi*c2^2 - c0*c1
// C = c1^2 - c0*c2
// a^(-1) = (A + B*v + C*v^2) / (c0*A + xi*(c2*B + c1*C))
func (c *Curve) fp6Inv(a *fp6) *fp6 {
	A := c.fp2Sub(c.fp2Sqr(a.c0), c.fp2MulByNonResidue(c.fp2Mul(a.c1, a.c2)))
	B := c.fp2Sub(c.fp2MulByNonResidue(c.fp2Sqr(a.c2)), c.fp2Mul(a.c0, a.c1))
	C := c.fp2Sub(c.fp2Sqr(a.c1), c.fp2Mul(a.c0, a.c2))

	f := c.fp2Add(c.fp2Mul(a.c0, A),
		c.fp2MulByNonResidue(c.fp2Add(c.fp2Mul(a.c2, B), c.fp2Mul(a.c1, C))))
	fInv := c.fp2Inv(f)

	return &fp6{
		c0: c.fp2Mul(A, fInv),
		c1: c.fp2Mul(B, fInv),
		c2: c.fp2Mul(C, fInv),
	}
}

// fp6MulByV multiplies by the tower variable v: coefficients rotate with the
// wrapped one picking up a factor of xi.
// (c0 + c1*v + c2*v^2) * v = xi*c2 + c0*v + c1*v^2
func (c *Curve) fp6MulByV(a *fp6) *fp6 {
	return &fp6{
		c0: c.fp2MulByNonResidue(a.c2),
		c1: newFp2(a.c0.c0, a.c0.c1),
		c2: newFp2(a.c1.c0, a.c1.c1),
	}
}

// fp6MulByFp2 multiplies every coefficient by the Fp2 scalar s.
func (c *Curve) fp6MulByFp2(a *fp6, s *fp2) *fp6 {
	return &fp6{
		c0: c.fp2Mul(a.c0, s),
		c1: c.fp2Mul(a.c1, s),
		c2: c.fp2Mul(a.c2, s),
	}
}

// fp6MulBy01 multiplies a by the sparse element (b0 + b1*v).
func (c *Curve) fp6MulBy01(a *fp6, b0, b1 *fp2) *fp6 {
	t0 := c.fp2Mul(a.c0, b0)
	t1 := c.fp2Mul(a.c1, b1)

	c0 := c.fp2Add(t0, c.fp2MulByNonResidue(
		c.fp2Sub(c.fp2Mul(c.fp2Add(a.c1, a.c2), b1), t1)))
	c1 := c.fp2Sub(c.fp2Sub(c.fp2Mul(c.fp2Add(a.c0, a.c1), c.fp2Add(b0, b1)), t0), t1)
	c2 := c.fp2Add(c.fp2Sub(c.fp2Mul(c.fp2Add(a.c0, a.c2), b0), t0), t1)

	return &fp6{c0: c0, c1: c1, c2: c2}
}

// fp6MulBy1 multiplies a by the sparse element (b1*v).
// (c0 + c1*v + c2*v^2) * b1*v = xi*c2*b1 + c0*b1*v + c1*b1*v^2
func (c *Curve) fp6MulBy1(a *fp6, b1 *fp2) *fp6 {
	return &fp6{
		c0: c.fp2MulByNonResidue(c.fp2Mul(a.c2, b1)),
		c1: c.fp2Mul(a.c0, b1),
		c2: c.fp2Mul(a.c1, b1),
	}
}
