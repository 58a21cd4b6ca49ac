package pairing

// Quadratic extension F_p^12 = F_p^6[w]/(w^2 - v), the pairing target field.
// GT lives in the order-r subgroup of the cyclotomic subgroup of F_p^12.

import "math/big"

// fp12 represents an element of F_p^12 as (c0 + c1*w).
type fp12 struct {
	c0, c1 *fp6
}

func fp12One() *fp12 {
	return &fp12{c0: fp6One(), c1: fp6Zero()}
}

func fp12Copy(e *fp12) *fp12 {
	return &fp12{c0: fp6Copy(e.c0), c1: fp6Copy(e.c1)}
}

func (e *fp12) isOne() bool {
	return e.c0.c0.isOne() && e.c0.c1.isZero() && e.c0.c2.isZero() && e.c1.isZero()
}

func (c *Curve) fp12Equal(a, b *fp12) bool {
	return c.fp2Equal(a.c0.c0, b.c0.c0) && c.fp2Equal(a.c0.c1, b.c0.c1) &&
		c.fp2Equal(a.c0.c2, b.c0.c2) && c.fp2Equal(a.c1.c0, b.c1.c0) &&
		c.fp2Equal(a.c1.c1, b.c1.c1) && c.fp2Equal(a.c1.c2, b.c1.c2)
}

// fp12Mul returns a * b.
// (a0 + a1*w)(b0 + b1*w) = (a0*b0 + a1*b1*v) + ((a0+a1)(b0+b1) - a0*b0 - a1*b1)*w
func (c *Curve) fp12Mul(a, b *fp12) *fp12 {
	t0 := c.fp6Mul(a.c0, b.c0)
	t1 := c.fp6Mul(a.c1, b.c1)

	c0 := c.fp6Add(t0, c.fp6MulByV(t1))
	c1 := c.fp6Sub(c.fp6Sub(c.fp6Mul(c.fp6Add(a.c0, a.c1), c.fp6Add(b.c0, b.c1)), t0), t1)

	return &fp12{c0: c0, c1: c1}
}

// fp12Sqr returns a^2.
func (c *Curve) fp12Sqr(a *fp12) *fp12 {
	ab := c.fp6Mul(a.c0, a.c1)

	// a0^2 + a1^2*v = (a0+a1)(a0+a1*v) - ab - ab*v
	t := c.fp6Add(a.c0, a.c1)
	u := c.fp6Add(a.c0, c.fp6MulByV(a.c1))
	c0 := c.fp6Sub(c.fp6Sub(c.fp6Mul(t, u), ab), c.fp6MulByV(ab))
	c1 := c.fp6Add(ab, ab)

	return &fp12{c0: c0, c1: c1}
}

// fp12Inv returns a^(-1).
// (a0 + a1*w)^(-1) = (a0 - a1*w) / (a0^2 - a1^2*v)
func (c *Curve) fp12Inv(a *fp12) *fp12 {
	t := c.fp6Sub(c.fp6Sqr(a.c0), c.fp6MulByV(c.fp6Sqr(a.c1)))
	tInv := c.fp6Inv(t)
	return &fp12{
		c0: c.fp6Mul(a.c0, tInv),
		c1: c.fp6Neg(c.fp6Mul(a.c1, tInv)),
	}
}

// fp12Conj returns the conjugate a.c0 - a.c1*w, which is a^(p^6). For
// unitary elements (Miller loop outputs after the easy part) this equals the
// inverse.
func (c *Curve) fp12Conj(a *fp12) *fp12 {
	return &fp12{
		c0: fp6Copy(a.c0),
		c1: c.fp6Neg(a.c1),
	}
}

// fp12Exp returns a^k by square-and-multiply.
func (c *Curve) fp12Exp(a *fp12, k *big.Int) *fp12 {
	if k.Sign() == 0 {
		return fp12One()
	}
	base := fp12Copy(a)
	r := fp12One()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.fp12Sqr(r)
		if k.Bit(i) == 1 {
			r = c.fp12Mul(r, base)
		}
	}
	return r
}

// fp12Frobenius returns a^(p^n) for n = 1..3 using the derived coefficient
// tables: for odd n each Fp2 coefficient is conjugated, then five of the six
// tower coefficients are scaled by frob[n][k].
func (c *Curve) fp12Frobenius(a *fp12, n int) *fp12 {
	conj := func(e *fp2) *fp2 { return c.fp2Conj(e) }
	if n%2 == 0 {
		conj = func(e *fp2) *fp2 { return newFp2(e.c0, e.c1) }
	}
	g := c.frob[n]
	return &fp12{
		c0: &fp6{
			c0: conj(a.c0.c0),
			c1: c.fp2Mul(conj(a.c0.c1), g[2]),
			c2: c.fp2Mul(conj(a.c0.c2), g[4]),
		},
		c1: &fp6{
			c0: c.fp2Mul(conj(a.c1.c0), g[1]),
			c1: c.fp2Mul(conj(a.c1.c1), g[3]),
			c2: c.fp2Mul(conj(a.c1.c2), g[5]),
		},
	}
}

// fp4Sqr is the Karatsuba squaring in F_p^4 = F_p^2[w]/(w^2-v) used by the
// cyclotomic squaring.
func (c *Curve) fp4Sqr(a0, a1 *fp2) (c0, c1 *fp2) {
	t0 := c.fp2Sqr(a0)
	t1 := c.fp2Sqr(a1)
	c0 = c.fp2Add(c.fp2MulByNonResidue(t1), t0)
	c1 = c.fp2Sub(c.fp2Sub(c.fp2Sqr(c.fp2Add(a0, a1)), t0), t1)
	return
}

// fp12CyclotomicSqr squares an element of the cyclotomic subgroup using the
// Granger-Scott identity built from three fp4 squarings. Only valid after
// the easy part of the final exponentiation has projected into the subgroup.
func (c *Curve) fp12CyclotomicSqr(a *fp12) *fp12 {
	t3, t4 := c.fp4Sqr(a.c0.c0, a.c1.c1)
	b00 := c.fp2Add(c.fp2Double(c.fp2Sub(t3, a.c0.c0)), t3)
	b11 := c.fp2Add(c.fp2Double(c.fp2Add(t4, a.c1.c1)), t4)

	t3, t4 = c.fp4Sqr(a.c1.c0, a.c0.c2)
	t5, t6 := c.fp4Sqr(a.c0.c1, a.c1.c2)

	b01 := c.fp2Add(c.fp2Double(c.fp2Sub(t3, a.c0.c1)), t3)
	b12 := c.fp2Add(c.fp2Double(c.fp2Add(t4, a.c1.c2)), t4)

	t3 = c.fp2MulByNonResidue(t6)
	b10 := c.fp2Add(c.fp2Double(c.fp2Add(t3, a.c1.c0)), t3)
	b02 := c.fp2Add(c.fp2Double(c.fp2Sub(t5, a.c0.c2)), t5)

	return &fp12{
		c0: &fp6{c0: b00, c1: b01, c2: b02},
		c1: &fp6{c0: b10, c1: b11, c2: b12},
	}
}

// fp12CyclotomicExp returns a^k using cyclotomic squarings. The caller must
// guarantee a lies in the cyclotomic subgroup.
func (c *Curve) fp12CyclotomicExp(a *fp12, k *big.Int) *fp12 {
	if k.Sign() == 0 {
		return fp12One()
	}
	base := fp12Copy(a)
	r := fp12One()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.fp12CyclotomicSqr(r)
		if k.Bit(i) == 1 {
			r = c.fp12Mul(r, base)
		}
	}
	return r
}

// fp12MulBy034 multiplies f by the sparse line element with tower slots
// c0 = (l0, 0, 0) and c1 = (l3, l4, 0). This is the line shape produced by
// the BN254 D-twist.
func (c *Curve) fp12MulBy034(f *fp12, l0, l3, l4 *fp2) *fp12 {
	a2 := c.fp6MulBy01(f.c1, l3, l4)
	t3 := c.fp6MulByFp2(f.c0, l0)

	// Karatsuba with lineC0 + lineC1 = (l0+l3, l4, 0).
	c1 := c.fp6Sub(c.fp6Sub(
		c.fp6MulBy01(c.fp6Add(f.c1, f.c0), c.fp2Add(l3, l0), l4), a2), t3)
	c0 := c.fp6Add(c.fp6MulByV(a2), t3)

	return &fp12{c0: c0, c1: c1}
}

// fp12MulBy014 multiplies f by the sparse line element with tower slots
// c0 = (l0, l1, 0) and c1 = (0, l4, 0). This is the line shape produced by
// the BLS12-381 M-twist.
func (c *Curve) fp12MulBy014(f *fp12, l0, l1, l4 *fp2) *fp12 {
	t0 := c.fp6MulBy01(f.c0, l0, l1)
	t1 := c.fp6MulBy1(f.c1, l4)

	c1 := c.fp6Sub(c.fp6Sub(
		c.fp6MulBy01(c.fp6Add(f.c1, f.c0), l0, c.fp2Add(l1, l4)), t0), t1)
	c0 := c.fp6Add(c.fp6MulByV(t1), t0)

	return &fp12{c0: c0, c1: c1}
}
