package pairing

// Final exponentiation f^((p^12-1)/r), split into the shared easy part
// f^((p^6-1)(p^2+1)) and a per-curve hard part f^((p^4-p^2+1)/r).

// finalExp maps a Miller loop output into GT. Panics on zero input, which
// cannot be produced by the loop for points on the curve.
func (c *Curve) finalExp(f *fp12) *fp12 {
	// Easy part: f^(p^6-1) = conj(f) * f^(-1), then ^(p^2+1).
	f1 := c.fp12Mul(c.fp12Conj(f), c.fp12Inv(f))
	f2 := c.fp12Mul(c.fp12Frobenius(f1, 2), f1)

	if c.family == familyBN {
		return c.finalExpHardBN(f2)
	}
	return c.finalExpHardBLS(f2)
}

// finalExpHardBN computes the BN hard part with the multiply/Frobenius
// schedule over the u-power ladder. The input is in the cyclotomic subgroup,
// so the u-powers use cyclotomic squarings.
func (c *Curve) finalExpHardBN(f *fp12) *fp12 {
	fu := c.fp12CyclotomicExp(f, c.u)
	fu2 := c.fp12CyclotomicExp(fu, c.u)
	fu3 := c.fp12CyclotomicExp(fu2, c.u)

	fp1 := c.fp12Frobenius(f, 1)
	fp2 := c.fp12Frobenius(f, 2)
	fp3 := c.fp12Frobenius(f, 3)

	fup := c.fp12Frobenius(fu, 1)
	fu2p := c.fp12Frobenius(fu2, 1)
	fu3p := c.fp12Frobenius(fu3, 1)
	fu2p2 := c.fp12Frobenius(fu2, 2)

	y0 := c.fp12Mul(c.fp12Mul(fp1, fp2), fp3)
	y1 := c.fp12Conj(f)
	y2 := fu2p2
	y3 := c.fp12Conj(fup)
	y4 := c.fp12Mul(c.fp12Conj(fu), c.fp12Conj(fu2p))
	y5 := c.fp12Conj(fu2)
	y6 := c.fp12Conj(c.fp12Mul(fu3, fu3p))

	t0 := c.fp12Mul(c.fp12Mul(c.fp12CyclotomicSqr(y6), y4), y5)
	t1 := c.fp12Mul(c.fp12Mul(y3, y5), t0)
	t0 = c.fp12Mul(t0, y2)
	t1 = c.fp12Mul(c.fp12CyclotomicSqr(t1), t0)
	t1 = c.fp12CyclotomicSqr(t1)
	t0 = c.fp12Mul(t1, y1)
	t1 = c.fp12Mul(t1, y0)
	t0 = c.fp12Mul(c.fp12CyclotomicSqr(t0), t1)

	return t0
}

// expByX raises a cyclotomic element to the BLS parameter x, folding in the
// sign of x.
func (c *Curve) expByX(a *fp12) *fp12 {
	r := c.fp12CyclotomicExp(a, c.u)
	if c.uNeg {
		r = c.fp12Conj(r)
	}
	return r
}

// finalExpHardBLS computes the BLS hard part via the addition-chain
// factorization of (p^4-p^2+1)/r in terms of x.
func (c *Curve) finalExpHardBLS(f *fp12) *fp12 {
	t1 := c.fp12Conj(c.fp12CyclotomicSqr(f))
	t3 := c.expByX(f)
	t4 := c.fp12CyclotomicSqr(t3)
	t5 := c.fp12Mul(t1, t3)
	t1 = c.expByX(t5)
	t0 := c.expByX(t1)
	t6 := c.expByX(t0)

	t6 = c.fp12Mul(t6, t4)
	t4 = c.expByX(t6)
	t5 = c.fp12Conj(t5)
	t4 = c.fp12Mul(c.fp12Mul(t4, t5), f)
	t5 = c.fp12Conj(f)
	t1 = c.fp12Mul(t1, f)
	t1 = c.fp12Frobenius(t1, 3)
	t6 = c.fp12Mul(t6, t5)
	t6 = c.fp12Frobenius(t6, 1)
	t3 = c.fp12Mul(t3, t0)
	t3 = c.fp12Frobenius(t3, 2)
	t3 = c.fp12Mul(t3, t1)
	t3 = c.fp12Mul(t3, t6)

	return c.fp12Mul(t3, t4)
}
