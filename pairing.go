package pairing

// Public pairing API.

// GT is an element of the pairing target group, the order-r subgroup of
// F_p^12.
type GT struct {
	c *Curve
	v *fp12
}

// IsOne reports whether g is the identity of GT.
func (g *GT) IsOne() bool {
	return g.v.isOne()
}

// Equal reports whether g and h are the same GT element.
func (g *GT) Equal(h *GT) bool {
	return g.c.fp12Equal(g.v, h.v)
}

// Mul returns g * h.
func (g *GT) Mul(h *GT) *GT {
	return &GT{c: g.c, v: g.c.fp12Mul(g.v, h.v)}
}

// Pair computes the optimal ate pairing e(p, q). Either input at infinity
// yields the identity of GT. Inputs are assumed to lie in the prime-order
// subgroups.
func (c *Curve) Pair(p *G1Affine, q *G2Affine) *GT {
	if p.IsInfinity() || q.IsInfinity() {
		return &GT{c: c, v: fp12One()}
	}
	f := c.millerLoop(p.x, p.y, q.x, q.y)
	return &GT{c: c, v: c.finalExp(f)}
}

// millerProduct accumulates the Miller loop values of the given pairs
// without the final exponentiation. Pairs with an infinite member contribute
// the identity.
func (c *Curve) millerProduct(ps []*G1Affine, qs []*G2Affine) *fp12 {
	f := fp12One()
	for i := range ps {
		if ps[i].IsInfinity() || qs[i].IsInfinity() {
			continue
		}
		f = c.fp12Mul(f, c.millerLoop(ps[i].x, ps[i].y, qs[i].x, qs[i].y))
	}
	return f
}

// PairingEquality reports whether e(p1, q1) == e(p2, q2).
//
// It computes the combined Miller value fg = miller(p1, q1) * miller(p2, -q2)
// and decides whether fg is an r-th power residue, which holds exactly when
// the two pairings agree.
//
// For BN254 the decision derives a residue witness (c, u) with
// c^lambda * u == fg in-process and verifies it; a failed derivation or
// verification is the legitimate negative outcome. For BLS12-381 the full
// final exponentiation of fg is compared against one.
func (c *Curve) PairingEquality(p1 *G1Affine, q1 *G2Affine, p2 *G1Affine, q2 *G2Affine) bool {
	fg := c.millerProduct(
		[]*G1Affine{p1, p2},
		[]*G2Affine{q1, c.G2Neg(q2)},
	)
	if fg.isOne() {
		return true
	}

	if c.family == familyBN {
		w, u, ok := c.residueWitness(fg)
		if !ok {
			return false
		}
		return c.verifyResidueWitness(fg, w, u)
	}

	return c.finalExp(fg).isOne()
}
