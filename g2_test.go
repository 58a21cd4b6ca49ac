package pairing

import (
	"math/big"
	"testing"
)

// TestG2Generator verifies the twist generators satisfy y^2 = x^3 + b'.
func TestG2Generator(t *testing.T) {
	for _, c := range testCurves() {
		g := c.G2Generator()
		if !c.G2IsOnCurve(g) {
			t.Fatalf("%s: G2 generator not on twist curve", c.Name)
		}
		bad := NewG2Affine(g.x.c0, g.x.c1, g.y.c0, c.fpAdd(g.y.c1, big.NewInt(1)))
		if c.G2IsOnCurve(bad) {
			t.Fatalf("%s: off-curve twist point accepted", c.Name)
		}
	}
}

// TestG2AddIdentity verifies Q + 0 = 0 + Q = Q.
func TestG2AddIdentity(t *testing.T) {
	for _, c := range testCurves() {
		g := c.G2Generator()
		inf := G2Infinity()
		if !c.G2Equal(c.G2Add(g, inf), g) {
			t.Fatalf("%s: Q + 0 != Q", c.Name)
		}
		if !c.G2Equal(c.G2Add(inf, g), g) {
			t.Fatalf("%s: 0 + Q != Q", c.Name)
		}
	}
}

// TestG2AddInverse verifies Q + (-Q) = 0 and the infinity negation
// convention.
func TestG2AddInverse(t *testing.T) {
	for _, c := range testCurves() {
		g := c.G2Generator()
		if !c.G2Add(g, c.G2Neg(g)).IsInfinity() {
			t.Fatalf("%s: Q + (-Q) != 0", c.Name)
		}

		negInf := c.G2Neg(G2Infinity())
		if !negInf.IsInfinity() {
			t.Fatalf("%s: -0 should stay the identity", c.Name)
		}
		if !negInf.y.isOne() {
			t.Fatalf("%s: negated identity must carry y = 1", c.Name)
		}
	}
}

// TestG2Double verifies doubling agrees with addition and stays on curve.
func TestG2Double(t *testing.T) {
	for _, c := range testCurves() {
		g := c.G2Generator()
		d := c.g2ToAffine(c.g2Double(c.g2FromAffine(g)))
		if !c.G2IsOnCurve(d) {
			t.Fatalf("%s: 2Q not on twist curve", c.Name)
		}
		if !c.G2Equal(d, c.G2Add(g, g)) {
			t.Fatalf("%s: double != add", c.Name)
		}
	}
}

// TestG2ScalarMul verifies the scalar multiplication edge cases and the
// group order.
func TestG2ScalarMul(t *testing.T) {
	for _, c := range testCurves() {
		g := c.G2Generator()

		if !c.G2Equal(c.G2ScalarMul(g, big.NewInt(1)), g) {
			t.Fatalf("%s: 1*Q != Q", c.Name)
		}
		if !c.G2ScalarMul(g, big.NewInt(0)).IsInfinity() {
			t.Fatalf("%s: 0*Q != 0", c.Name)
		}
		if !c.G2ScalarMul(g, c.r).IsInfinity() {
			t.Fatalf("%s: r*Q != 0", c.Name)
		}

		a := big.NewInt(31337)
		b := big.NewInt(271828)
		lhs := c.G2ScalarMul(g, new(big.Int).Add(a, b))
		rhs := c.G2Add(c.G2ScalarMul(g, a), c.G2ScalarMul(g, b))
		if !c.G2Equal(lhs, rhs) {
			t.Fatalf("%s: scalar mul not additive", c.Name)
		}
	}
}
