package pairing

import (
	"math/big"
	"testing"
)

// TestPairBilinearity verifies e(aP, bQ) == e(P, Q)^(ab) on small scalars.
func TestPairBilinearity(t *testing.T) {
	for _, c := range testCurves() {
		p := c.G1Generator()
		q := c.G2Generator()
		e := c.Pair(p, q)

		left := c.Pair(c.G1ScalarMul(p, big.NewInt(2)), q)
		right := c.Pair(p, c.G2ScalarMul(q, big.NewInt(2)))
		if !left.Equal(right) {
			t.Fatalf("%s: e(2P, Q) != e(P, 2Q)", c.Name)
		}
		if !left.Equal(e.Mul(e)) {
			t.Fatalf("%s: e(2P, Q) != e(P, Q)^2", c.Name)
		}

		ab := c.Pair(c.G1ScalarMul(p, big.NewInt(3)), c.G2ScalarMul(q, big.NewInt(5)))
		fifteen := c.Pair(p, c.G2ScalarMul(q, big.NewInt(15)))
		if !ab.Equal(fifteen) {
			t.Fatalf("%s: e(3P, 5Q) != e(P, 15Q)", c.Name)
		}
	}
}

// TestPairNonDegenerate verifies e(G1, G2) != 1 for the generators.
func TestPairNonDegenerate(t *testing.T) {
	for _, c := range testCurves() {
		if c.Pair(c.G1Generator(), c.G2Generator()).IsOne() {
			t.Fatalf("%s: pairing of generators is degenerate", c.Name)
		}
	}
}

// TestPairNegation verifies e(-P, Q) == e(P, -Q) and that it cancels
// e(P, Q).
func TestPairNegation(t *testing.T) {
	for _, c := range testCurves() {
		p := c.G1Generator()
		q := c.G2Generator()

		negP := c.Pair(c.G1Neg(p), q)
		negQ := c.Pair(p, c.G2Neg(q))
		if !negP.Equal(negQ) {
			t.Fatalf("%s: e(-P, Q) != e(P, -Q)", c.Name)
		}
		if !negP.Mul(c.Pair(p, q)).IsOne() {
			t.Fatalf("%s: e(-P, Q) * e(P, Q) != 1", c.Name)
		}
	}
}

// TestPairInfinity verifies either infinite input yields the GT identity.
func TestPairInfinity(t *testing.T) {
	for _, c := range testCurves() {
		if !c.Pair(G1Infinity(), c.G2Generator()).IsOne() {
			t.Fatalf("%s: e(0, Q) != 1", c.Name)
		}
		if !c.Pair(c.G1Generator(), G2Infinity()).IsOne() {
			t.Fatalf("%s: e(P, 0) != 1", c.Name)
		}
	}
}

// TestPairingEquality covers the positive and negative equality paths on
// both curves.
func TestPairingEquality(t *testing.T) {
	for _, c := range testCurves() {
		p := c.G1Generator()
		q := c.G2Generator()

		// e(2P, 3Q) == e(3P, 2Q).
		if !c.PairingEquality(
			c.G1ScalarMul(p, big.NewInt(2)), c.G2ScalarMul(q, big.NewInt(3)),
			c.G1ScalarMul(p, big.NewInt(3)), c.G2ScalarMul(q, big.NewInt(2)),
		) {
			t.Fatalf("%s: equal pairings reported unequal", c.Name)
		}

		// e(2P, 3Q) != e(P, Q).
		if c.PairingEquality(
			c.G1ScalarMul(p, big.NewInt(2)), c.G2ScalarMul(q, big.NewInt(3)),
			p, q,
		) {
			t.Fatalf("%s: unequal pairings reported equal", c.Name)
		}
	}
}

// TestPairingEqualityInfinity checks the degenerate cases of the equality
// predicate.
func TestPairingEqualityInfinity(t *testing.T) {
	for _, c := range testCurves() {
		p := c.G1Generator()
		q := c.G2Generator()

		// Both sides identity.
		if !c.PairingEquality(G1Infinity(), q, p, G2Infinity()) {
			t.Fatalf("%s: identity pairings reported unequal", c.Name)
		}
		// Identity against a non-trivial pairing.
		if c.PairingEquality(G1Infinity(), q, p, q) {
			t.Fatalf("%s: identity equal to non-trivial pairing", c.Name)
		}
	}
}
