package pairing

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto/bn256"
)

// gethG1 decodes one of our G1 encodings with go-ethereum, which validates
// the point on the way in.
func gethG1(t *testing.T, enc []byte) *bn256.G1 {
	t.Helper()
	p := new(bn256.G1)
	if _, err := p.Unmarshal(enc); err != nil {
		t.Fatalf("go-ethereum rejected G1 encoding: %v", err)
	}
	return p
}

// gethG2 decodes one of our G2 encodings with go-ethereum.
func gethG2(t *testing.T, enc []byte) *bn256.G2 {
	t.Helper()
	q := new(bn256.G2)
	if _, err := q.Unmarshal(enc); err != nil {
		t.Fatalf("go-ethereum rejected G2 encoding: %v", err)
	}
	return q
}

// TestBN254CrossCheckMarshal verifies go-ethereum accepts our point
// encodings of generator multiples and re-serializes them byte-for-byte.
func TestBN254CrossCheckMarshal(t *testing.T) {
	c := BN254()
	for _, k := range []int64{1, 2, 7, 123456789} {
		scalar := big.NewInt(k)

		ours := c.MarshalG1(c.G1ScalarMul(c.G1Generator(), scalar))
		if theirs := gethG1(t, ours).Marshal(); !bytes.Equal(ours, theirs) {
			t.Fatalf("G1 encoding of %d*G diverges from go-ethereum", k)
		}

		ours = c.MarshalG2(c.G2ScalarMul(c.G2Generator(), scalar))
		if theirs := gethG2(t, ours).Marshal(); !bytes.Equal(ours, theirs) {
			t.Fatalf("G2 encoding of %d*G diverges from go-ethereum", k)
		}
	}
}

// TestBN254CrossCheckEquality compares the pairing equality predicate
// against go-ethereum's PairingCheck on the same generator multiples.
func TestBN254CrossCheckEquality(t *testing.T) {
	c := BN254()
	p := c.G1Generator()
	q := c.G2Generator()

	cases := []struct {
		a1, b1, a2, b2 int64
	}{
		{1, 1, 1, 1},
		{2, 3, 3, 2},
		{2, 3, 6, 1},
		{5, 7, 7, 5},
		{2, 3, 5, 1},
		{1, 1, 2, 1},
		{4, 4, 4, 3},
	}
	for _, tc := range cases {
		p1 := c.G1ScalarMul(p, big.NewInt(tc.a1))
		q1 := c.G2ScalarMul(q, big.NewInt(tc.b1))
		p2 := c.G1ScalarMul(p, big.NewInt(tc.a2))
		q2 := c.G2ScalarMul(q, big.NewInt(tc.b2))

		ours := c.PairingEquality(p1, q1, p2, q2)

		// PairingCheck decides e(p1, q1) * e(-p2, q2) == 1; the negation
		// happens on our side before handing the point to go-ethereum.
		theirs := bn256.PairingCheck(
			[]*bn256.G1{gethG1(t, c.MarshalG1(p1)), gethG1(t, c.MarshalG1(c.G1Neg(p2)))},
			[]*bn256.G2{gethG2(t, c.MarshalG2(q1)), gethG2(t, c.MarshalG2(q2))},
		)

		if ours != theirs {
			t.Fatalf("equality(%d,%d vs %d,%d): got %v, go-ethereum says %v",
				tc.a1, tc.b1, tc.a2, tc.b2, ours, theirs)
		}
	}
}
