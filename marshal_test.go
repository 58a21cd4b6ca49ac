package pairing

import (
	"bytes"
	"math/big"
	"testing"
)

// TestMarshalG1RoundTrip encodes and decodes G1 points, including infinity.
func TestMarshalG1RoundTrip(t *testing.T) {
	for _, c := range testCurves() {
		p := c.G1ScalarMul(c.G1Generator(), big.NewInt(12345))
		enc := c.MarshalG1(p)
		if len(enc) != 2*c.fpBytes {
			t.Fatalf("%s: G1 encoding has %d bytes, want %d", c.Name, len(enc), 2*c.fpBytes)
		}
		dec, err := c.UnmarshalG1(enc)
		if err != nil {
			t.Fatalf("%s: unmarshal: %v", c.Name, err)
		}
		if !c.G1Equal(dec, p) {
			t.Fatalf("%s: G1 round trip mismatch", c.Name)
		}

		inf := c.MarshalG1(G1Infinity())
		if !bytes.Equal(inf, make([]byte, 2*c.fpBytes)) {
			t.Fatalf("%s: infinity must encode as zeros", c.Name)
		}
		dec, err = c.UnmarshalG1(inf)
		if err != nil || !dec.IsInfinity() {
			t.Fatalf("%s: infinity round trip failed: %v", c.Name, err)
		}
	}
}

// TestMarshalG1Errors checks the rejection paths of UnmarshalG1.
func TestMarshalG1Errors(t *testing.T) {
	for _, c := range testCurves() {
		if _, err := c.UnmarshalG1(make([]byte, 2*c.fpBytes-1)); err != ErrInvalidLength {
			t.Fatalf("%s: short input: got %v, want ErrInvalidLength", c.Name, err)
		}

		// x = p is out of range.
		bad := make([]byte, 2*c.fpBytes)
		c.p.FillBytes(bad[:c.fpBytes])
		if _, err := c.UnmarshalG1(bad); err != ErrInvalidElement {
			t.Fatalf("%s: oversized element: got %v, want ErrInvalidElement", c.Name, err)
		}

		// (1, 1) is not on either curve.
		bad = make([]byte, 2*c.fpBytes)
		bad[c.fpBytes-1] = 1
		bad[2*c.fpBytes-1] = 1
		if _, err := c.UnmarshalG1(bad); err != ErrInvalidPoint {
			t.Fatalf("%s: off-curve point: got %v, want ErrInvalidPoint", c.Name, err)
		}
	}
}

// TestMarshalG2RoundTrip encodes and decodes G2 points, including infinity.
func TestMarshalG2RoundTrip(t *testing.T) {
	for _, c := range testCurves() {
		q := c.G2ScalarMul(c.G2Generator(), big.NewInt(67890))
		enc := c.MarshalG2(q)
		if len(enc) != 4*c.fpBytes {
			t.Fatalf("%s: G2 encoding has %d bytes, want %d", c.Name, len(enc), 4*c.fpBytes)
		}
		dec, err := c.UnmarshalG2(enc)
		if err != nil {
			t.Fatalf("%s: unmarshal: %v", c.Name, err)
		}
		if !c.G2Equal(dec, q) {
			t.Fatalf("%s: G2 round trip mismatch", c.Name)
		}

		// The imaginary limb is serialized first.
		limb := new(big.Int).SetBytes(enc[:c.fpBytes])
		if limb.Cmp(q.x.c1) != 0 {
			t.Fatalf("%s: G2 encoding must lead with x.c1", c.Name)
		}

		inf := c.MarshalG2(G2Infinity())
		dec, err = c.UnmarshalG2(inf)
		if err != nil || !dec.IsInfinity() {
			t.Fatalf("%s: infinity round trip failed: %v", c.Name, err)
		}
	}
}

// TestMarshalG2Errors checks the rejection paths of UnmarshalG2.
func TestMarshalG2Errors(t *testing.T) {
	for _, c := range testCurves() {
		if _, err := c.UnmarshalG2(make([]byte, 4*c.fpBytes+1)); err != ErrInvalidLength {
			t.Fatalf("%s: long input: got %v, want ErrInvalidLength", c.Name, err)
		}

		bad := make([]byte, 4*c.fpBytes)
		c.p.FillBytes(bad[3*c.fpBytes:])
		if _, err := c.UnmarshalG2(bad); err != ErrInvalidElement {
			t.Fatalf("%s: oversized element: got %v, want ErrInvalidElement", c.Name, err)
		}

		bad = make([]byte, 4*c.fpBytes)
		bad[c.fpBytes-1] = 1
		if _, err := c.UnmarshalG2(bad); err != ErrInvalidPoint {
			t.Fatalf("%s: off-curve point: got %v, want ErrInvalidPoint", c.Name, err)
		}
	}
}

// TestGTBytes checks the GT encoding length and that the identity encodes
// with only the lowest coefficient set.
func TestGTBytes(t *testing.T) {
	for _, c := range testCurves() {
		g := c.Pair(c.G1Generator(), c.G2Generator())
		enc := g.Bytes()
		if len(enc) != 12*c.fpBytes {
			t.Fatalf("%s: GT encoding has %d bytes, want %d", c.Name, len(enc), 12*c.fpBytes)
		}

		one := (&GT{c: c, v: fp12One()}).Bytes()
		want := make([]byte, 12*c.fpBytes)
		want[12*c.fpBytes-1] = 1
		if !bytes.Equal(one, want) {
			t.Fatalf("%s: GT identity encoding mismatch", c.Name)
		}
	}
}
