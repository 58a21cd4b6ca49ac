package pairing

// Fixed-width big-endian point and GT encodings.
//
// G1 encodes as x || y (2 field elements), G2 as x.c1 || x.c0 || y.c1 || y.c0
// (imaginary limb first, matching the Ethereum precompile convention). The
// all-zero encoding is the point at infinity. GT encodes its twelve Fp
// coefficients from the highest tower slot down.

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidLength is returned when a point encoding has the wrong size.
	ErrInvalidLength = errors.New("pairing: invalid encoding length")
	// ErrInvalidPoint is returned when a decoded point is not on the curve.
	ErrInvalidPoint = errors.New("pairing: point not on curve")
	// ErrInvalidElement is returned when a decoded field element is out of range.
	ErrInvalidElement = errors.New("pairing: field element out of range")
)

func (c *Curve) fpToBytes(v *big.Int) []byte {
	return new(big.Int).Mod(v, c.p).FillBytes(make([]byte, c.fpBytes))
}

func (c *Curve) fpFromBytes(data []byte) (*big.Int, error) {
	v := new(big.Int).SetBytes(data)
	if v.Cmp(c.p) >= 0 {
		return nil, ErrInvalidElement
	}
	return v, nil
}

// MarshalG1 encodes p as x || y; infinity encodes as all zeros.
func (c *Curve) MarshalG1(p *G1Affine) []byte {
	out := make([]byte, 2*c.fpBytes)
	if p.infinity {
		return out
	}
	copy(out, c.fpToBytes(p.x))
	copy(out[c.fpBytes:], c.fpToBytes(p.y))
	return out
}

// UnmarshalG1 decodes and validates a G1 point.
func (c *Curve) UnmarshalG1(data []byte) (*G1Affine, error) {
	if len(data) != 2*c.fpBytes {
		return nil, ErrInvalidLength
	}
	x, err := c.fpFromBytes(data[:c.fpBytes])
	if err != nil {
		return nil, err
	}
	y, err := c.fpFromBytes(data[c.fpBytes:])
	if err != nil {
		return nil, err
	}
	if x.Sign() == 0 && y.Sign() == 0 {
		return G1Infinity(), nil
	}
	p := &G1Affine{x: x, y: y}
	if !c.G1IsOnCurve(p) {
		return nil, ErrInvalidPoint
	}
	return p, nil
}

// MarshalG2 encodes q as x.c1 || x.c0 || y.c1 || y.c0; infinity encodes as
// all zeros.
func (c *Curve) MarshalG2(q *G2Affine) []byte {
	out := make([]byte, 4*c.fpBytes)
	if q.infinity {
		return out
	}
	copy(out, c.fpToBytes(q.x.c1))
	copy(out[c.fpBytes:], c.fpToBytes(q.x.c0))
	copy(out[2*c.fpBytes:], c.fpToBytes(q.y.c1))
	copy(out[3*c.fpBytes:], c.fpToBytes(q.y.c0))
	return out
}

// UnmarshalG2 decodes and validates a G2 point.
func (c *Curve) UnmarshalG2(data []byte) (*G2Affine, error) {
	if len(data) != 4*c.fpBytes {
		return nil, ErrInvalidLength
	}
	limbs := make([]*big.Int, 4)
	for i := range limbs {
		v, err := c.fpFromBytes(data[i*c.fpBytes : (i+1)*c.fpBytes])
		if err != nil {
			return nil, err
		}
		limbs[i] = v
	}
	if limbs[0].Sign() == 0 && limbs[1].Sign() == 0 && limbs[2].Sign() == 0 && limbs[3].Sign() == 0 {
		return G2Infinity(), nil
	}
	q := &G2Affine{
		x: &fp2{c0: limbs[1], c1: limbs[0]},
		y: &fp2{c0: limbs[3], c1: limbs[2]},
	}
	if !c.G2IsOnCurve(q) {
		return nil, ErrInvalidPoint
	}
	return q, nil
}

// Bytes encodes the GT element as its twelve base field coefficients.
func (g *GT) Bytes() []byte {
	c := g.c
	coeffs := []*big.Int{
		g.v.c1.c2.c1, g.v.c1.c2.c0,
		g.v.c1.c1.c1, g.v.c1.c1.c0,
		g.v.c1.c0.c1, g.v.c1.c0.c0,
		g.v.c0.c2.c1, g.v.c0.c2.c0,
		g.v.c0.c1.c1, g.v.c0.c1.c0,
		g.v.c0.c0.c1, g.v.c0.c0.c0,
	}
	out := make([]byte, 0, 12*c.fpBytes)
	for _, v := range coeffs {
		out = append(out, c.fpToBytes(v)...)
	}
	return out
}
