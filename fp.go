package pairing

// Base field arithmetic over F_p. Elements are *big.Int reduced modulo the
// curve's p; every operation returns a fresh value.

import "math/big"

// fpAdd returns (a + b) mod p.
func (c *Curve) fpAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, c.p)
}

// fpSub returns (a - b) mod p.
func (c *Curve) fpSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, c.p)
}

// fpMul returns (a * b) mod p.
func (c *Curve) fpMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, c.p)
}

// fpSqr returns a^2 mod p.
func (c *Curve) fpSqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, c.p)
}

// fpNeg returns (-a) mod p.
func (c *Curve) fpNeg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(c.p, new(big.Int).Mod(a, c.p))
}

// fpInv returns a^(-1) mod p. Panics on zero: inversion of zero is an
// internal invariant violation, never reachable from valid group elements.
func (c *Curve) fpInv(a *big.Int) *big.Int {
	r := new(big.Int).ModInverse(a, c.p)
	if r == nil {
		panic("pairing: inverse of zero in Fp")
	}
	return r
}

// fpExp returns a^e mod p.
func (c *Curve) fpExp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, c.p)
}
