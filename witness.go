package pairing

// Residue-witness derivation for the BN254 pairing equality check.
//
// For BN254 the optimal ate lambda = 6u+2 + p - p^2 + p^3 is a multiple of
// r, so a combined Miller value fg with finalExp(fg) == 1 is an r-th power
// residue and admits a witness pair (c, u) with c^lambda * u == fg, where u
// is a 27th root of unity. Deriving and verifying the witness replaces a
// full final exponentiation in the equality check.
//
// Derivation: shift fg by a power of a fixed 27th root of unity w until it
// is a cube residue, take the r-th and then m''-th root by exponent
// inversion modulo h = (p^12-1)/r (lambda = 3 * m'' * r with m'' invertible
// mod h), and finish with a Tonelli-Shanks cube root. The shift is undone
// through u = w^(-s).

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"
)

// fp12DomainTag is the domain separator for deterministic Fp12 derivation.
const fp12DomainTag = "pairing:fp12"

type witnessParams struct {
	lambda *big.Int // 6u+2 + p - p^2 + p^3
	h      *big.Int // (p^12-1)/r
	rInv   *big.Int // r^(-1) mod h
	mpInv  *big.Int // m''^(-1) mod h, m'' = lambda/(3r)
	exp3   *big.Int // (p^12-1)/3, cube-residue test exponent
	exp27  *big.Int // (p^12-1)/27, 27th-root projection exponent
	tsExp  *big.Int // ((p^12-1)/27 + 1)/3, Tonelli-Shanks exponent
	w      *fp12    // fixed element of order exactly 27
}

// witnessInit derives the witness exponents and the 27th root of unity.
// Runs once per curve instance.
func (c *Curve) witnessInit() {
	one := big.NewInt(1)
	three := big.NewInt(3)

	p12 := new(big.Int).Exp(c.p, big.NewInt(12), nil)
	p12m1 := new(big.Int).Sub(p12, one)

	wp := &witnessParams{}
	wp.h = new(big.Int).Div(p12m1, c.r)

	lambda := new(big.Int).Mul(big.NewInt(6), c.u)
	lambda.Add(lambda, big.NewInt(2))
	lambda.Add(lambda, c.p)
	p2 := new(big.Int).Mul(c.p, c.p)
	lambda.Sub(lambda, p2)
	lambda.Add(lambda, new(big.Int).Mul(p2, c.p))
	wp.lambda = lambda

	m, rem := new(big.Int).DivMod(lambda, c.r, new(big.Int))
	if rem.Sign() != 0 {
		panic("pairing: lambda not divisible by r")
	}
	mp, rem := new(big.Int).DivMod(m, three, new(big.Int))
	if rem.Sign() != 0 {
		panic("pairing: lambda/r not divisible by 3")
	}

	wp.rInv = new(big.Int).ModInverse(c.r, wp.h)
	wp.mpInv = new(big.Int).ModInverse(mp, wp.h)
	if wp.rInv == nil || wp.mpInv == nil {
		panic("pairing: witness exponent not invertible mod h")
	}

	wp.exp3 = new(big.Int).Div(p12m1, three)
	wp.exp27 = new(big.Int).Div(p12m1, big.NewInt(27))
	wp.tsExp = new(big.Int).Add(wp.exp27, one)
	wp.tsExp.Div(wp.tsExp, three)

	// Find an element of order exactly 27 by projecting deterministically
	// sampled elements with (p^12-1)/27.
	for ctr := uint32(0); ; ctr++ {
		w := c.fp12Exp(c.deriveFp12(ctr), wp.exp27)
		if !w.isOne() && !c.fp12Exp(w, big.NewInt(9)).isOne() {
			wp.w = w
			break
		}
	}

	c.witness = wp
}

// deriveFp12 maps a counter to an Fp12 element through SHA3-256. Each of the
// twelve coefficients hashes the domain tag, the big-endian counter and the
// coefficient index.
func (c *Curve) deriveFp12(ctr uint32) *fp12 {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], ctr)

	coeff := func(i byte) *big.Int {
		h := sha3.New256()
		h.Write([]byte(fp12DomainTag))
		h.Write(buf[:])
		h.Write([]byte{i})
		d := new(big.Int).SetBytes(h.Sum(nil))
		return d.Mod(d, c.p)
	}

	fp2At := func(i byte) *fp2 {
		return &fp2{c0: coeff(i), c1: coeff(i + 1)}
	}
	return &fp12{
		c0: &fp6{c0: fp2At(0), c1: fp2At(2), c2: fp2At(4)},
		c1: &fp6{c0: fp2At(6), c1: fp2At(8), c2: fp2At(10)},
	}
}

// tonelliShanksCubeRoot returns x with x^3 == a, correcting the initial
// exponentiation by powers of the 27th root of unity. Fails only when a is
// not a cube residue.
func (c *Curve) tonelliShanksCubeRoot(a *fp12) (*fp12, bool) {
	wp := c.witness
	three := big.NewInt(3)
	x := c.fp12Exp(a, wp.tsExp)
	for i := 0; i < 27; i++ {
		if c.fp12Equal(c.fp12Exp(x, three), a) {
			return x, true
		}
		x = c.fp12Mul(x, wp.w)
	}
	return nil, false
}

// residueWitness derives (cRoot, u) with cRoot^lambda * u == fg for an fg
// that is an r-th power residue. ok is false when fg cannot be shifted into
// the cube-residue coset, which certifies inequality of the pairings.
func (c *Curve) residueWitness(fg *fp12) (cRoot, u *fp12, ok bool) {
	c.witnessOnce.Do(c.witnessInit)
	wp := c.witness

	f := fp12Copy(fg)
	s := 0
	for ; s < 3; s++ {
		if c.fp12Exp(f, wp.exp3).isOne() {
			break
		}
		f = c.fp12Mul(f, wp.w)
	}
	if s == 3 {
		return nil, nil, false
	}

	x := c.fp12Exp(f, wp.rInv)
	x = c.fp12Exp(x, wp.mpInv)
	x, ok = c.tonelliShanksCubeRoot(x)
	if !ok {
		return nil, nil, false
	}

	u = c.fp12Exp(wp.w, big.NewInt(int64((27-s)%27)))
	return x, u, true
}

// verifyResidueWitness checks cRoot^lambda * u == fg and u^27 == 1.
func (c *Curve) verifyResidueWitness(fg, cRoot, u *fp12) bool {
	c.witnessOnce.Do(c.witnessInit)
	wp := c.witness

	if !c.fp12Exp(u, big.NewInt(27)).isOne() {
		return false
	}
	lhs := c.fp12Mul(c.fp12Exp(cRoot, wp.lambda), u)
	return c.fp12Equal(lhs, fg)
}
