package pairing

// Curve configuration for the two supported pairing-friendly curves.
//
// Everything downstream of the constants in this file is derived, not
// hardcoded: the Frobenius coefficient tables and the signed-digit expansion
// of the ate loop count are computed when the curve is first requested and
// cached for the lifetime of the process.

import (
	"math/big"
	"sync"
)

type curveFamily int

const (
	familyBN curveFamily = iota
	familyBLS
)

// Curve bundles the constants defining one pairing-friendly curve together
// with the tables derived from them. All arithmetic in this package is
// expressed as methods on Curve; the zero value is not usable, obtain
// instances from BN254 or BLS12381.
type Curve struct {
	Name string

	p *big.Int // base field modulus
	r *big.Int // prime order of G1, G2 and GT
	b *big.Int // curve coefficient in y^2 = x^3 + b

	family curveFamily
	u      *big.Int // family parameter: the BN u, or |x| for BLS
	uNeg   bool     // set when the BLS x is negative

	xi     *fp2 // sextic non-residue defining Fp6 = Fp2[v]/(v^3-xi)
	twistB *fp2 // twist curve coefficient b'

	g1x, g1y *big.Int
	g2x, g2y *fp2

	fpBytes int // serialized size of one base field element

	// Derived at construction.
	loopDigits []int8     // NAF digits of |6u+2| (BN family only), LSB first
	frob       [4][6]*fp2 // frob[n][k] = xi^(k*(p^n-1)/6) for n=1..3, k=1..5

	witnessOnce sync.Once
	witness     *witnessParams // BN254 residue-witness data, derived lazily
}

var (
	bn254Once  sync.Once
	bn254Curve *Curve

	bls12381Once  sync.Once
	bls12381Curve *Curve
)

// BN254 returns the BN254 (alt_bn128) curve instance.
func BN254() *Curve {
	bn254Once.Do(func() {
		c := &Curve{
			Name:    "bn254",
			p:       bigFromStr("21888242871839275222246405745257275088696311157297823662689037894645226208583"),
			r:       bigFromStr("21888242871839275222246405745257275088548364400416034343698204186575808495617"),
			b:       big.NewInt(3),
			family:  familyBN,
			u:       bigFromStr("4965661367192848881"),
			fpBytes: 32,
		}
		c.xi = &fp2{c0: big.NewInt(9), c1: big.NewInt(1)}
		// b' = 3/(9+i) for the D-type twist.
		c.twistB = &fp2{
			c0: bigFromStr("19485874751759354771024239261021720505790618469301721065564631296452457478373"),
			c1: bigFromStr("266929791119991161246907387137283842545076965332900288569378510910307636690"),
		}
		c.g1x = big.NewInt(1)
		c.g1y = big.NewInt(2)
		c.g2x = &fp2{
			c0: bigFromStr("10857046999023057135944570762232829481370756359578518086990519993285655852781"),
			c1: bigFromStr("11559732032986387107991004021392285783925812861821192530917403151452391805634"),
		}
		c.g2y = &fp2{
			c0: bigFromStr("8495653923123431417604973247489272438418190587263600148770280649306958101930"),
			c1: bigFromStr("4082367875863433681332203403145435568316851327593401208105741076214120093531"),
		}
		c.deriveFrobenius()
		// Ate loop count |6u+2|, recoded into non-adjacent form.
		loop := new(big.Int).Mul(big.NewInt(6), c.u)
		loop.Add(loop, big.NewInt(2))
		c.loopDigits = nafDigits(loop)
		bn254Curve = c
	})
	return bn254Curve
}

// BLS12381 returns the BLS12-381 curve instance.
func BLS12381() *Curve {
	bls12381Once.Do(func() {
		c := &Curve{
			Name:    "bls12-381",
			p:       bigFromHex("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab"),
			r:       bigFromHex("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001"),
			b:       big.NewInt(4),
			family:  familyBLS,
			u:       bigFromHex("d201000000010000"),
			uNeg:    true,
			fpBytes: 48,
		}
		c.xi = &fp2{c0: big.NewInt(1), c1: big.NewInt(1)}
		// b' = 4(1+u) for the M-type twist.
		c.twistB = &fp2{c0: big.NewInt(4), c1: big.NewInt(4)}
		c.g1x = bigFromHex("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb")
		c.g1y = bigFromHex("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1")
		c.g2x = &fp2{
			c0: bigFromHex("024aa2b2f08f0a91260805272dc51051c6e47ad4fa403b02b4510b647ae3d1770bac0326a805bbefd48056c8c121bdb8"),
			c1: bigFromHex("13e02b6052719f607dacd3a088274f65596bd0d09920b61ab5da61bbdc7f5049334cf11213945d57e5ac7d055d042b7e"),
		}
		c.g2y = &fp2{
			c0: bigFromHex("0ce5d527727d6e118cc9cdc6da2e351aadfd9baa8cbdd3a76d429a695160d12c923ac9cc3baca289e193548608b82801"),
			c1: bigFromHex("0606c4a02ea734cc32acd2b02bc28b99cb3e287e85a763af267492ab572e99ab3f370d275cec1da1aaa9075ff05f79be"),
		}
		c.deriveFrobenius()
		bls12381Curve = c
	})
	return bls12381Curve
}

// deriveFrobenius fills the Frobenius coefficient table
// frob[n][k] = xi^(k*(p^n-1)/6) in Fp2 for n = 1..3, k = 1..5.
//
// These are the per-coefficient scalars of the p^n-power Frobenius on the
// tower: for odd n each Fp2 coefficient is conjugated first, then the k-th
// tower coefficient is scaled by frob[n][k].
func (c *Curve) deriveFrobenius() {
	six := big.NewInt(6)
	for n := 1; n <= 3; n++ {
		pn := new(big.Int).Exp(c.p, big.NewInt(int64(n)), nil)
		pn.Sub(pn, big.NewInt(1))
		pn.Div(pn, six)
		for k := 1; k <= 5; k++ {
			e := new(big.Int).Mul(pn, big.NewInt(int64(k)))
			c.frob[n][k] = c.fp2Exp(c.xi, e)
		}
	}
}

// nafDigits returns the non-adjacent form of k, least significant digit
// first. The top digit of a positive k is always 1.
func nafDigits(k *big.Int) []int8 {
	n := new(big.Int).Set(k)
	var digits []int8
	one := big.NewInt(1)
	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			// n mod 4 decides the sign of the digit.
			if n.Bit(1) == 1 {
				digits = append(digits, -1)
				n.Add(n, one)
			} else {
				digits = append(digits, 1)
				n.Sub(n, one)
			}
		} else {
			digits = append(digits, 0)
		}
		n.Rsh(n, 1)
	}
	return digits
}

// bigFromStr parses a decimal big integer, panicking on malformed input.
// Used only for compile-time constants.
func bigFromStr(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("pairing: invalid integer constant: " + s)
	}
	return n
}

// bigFromHex parses a hexadecimal big integer, panicking on malformed input.
func bigFromHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("pairing: invalid integer constant: " + s)
	}
	return n
}
