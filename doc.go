// Package pairing implements the optimal ate pairing over the BN254 and
// BLS12-381 curves.
//
// Both curves share one generic implementation of the extension-field tower
//
//	Fp  -> Fp2  = Fp[u]/(u^2+1)
//	Fp2 -> Fp6  = Fp2[v]/(v^3-xi)
//	Fp6 -> Fp12 = Fp6[w]/(w^2-v)
//
// parameterized by a Curve configuration: the field moduli, the sextic
// non-residue xi, the twist coefficient, the group generators and the curve
// family's loop parameter. Per-curve data that is usually hardcoded
// (Frobenius coefficient tables, the signed-digit expansion of the ate loop
// count) is derived from these constants when the curve is first requested.
//
// The two instances are obtained from BN254() and BLS12381(). Pairing inputs
// are assumed to lie in the correct prime-order subgroups; subgroup checks
// are the caller's responsibility.
package pairing
