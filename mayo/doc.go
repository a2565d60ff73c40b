// Package mayo implements the cryptographic core of a post-quantum
// digital-signature scheme in the MAYO family: a multivariate-quadratic
// Oil-and-Vinegar variant whittled down with a low-dimensional "whipping"
// construction. It exposes key generation, signing, and verification over
// four parameter sets (Mayo1, Mayo2, Mayo3, Mayo5) corresponding to NIST
// security categories 1/2/3/5.
//
// The package is layered bottom-up: GF(16) field arithmetic (package
// gf16) underlies a packed-matrix algebra, which in turn underlies
// deterministic key expansion from short seeds, a sign-time linear-system
// solver with a bounded retry loop, and a verify-time quadratic-map
// evaluator. Byte layouts are canonical and stable across platforms;
// everything else (OIDs, DER/PKCS#8 encodings, RNG sourcing policy) is
// left to external callers.
package mayo
