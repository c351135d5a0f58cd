package rfc9110

import "strings"

// §  8.4.1.  Content Codings
// §
// §     Content coding values indicate an encoding transformation that has
// §     been or can be applied to a representation.  Content codings are
// §     primarily used to allow a representation to be compressed or
// §     otherwise usefully transformed without losing the identity of its
// §     underlying media type and without loss of information.
// §
// §       content-coding    = token
// §
// §     All content codings are case-insensitive and ought to be registered
// §     within the "HTTP Content Coding Registry".

// §  8.4.1.1.  Compress Coding
// §
// §     The "compress" coding is an adaptation of the Lempel-Ziv-Welch (LZW)
// §     coding [Welch] that is commonly produced by the UNIX file
// §     compression program "compress".  A recipient SHOULD consider
// §     "x-compress" to be equivalent to "compress".

// §  8.4.1.3.  Gzip Coding
// §
// §     The "gzip" coding is an LZ77 coding with a 32-bit Cyclic Redundancy
// §     Check (CRC) that is commonly produced by the gzip file compression
// §     program [RFC1952].  A recipient SHOULD consider "x-gzip" to be
// §     equivalent to "gzip".

// ContentCodingEqual reports whether two content coding tokens name the
// same coding. The comparison is case-insensitive, and the legacy "x-gzip"
// and "x-compress" tokens are equivalent to "gzip" and "compress".
func ContentCodingEqual(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	return strings.EqualFold(legacyEquivalent(a), legacyEquivalent(b))
}

func legacyEquivalent(coding string) string {
	switch {
	case strings.EqualFold(coding, "x-gzip"):
		return "gzip"
	case strings.EqualFold(coding, "x-compress"):
		return "compress"
	}
	return coding
}
