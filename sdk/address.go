package sdk

import "strings"

// Address identifies an account on the chain, like "alice.near" or
// "marketplace.artfans.near". It is kept as an opaque string because the
// runtime itself only ever hands us strings.
type Address string

// String returns the literal representation of the address.
// Example payload: sdk.Address("alice.near").String()
func (a Address) String() string {
	return string(a)
}

// IsValid applies the runtime's account id rules as a light sanity check:
// lowercase alphanumerics, separators that never lead, trail or double up,
// and a 2..64 byte length window.
func (a Address) IsValid() bool {
	s := string(a)
	if len(s) < 2 || len(s) > 64 {
		return false
	}
	prevSep := true // leading separator is invalid
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			prevSep = false
		case c == '-' || c == '_' || c == '.':
			if prevSep {
				return false
			}
			prevSep = true
		default:
			return false
		}
	}
	return !prevSep
}

// IsSubAccountOf reports whether the address sits under the given parent,
// e.g. "ft.artfans.near" is a sub account of "artfans.near".
func (a Address) IsSubAccountOf(parent Address) bool {
	return strings.HasSuffix(string(a), "."+string(parent))
}
