// Package moenster provides glob-style string matching, anchored at both
// ends: a pattern matches only if it covers the subject string in its
// entirety. It is designed for byte-oriented matching of ad hoc patterns,
// the kind used for key filtering and simple allow/deny rules.
//
// # Supported Wildcards:
//
//   - `*`: Matches any sequence of bytes (including zero bytes).
//   - `?`: Matches exactly one byte.
//   - `[abc]`, `[a-c]`: Matches one byte from the class; `[^...]` negates.
//   - `\x`: Matches the literal byte x, stripping any wildcard meaning.
//
// Matching operates on raw bytes, never on decoded codepoints: a single
// `?` consumes one byte, so one multi-byte encoded character needs as many
// `?` tokens as it has bytes. A `*` run spans multi-byte characters
// naturally, since it matches arbitrary byte sequences.
//
// Every byte sequence is a legal pattern. Malformed constructs such as an
// unterminated bracket class or a trailing backslash degrade to a defined
// fallback instead of an error, so the functions here return a plain bool.
//
// mønster (n) - pattern.
package moenster

import (
	"github.com/twinfer/moenster/internal/glob"
)

// Match returns true if the pattern matches the string s from beginning to
// end. Comparison is case-sensitive and byte-wise.
func Match(pattern, s string) bool {
	return glob.Match(pattern, s)
}

// MatchFromByte returns true if the pattern matches the byte slice s.
// It is functionally equivalent to Match but operates directly on byte
// slices, which avoids string conversion allocations in hot paths.
func MatchFromByte(pattern, s []byte) bool {
	return glob.Match(pattern, s)
}

// MatchFold returns true if the pattern matches the string s in a
// case-insensitive manner. Both sides of every comparison are folded with
// simple ASCII folding, including bracket-class members and range
// endpoints. Bytes outside 'A'..'Z' and 'a'..'z' compare verbatim.
func MatchFold(pattern, s string) bool {
	return glob.MatchFold(pattern, s)
}

// MatchFoldByte returns true if the pattern matches the byte slice s with
// case-insensitivity. It is the byte-slice equivalent of MatchFold.
func MatchFoldByte(pattern, s []byte) bool {
	return glob.MatchFold(pattern, s)
}
