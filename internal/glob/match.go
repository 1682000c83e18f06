/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

// Package glob contains the core implementation of the anchored glob
// matching logic. It is intended for internal use by the parent moenster
// package.
//
// The engine is total over its input domain: any byte sequence is a legal
// pattern, and every call returns a boolean. Malformed constructs
// (unterminated bracket classes, trailing backslashes) are resolved by a
// fixed fallback policy instead of an error.
package glob

import (
	"bytes"
	"strings"
)

const (
	// All bytes that carry wildcard meaning in a pattern.
	wildcardChars = `*?[\`

	wildcardStar     = '*'
	wildcardQuestion = '?'
	wildcardBracket  = '['
	wildcardEscape   = '\\'
)

// Match is the internal, generic case-sensitive matching function. It acts
// as a dispatcher, attempting several fast-path optimizations before
// falling back to the full recursive match for complex patterns.
func Match[T ~string | ~[]byte](pattern, s T) bool {
	if len(pattern) == 0 {
		return len(s) == 0
	}

	// Fast path for the most common case: a universal wildcard.
	if len(pattern) == 1 && pattern[0] == wildcardStar {
		return true
	}

	// Fast path for patterns without any wildcards.
	if isExactMatch(pattern, s) {
		return true
	}

	// Fast path for simple patterns like "prefix*", "*suffix", or "prefix*suffix".
	if matched, handled := fastPatternMatch(pattern, s); handled {
		return matched
	}

	// Fallback to the full, recursive implementation for complex patterns.
	return matchAt(pattern, s, 0, 0, false)
}

// MatchFold is the case-insensitive counterpart of Match. Folding is
// byte-wise ASCII folding on both operands; it never decodes UTF-8, so
// non-ASCII bytes compare verbatim.
func MatchFold[T ~string | ~[]byte](pattern, s T) bool {
	if len(pattern) == 0 {
		return len(s) == 0
	}

	if len(pattern) == 1 && pattern[0] == wildcardStar {
		return true
	}

	// Fast path: a wildcard-free pattern reduces to a folded equality check.
	if !containsWildcard(pattern) {
		return equalFold(pattern, s)
	}

	return matchAt(pattern, s, 0, 0, true)
}

// fastPatternMatch handles common simple patterns (e.g., "prefix*") to
// avoid the overhead of the recursive matcher. It returns (matched,
// handled) where handled indicates whether the pattern could be handled by
// the fast path. Case-sensitive only; the folding engine goes straight to
// the recursive matcher.
func fastPatternMatch[T ~string | ~[]byte](pattern, s T) (bool, bool) {
	switch p := any(pattern).(type) {
	case string:
		return fastPatternMatchString(p, any(s).(string))
	case []byte:
		return fastPatternMatchBytes(p, any(s).([]byte))
	}
	return false, false
}

// fastPatternMatchString implements the fast path logic for strings.
func fastPatternMatchString(pattern, s string) (bool, bool) {
	// Handles "prefix*" if the prefix contains no other wildcards or character classes.
	if prefix, found := strings.CutSuffix(pattern, "*"); found {
		if !strings.ContainsAny(prefix, wildcardChars) {
			return strings.HasPrefix(s, prefix), true
		}
	}

	// Handles "*suffix" if the suffix contains no other wildcards or character classes.
	if suffix, found := strings.CutPrefix(pattern, "*"); found {
		if !strings.ContainsAny(suffix, wildcardChars) {
			return strings.HasSuffix(s, suffix), true
		}
	}

	// Handles "prefix*suffix" if the prefix and suffix contain no other wildcards or character classes.
	if prefix, suffix, found := strings.Cut(pattern, "*"); found && prefix != "" && suffix != "" {
		if !strings.ContainsAny(prefix, wildcardChars) && !strings.ContainsAny(suffix, wildcardChars) {
			matched := len(s) >= len(prefix)+len(suffix) &&
				strings.HasPrefix(s, prefix) &&
				strings.HasSuffix(s, suffix)
			return matched, true
		}
	}

	return false, false
}

// fastPatternMatchBytes implements the fast path logic for byte slices.
func fastPatternMatchBytes(pattern, s []byte) (bool, bool) {
	// Handles "prefix*" if the prefix contains no other wildcards or character classes.
	if prefix, found := bytes.CutSuffix(pattern, []byte("*")); found {
		if !bytes.ContainsAny(prefix, wildcardChars) {
			return bytes.HasPrefix(s, prefix), true
		}
	}

	// Handles "*suffix" if the suffix contains no other wildcards or character classes.
	if suffix, found := bytes.CutPrefix(pattern, []byte("*")); found {
		if !bytes.ContainsAny(suffix, wildcardChars) {
			return bytes.HasSuffix(s, suffix), true
		}
	}

	// Handles "prefix*suffix" if the prefix and suffix contain no other wildcards or character classes.
	if prefix, suffix, found := bytes.Cut(pattern, []byte("*")); found && len(prefix) > 0 && len(suffix) > 0 {
		if !bytes.ContainsAny(prefix, wildcardChars) && !bytes.ContainsAny(suffix, wildcardChars) {
			matched := len(s) >= len(prefix)+len(suffix) &&
				bytes.HasPrefix(s, prefix) &&
				bytes.HasSuffix(s, suffix)
			return matched, true
		}
	}

	return false, false
}

// isExactMatch is an optimization that checks if the pattern contains no
// wildcards and, if so, performs a simple equality check.
func isExactMatch[T ~string | ~[]byte](pattern, s T) bool {
	if len(pattern) != len(s) {
		return false
	}
	if containsWildcard(pattern) {
		return false
	}
	return equal(pattern, s)
}

// containsWildcard reports whether the pattern holds any wildcard byte.
func containsWildcard[T ~string | ~[]byte](pattern T) bool {
	switch p := any(pattern).(type) {
	case string:
		return strings.ContainsAny(p, wildcardChars)
	case []byte:
		return bytes.ContainsAny(p, wildcardChars)
	}
	return false
}

// equal provides a generic way to compare two values of the same supported type.
func equal[T ~string | ~[]byte](a, b T) bool {
	switch va := any(a).(type) {
	case string:
		return va == any(b).(string)
	case []byte:
		return bytes.Equal(va, any(b).([]byte))
	}
	return false
}

// equalFold compares two values byte-wise under ASCII folding. The stdlib
// EqualFold functions fold decoded codepoints and would diverge from the
// engine's raw-byte semantics on non-ASCII input, so this stays byte-wise.
func equalFold[T ~string | ~[]byte](a, b T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if foldByte(a[i]) != foldByte(b[i]) {
			return false
		}
	}
	return true
}

// matchAt is the core backtracking algorithm. It scans the pattern one
// token per iteration, consuming subject bytes as it goes:
//   - `*` matches any run of bytes; consecutive stars coalesce, and the
//     remainder of the pattern is retried at every split point of the
//     remaining subject. This is the only backtracking point.
//   - `?` matches exactly one byte.
//   - `[...]` matches one byte against a character class (see matchClass).
//   - `\x` matches the literal byte x; a lone trailing backslash compares
//     as a literal backslash.
//   - anything else matches itself.
//
// The fold flag selects ASCII case folding on both operands of every
// comparison, including class members and range endpoints. The match
// succeeds only when pattern and subject are both fully consumed; a
// trailing run of `*` counts as consumed.
//
// Worst-case time and stack depth are O(len(pattern) * len(s)) for
// pathological star-heavy patterns. Callers needing bounded latency on
// adversarial input must limit pattern wildcard density externally.
func matchAt[T ~string | ~[]byte](pattern, s T, pi, si int, fold bool) bool {
	pLen, sLen := len(pattern), len(s)

	for pi < pLen && si < sLen {
		switch pattern[pi] {
		case wildcardStar:
			// Coalesce consecutive stars into one.
			for pi+1 < pLen && pattern[pi+1] == wildcardStar {
				pi++
			}
			// A trailing star matches the entire remaining subject.
			if pi+1 == pLen {
				return true
			}

			// Try the rest of the pattern against every suffix of the
			// subject, longest first, down to and including the empty one.
			for ; si <= sLen; si++ {
				if matchAt(pattern, s, pi+1, si, fold) {
					return true
				}
			}
			return false

		case wildcardQuestion:
			// Exactly one byte, any value.
			pi++
			si++

		case wildcardBracket:
			matched, next := matchClass(pattern, s[si], pi+1, fold)
			if !matched {
				return false
			}
			pi = next
			si++

		default:
			if pattern[pi] == wildcardEscape && pi+1 < pLen {
				// The escaped byte is compared literally, wildcard or not.
				pi++
			}
			p, c := pattern[pi], s[si]
			if fold {
				p, c = foldByte(p), foldByte(c)
			}
			if p != c {
				return false
			}
			pi++
			si++
		}
	}

	// Trailing stars still match the exhausted subject.
	for pi < pLen && pattern[pi] == wildcardStar {
		pi++
	}
	return pi == pLen && si == sLen
}
