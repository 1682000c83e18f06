/*
Copyright (c) 2025 twinfer.com contact@twinfer.com Copyright (c) 2025 Khalid Daoud mohamed.khalid@gmail.com

Redistribution and use in source and binary forms, with or without modification, are permitted provided that the following conditions are met:

Redistributions of source code must retain the above copyright notice, this list of conditions and the following disclaimer.
Redistributions in binary form must reproduce the above copyright notice, this list of conditions and the following disclaimer in the documentation and/or other materials provided with the distribution.
Neither the name of the copyright holder nor the names of its contributors may be used to endorse or promote products derived from this software without specific prior written permission.
*/

package glob

// foldByte applies simple ASCII case folding to a single byte. Bytes
// outside 'A'..'Z' are returned unchanged; the engine never decodes UTF-8.
func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// matchClass evaluates a bracket character class against the subject byte
// c. pi points at the first byte after the opening '['. It returns whether
// the class matched and the pattern index just past the class.
//
// Members are scanned until an unescaped ']' closes the class or the
// pattern runs out. An unterminated class is evaluated with whatever
// members were collected. Three member forms:
//   - `\x`: the escaped byte x, compared literally even if it is ']' or '-'
//   - `a-b`: an inclusive byte range; reversed endpoints are swapped before
//     comparing. The range is taken whenever a '-' follows with a byte
//     after it, so ']' and '\' are legal raw endpoints.
//   - any other byte: a single literal member.
//
// The class matches when any member matches; a leading '^' inverts that.
// A class with no members can never match: with no negation target, '^'
// has nothing to invert, so `[]` and `[^]` both fail uniformly.
//
// With fold set, both operands of every comparison are ASCII-folded,
// including both range endpoints. A member is considered matched whenever
// the folded bytes are equal.
func matchClass[T ~string | ~[]byte](pattern T, c byte, pi int, fold bool) (bool, int) {
	pLen := len(pattern)

	negated := false
	if pi < pLen && pattern[pi] == '^' {
		negated = true
		pi++
	}

	if fold {
		c = foldByte(c)
	}

	matched := false
	members := 0
	for pi < pLen {
		switch {
		case pattern[pi] == wildcardEscape && pi+1 < pLen:
			pi++
			p := pattern[pi]
			if fold {
				p = foldByte(p)
			}
			if p == c {
				matched = true
			}
			pi++

		case pattern[pi] == ']':
			if negated && members > 0 {
				matched = !matched
			}
			return matched, pi + 1

		case pi+2 < pLen && pattern[pi+1] == '-':
			lo, hi := pattern[pi], pattern[pi+2]
			if lo > hi {
				lo, hi = hi, lo
			}
			if fold {
				lo, hi = foldByte(lo), foldByte(hi)
			}
			if c >= lo && c <= hi {
				matched = true
			}
			pi += 3

		default:
			p := pattern[pi]
			if fold {
				p = foldByte(p)
			}
			if p == c {
				matched = true
			}
			pi++
		}
		members++
	}

	// Unterminated class: the scan stops at end of pattern and the members
	// seen so far decide the match.
	if negated && members > 0 {
		matched = !matched
	}
	return matched, pi
}
