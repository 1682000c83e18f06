// Package glob_bench compares this matcher against the stdlib and other
// wildcard libraries on a shared pattern set. The regexp and filepath
// entries interpret the patterns under their own syntaxes; they are here
// as throughput baselines, not as semantic equivalents.
package glob_bench

import (
	"fmt"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/IGLOU-EU/go-wildcard/v2"
	"github.com/twinfer/moenster"
)

var TestSet = []struct {
	pattern string
	input   string
}{
	{"", "These aren't the wildcard you're looking for"},
	{"These aren't the wildcard you're looking for", ""},
	{"*", "These aren't the wildcard you're looking for"},
	{"These aren't the wildcard you're looking for", "These aren't the wildcard you're looking for"},
	{"Th?se * the wildcard you?re looking fo?", "These aren't the wildcard you're looking for"},
	{"Th?se * the wi*ldcard you?re looking fo?", "These aren't the wildcard you're looking for These aren't the wildcard you're looking for either"},
	{"m[aeiouø]*nster", "mønster"},
	{"*🤷🏾‍♂️*", "T🥵🤷🏾‍♂️🥓"},
}

func BenchmarkRegex(b *testing.B) {
	for i, t := range TestSet {
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				regexp.MatchString(t.pattern, t.input)
			}
		})
	}
}

func BenchmarkFilepath(b *testing.B) {
	for i, t := range TestSet {
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				filepath.Match(t.pattern, t.input)
			}
		})
	}
}

func BenchmarkGoWildcardMatch(b *testing.B) {
	for i, t := range TestSet {
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				wildcard.Match(t.pattern, t.input)
			}
		})
	}
}

func BenchmarkMatch(b *testing.B) {
	for i, t := range TestSet {
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				moenster.Match(t.pattern, t.input)
			}
		})
	}
}

func BenchmarkMatchFromByte(b *testing.B) {
	for i, t := range TestSet {
		pattern := []byte(t.pattern)
		input := []byte(t.input)

		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				moenster.MatchFromByte(pattern, input)
			}
		})
	}
}

func BenchmarkMatchFold(b *testing.B) {
	for i, t := range TestSet {
		b.Run(fmt.Sprint(i), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				moenster.MatchFold(t.pattern, t.input)
			}
		})
	}
}
