// File: doc.go
// Title: Package Documentation for patternx
// Description: Documents the pattern facility used by the text utilities.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial documentation

/*
Package patternx wraps github.com/dlclark/regexp2 with a bounded cache of
compiled patterns and a small set of rune-oriented helpers.

regexp2 is used instead of the standard regexp package because its
character classes are Unicode aware (\w matches letters, nonspacing marks,
decimal digits and connector punctuation in any script) and its match
positions are reported in runes, which is the unit the text utilities
count in.

# Usage

	cache, err := patternx.NewCache(patternx.Config{Size: 64, MatchTimeout: time.Second})
	if err != nil {
		return err
	}
	out, err := cache.ReplaceAll("a  b\tc", patternx.Whitespace, " ", patternx.None)

The package-level functions use a shared cache built from DefaultConfig.

# Splitting

Split mirrors the usual split-with-limit-zero behaviour: a zero-width match
at the start of the input does not produce a leading empty fragment,
trailing empty fragments are removed, and an input without any match comes
back as a one-element slice. Fields additionally drops every empty fragment.

# Errors

An expression that does not compile yields an error with code
INVALID_PATTERN. Failures while matching, such as an exceeded MatchTimeout,
yield OPERATION_FAILED.
*/
package patternx
