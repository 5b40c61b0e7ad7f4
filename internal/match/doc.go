// Package match filters haystack rows against needle values and reports the
// needle values that found no row.
//
// Membership is exact Value equality: a String never equals an Int, and the
// Null absence marker never matches anything.
//
// # Unmatched semantics
//
// Three semantics are available for reporting unmatched needles:
//
//   - Set: distinct needle values absent from the matched values
//   - Multiset: every needle occurrence is accounted for individually
//   - Duplicates: values that occur exactly once across matched ++ needles
//
// Duplicates reproduces the original duplicate-count algorithm. It
// undercounts when needle values repeat: a needle listed twice with one
// matched row is reported as matched.
package match
