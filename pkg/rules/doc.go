// Package rules implements relink's rewrite core: compiling ordered
// pattern/replacer string pairs into rules and applying them sequentially
// to a piece of text.
//
// # Rules
//
// A rule pairs a regular expression with a replacement template. Templates
// use dollar-sign backreferences:
//
//   - `$1` .. `$99` - text captured by the numbered group
//   - `$&` - the whole matched text
//   - `$$` - a literal dollar sign
//
// Any other dollar sequence is passed through literally. The template is
// parsed once at compile time, so applying a rule never re-interprets it.
//
// # Ordering
//
// Rules run strictly in sequence: each rule rewrites every non-overlapping
// match in the output of the previous rule. A later rule may therefore
// match text that an earlier rule's replacement introduced. That makes the
// full sequence order-sensitive and deliberately not idempotent.
//
// Compilation is atomic. If any pattern in the effective range fails to
// parse, Compile returns an *InvalidPatternError naming the offending
// index and no rule sequence is produced.
package rules
