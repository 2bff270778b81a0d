// Package analyzer implements the heuristic text analysis used to turn a
// prompt into a mind map: tokenizing, sentence splitting, keyword and
// noun-phrase extraction, prompt classification, main-concept extraction
// and domain identification.
//
// Everything here is pure string pattern matching. The lookup tables are
// package-level values built once at init and never mutated, so every
// function is safe for concurrent use.
package analyzer
