// Package rewrite implements the deterministic story rewrite engine.
//
// The engine is a fixed, ordered pipeline of passes. Each pass is a
// total function over UTF-8 text and feeds its output to the next:
//
//  1. Punctuation spacing normalisation
//  2. Sentence-initial capitalisation
//  3. Whitespace collapsing
//  4. Lexical substitution
//
// Spacing and capitalisation run before substitution so substituted
// words participate correctly in sentence boundaries. The pipeline is
// referentially transparent: identical input always yields identical
// output, and no pass touches the network or storage.
package rewrite
